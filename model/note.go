package model

// Notes is a bag of MIDI pitches.
type Notes = []uint8

// NoteEvent is one note in a symbolic stream. Times are in seconds,
// pitch and velocity are standard MIDI ranges.
type NoteEvent struct {
	Pitch    uint8   `json:"pitch"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Velocity uint8   `json:"velocity"`
}
