package model

// Quality is the recognized flavor of a chord.
type Quality int

const (
	QualityMajor Quality = iota
	QualityMinor
	QualityDominant7
	QualityUnknown
)

// NoChord is the label name for a chord event with no pitches.
const NoChord = "N"

// ChordEvent is a group of notes judged to sound together, anchored at the
// start time of its first note.
type ChordEvent struct {
	Start float64
	Notes []NoteEvent
}

// Pitches returns the event's pitches in note order.
func (c ChordEvent) Pitches() Notes {
	res := make(Notes, 0, len(c.Notes))
	for _, n := range c.Notes {
		res = append(res, n.Pitch)
	}
	return res
}

// ChordLabel names a chord by root pitch class and quality. Root is -1 for
// the NoChord sentinel.
type ChordLabel struct {
	Root    int
	Quality Quality
	Name    string
}
