package model

type VoiceRequestBody struct {
	Notes             []NoteEvent `json:"notes"`
	Style             string      `json:"style,omitempty"`
	Humanize          *bool       `json:"humanize,omitempty"`
	Seed              *int64      `json:"seed,omitempty"`
	GroupingTolerance *float64    `json:"grouping_tolerance,omitempty"`
	VelocityVariation *float64    `json:"velocity_variation,omitempty"`
}

type VoiceResponse struct {
	Notes []NoteEvent `json:"notes"`
}

type RecognizeRequestBody struct {
	Notes []NoteEvent `json:"notes"`
}

type RecognizedChord struct {
	Start float64 `json:"start"`
	Name  string  `json:"name"`
}

type RecognizeResponse struct {
	Chords []RecognizedChord `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
