package model

// NumStrings is the string count of the target instrument.
const NumStrings = 6

// Muted marks a string that is not played.
const Muted = -1

// Shape is a chord hand position in fret-offset form, low string to high.
// Entries are fret numbers or Muted.
type Shape [NumStrings]int

// Voicing is a chord realized as concrete pitches. Positioned voicings carry
// exactly one slot per string (Muted where the string is not played) and are
// physically playable as written. Unpositioned voicings come from the
// fallback path: a flat pitch list with no string assignment, so consumers
// must treat them as "as many simultaneous notes as survived".
type Voicing struct {
	Positioned bool
	Strings    [NumStrings]int
	Pitches    Notes
}

// Sounding returns the pitches actually played, low to high.
func (v Voicing) Sounding() Notes {
	if !v.Positioned {
		return v.Pitches
	}
	var res Notes
	for _, p := range v.Strings {
		if p != Muted {
			res = append(res, uint8(p))
		}
	}
	return res
}
