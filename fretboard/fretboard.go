package fretboard

import (
	"sort"

	"github.com/mwhitford/fretwork/model"
	"github.com/mwhitford/fretwork/util"
)

// StandardTuning holds the open-string pitch of each string, low E to high:
// E2(40) A2(45) D3(50) G3(55) B3(59) E4(64).
var StandardTuning = [model.NumStrings]uint8{40, 45, 50, 55, 59, 64}

// RangeLow/RangeHigh bound the instrument's practical sounding range
// (E2..E5); fallback voicings are octave-folded into it.
const (
	RangeLow  = 40
	RangeHigh = 76
)

const x = model.Muted

// shapes maps a chord name to its hand positions in fret-offset form,
// low string to high (x = string not played). Curated common open and
// barre shapes; resolved against StandardTuning at lookup time.
var shapes = map[string][]model.Shape{
	"C":     {{x, 3, 2, 0, 1, 0}, {0, 3, 2, 0, 1, 0}}, // x32010, 032010
	"Cmaj7": {{0, 3, 2, 0, 0, 0}},                     // 032000
	"C7":    {{0, 3, 2, 3, 1, 0}},                     // 032310

	"D":  {{x, x, 0, 2, 3, 2}}, // xx0232
	"Dm": {{x, x, 0, 2, 3, 1}}, // xx0231
	"D7": {{x, x, 0, 2, 1, 2}}, // xx0212

	"E":  {{0, 2, 2, 1, 0, 0}}, // 022100
	"Em": {{0, 2, 2, 0, 0, 0}}, // 022000
	"E7": {{0, 2, 0, 1, 0, 0}}, // 020100

	"F":  {{1, 3, 3, 2, 1, 1}}, // 133211 barre
	"Fm": {{1, 3, 3, 1, 1, 1}}, // 133111

	"G":  {{3, 2, 0, 0, 0, 3}, {3, 2, 0, 0, 3, 3}}, // 320003, 320033
	"Gm": {{3, 5, 5, 3, 3, 3}},                     // 355333
	"G7": {{3, 2, 0, 0, 0, 1}},                     // 320001

	"A":  {{x, 0, 2, 2, 2, 0}}, // x02220
	"Am": {{x, 0, 2, 2, 1, 0}}, // x02210
	"A7": {{x, 0, 2, 0, 2, 0}}, // x02020

	"B":  {{x, 2, 4, 4, 4, 2}}, // x24442
	"Bm": {{x, 2, 4, 4, 3, 2}}, // x24432
	"B7": {{x, 2, 1, 2, 0, 2}}, // x21202
}

// VoicingFor resolves a chord name to a positioned voicing. A variant index
// beyond the available shapes wraps silently to 0. The second return is
// false when the name has no table entry.
func VoicingFor(name string, variant int) (model.Voicing, bool) {
	variants, ok := shapes[name]
	if !ok {
		return model.Voicing{}, false
	}
	if variant < 0 || variant >= len(variants) {
		variant = 0
	}
	return resolve(variants[variant]), true
}

// NumVariants reports how many shapes the table holds for a chord name.
func NumVariants(name string) int {
	return len(shapes[name])
}

// Names returns the chord names in the table, sorted.
func Names() []string {
	names := util.GetKeys(shapes)
	sort.Strings(names)
	return names
}

// AddShapes merges externally sourced shapes into the table. Built-in names
// win; only new names are added. Must run before the table is shared, i.e.
// during startup. Returns the number of names added.
func AddShapes(extra map[string][]model.Shape) int {
	var added int
	for name, variants := range extra {
		if _, ok := shapes[name]; ok {
			continue
		}
		if len(variants) == 0 {
			continue
		}
		shapes[name] = variants
		added++
	}
	return added
}

func resolve(s model.Shape) model.Voicing {
	v := model.Voicing{Positioned: true}
	for i, fret := range s {
		if fret == model.Muted {
			v.Strings[i] = model.Muted
			continue
		}
		v.Strings[i] = int(StandardTuning[i]) + fret
	}
	return v
}

// Fallback builds an unpositioned voicing for chords outside the table.
// Pitches are deduplicated, capped at the string count by keeping the
// lowest and highest and evenly sampling the middle, then octave-folded
// into the instrument's practical range. Never fails.
func Fallback(pitches model.Notes) model.Voicing {
	set := make(map[uint8]bool)
	for _, p := range pitches {
		set[p] = true
	}
	distinct := util.GetKeys(set)
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	if len(distinct) > model.NumStrings {
		distinct = capPitches(distinct, model.NumStrings)
	}

	res := make(model.Notes, 0, len(distinct))
	for _, p := range distinct {
		pitch := int(p)
		for pitch < RangeLow {
			pitch += 12
		}
		for pitch > RangeHigh {
			pitch -= 12
		}
		res = append(res, uint8(pitch))
	}
	return model.Voicing{Pitches: res}
}

// capPitches keeps the lowest and highest of a sorted pitch list and fills
// the remaining slots by sampling the middle at even strides.
func capPitches(sorted model.Notes, max int) model.Notes {
	selected := model.Notes{sorted[0], sorted[len(sorted)-1]}
	remaining := max - 2
	middle := sorted[1 : len(sorted)-1]
	step := float64(len(middle)) / float64(remaining)
	for i := 0; i < remaining; i++ {
		selected = append(selected, middle[int(float64(i)*step)])
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })
	return selected
}
