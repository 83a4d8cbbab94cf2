package chord

import (
	"sort"

	"github.com/mwhitford/fretwork/model"
)

// DefaultTolerance is the onset window in seconds within which notes are
// considered part of the same chord.
const DefaultTolerance = 0.05

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Templates are tried in this order and the first superset match wins.
// Major is checked before dominant seventh, so a dominant chord labels as
// plain major. That matches the behavior of the arranger this engine
// replaced; changing the order would change chord identity downstream.
var templates = []struct {
	intervals []int
	quality   model.Quality
	suffix    string
}{
	{[]int{0, 4, 7}, model.QualityMajor, ""},
	{[]int{0, 3, 7}, model.QualityMinor, "m"},
	{[]int{0, 4, 7, 10}, model.QualityDominant7, "7"},
}

// GroupNotes clusters a note stream into chord events by onset proximity.
// Each group is anchored at the start time of its first note; a note joins
// the current group while its onset is within tolerance of the anchor.
// Input need not be sorted. Output is ordered by start time ascending.
func GroupNotes(notes []model.NoteEvent, tolerance float64) []model.ChordEvent {
	if len(notes) == 0 {
		return nil
	}

	sorted := make([]model.NoteEvent, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var groups []model.ChordEvent
	curr := model.ChordEvent{Start: sorted[0].Start, Notes: []model.NoteEvent{sorted[0]}}
	for _, n := range sorted[1:] {
		if n.Start-curr.Start <= tolerance {
			curr.Notes = append(curr.Notes, n)
			continue
		}
		groups = append(groups, curr)
		curr = model.ChordEvent{Start: n.Start, Notes: []model.NoteEvent{n}}
	}
	return append(groups, curr)
}

// Recognize labels a pitch collection by interval-template matching. The
// root is taken to be the pitch class of the lowest pitch, a bass stand-in
// that misreads inversions; that simplification is deliberate and kept.
// Unmatched collections label as the bare root name (implicit major
// reading). An empty collection labels as NoChord.
func Recognize(pitches model.Notes) model.ChordLabel {
	if len(pitches) == 0 {
		return model.ChordLabel{Root: -1, Quality: model.QualityUnknown, Name: model.NoChord}
	}

	lowest := pitches[0]
	present := make(map[int]bool)
	for _, p := range pitches {
		present[int(p)%12] = true
		if p < lowest {
			lowest = p
		}
	}

	root := int(lowest) % 12
	intervals := make(map[int]bool)
	for c := range present {
		intervals[((c-root)%12+12)%12] = true
	}

	for _, t := range templates {
		if hasAll(intervals, t.intervals) {
			return model.ChordLabel{
				Root:    root,
				Quality: t.quality,
				Name:    noteNames[root] + t.suffix,
			}
		}
	}

	return model.ChordLabel{Root: root, Quality: model.QualityUnknown, Name: noteNames[root]}
}

func hasAll(set map[int]bool, required []int) bool {
	for _, r := range required {
		if !set[r] {
			return false
		}
	}
	return true
}
