package strum

import (
	"math/rand"
	"sort"
	"time"

	"github.com/mwhitford/fretwork/model"
	"github.com/mwhitford/fretwork/util"
)

// Pattern names a strum timing policy.
type Pattern string

const (
	Down   Pattern = "down"
	Up     Pattern = "up"
	DownUp Pattern = "down-up"
	Block  Pattern = "block"
)

// DefaultVariation is the default velocity variation amount.
const DefaultVariation = 0.15

const (
	// seconds between adjacent strings when humanized / mechanical
	baseIncrement = 0.008
	evenIncrement = 0.01
	jitterLow     = 0.002
	jitterHigh    = 0.007

	minVelocity = 40
	maxVelocity = 127
)

// Humanizer staggers strum timing and perturbs dynamics. The random source
// is injected so tests can seed it; a Humanizer is not safe for concurrent
// use, give each goroutine its own.
type Humanizer struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Humanizer {
	return &Humanizer{rng: rng}
}

func NewSeeded(seed int64) *Humanizer {
	return New(rand.New(rand.NewSource(seed)))
}

// NewDefault seeds from the wall clock.
func NewDefault() *Humanizer {
	return NewSeeded(time.Now().UnixNano())
}

// Apply staggers the onsets of one chord's notes according to the pattern.
// Down strums low string first; up strums high string first; down-up halves
// each note's duration and plays both strokes back to back within the
// original span. Block and unrecognized patterns leave timing untouched.
func (h *Humanizer) Apply(notes []model.NoteEvent, pattern Pattern, humanize bool) []model.NoteEvent {
	if len(notes) == 0 {
		return notes
	}

	sorted := make([]model.NoteEvent, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pitch < sorted[j].Pitch
	})

	var res []model.NoteEvent
	switch pattern {
	case Down:
		for i, n := range sorted {
			n.Start += h.delay(i, humanize)
			res = append(res, n)
		}
	case Up:
		for i := len(sorted) - 1; i >= 0; i-- {
			n := sorted[i]
			n.Start += h.delay(len(sorted)-1-i, humanize)
			res = append(res, n)
		}
	case DownUp:
		// two strokes, each holding half the original duration
		half := sorted[0].Duration / 2
		for i, n := range sorted {
			n.Start += h.strokeDelay(i, humanize)
			n.Duration = half
			res = append(res, n)
		}
		for i := len(sorted) - 1; i >= 0; i-- {
			n := sorted[i]
			n.Start += half + h.strokeDelay(len(sorted)-1-i, humanize)
			n.Duration = half
			res = append(res, n)
		}
	default:
		// block: everything sounds together
		res = append(res, notes...)
	}
	return res
}

// VaryVelocity perturbs each note's velocity by a uniform factor of up to
// ±variation and clamps the result into the playable band.
func (h *Humanizer) VaryVelocity(notes []model.NoteEvent, variation float64) []model.NoteEvent {
	res := make([]model.NoteEvent, 0, len(notes))
	for _, n := range notes {
		amount := int(float64(n.Velocity) * variation * h.uniform(-1, 1))
		n.Velocity = uint8(util.Clamp(int(n.Velocity)+amount, minVelocity, maxVelocity))
		res = append(res, n)
	}
	return res
}

func (h *Humanizer) delay(i int, humanize bool) float64 {
	if humanize {
		return float64(i)*baseIncrement + h.uniform(jitterLow, jitterHigh)
	}
	return float64(i) * evenIncrement
}

// strokeDelay is the jitterless stagger used inside a down-up stroke pair.
func (h *Humanizer) strokeDelay(i int, humanize bool) float64 {
	if humanize {
		return float64(i) * baseIncrement
	}
	return float64(i) * evenIncrement
}

func (h *Humanizer) uniform(lo, hi float64) float64 {
	return lo + h.rng.Float64()*(hi-lo)
}
