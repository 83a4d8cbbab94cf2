package pipeline

import (
	"fmt"

	"github.com/mwhitford/fretwork/chord"
	"github.com/mwhitford/fretwork/fretboard"
	"github.com/mwhitford/fretwork/model"
	"github.com/mwhitford/fretwork/strum"
)

// minDuration is substituted for non-positive input durations so a bad
// upstream note can't produce a zero-length or time-reversed output note.
const minDuration = 0.001

// Config is the engine's caller-facing configuration surface.
type Config struct {
	TargetInstrument  string
	Style             string
	GroupingTolerance float64
	Humanize          bool
	VelocityVariation float64
}

func DefaultConfig() Config {
	return Config{
		TargetInstrument:  "guitar",
		Style:             "folk",
		GroupingTolerance: chord.DefaultTolerance,
		Humanize:          true,
		VelocityVariation: strum.DefaultVariation,
	}
}

// ConfigError reports a configuration field the engine cannot honor, as
// opposed to musical edge cases, which never error.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unsupported %v: %q", e.Field, e.Value)
}

// styles maps a playing style to its strum pattern. Unknown styles strum
// down rather than failing.
var styles = map[string]strum.Pattern{
	"folk":        strum.Down,
	"rock":        strum.DownUp,
	"fingerstyle": strum.Down,
}

func PatternForStyle(style string) strum.Pattern {
	if p, ok := styles[style]; ok {
		return p
	}
	return strum.Down
}

// Run converts a symbolic note stream into a guitar-idiomatic one: group by
// onset, recognize each chord, voice it on the fretboard (table shape or
// fallback), then humanize the strum. Output preserves chord-event order;
// only notes within an event are reordered by the strum pattern.
func Run(notes []model.NoteEvent, cfg Config, h *strum.Humanizer) ([]model.NoteEvent, error) {
	if cfg.TargetInstrument != "" && cfg.TargetInstrument != "guitar" {
		return nil, &ConfigError{Field: "target_instrument", Value: cfg.TargetInstrument}
	}

	tolerance := cfg.GroupingTolerance
	if tolerance <= 0 {
		tolerance = chord.DefaultTolerance
	}
	variation := cfg.VelocityVariation
	if variation == 0 {
		variation = strum.DefaultVariation
	}
	pattern := PatternForStyle(cfg.Style)

	var out []model.NoteEvent
	for _, ev := range chord.GroupNotes(sanitize(notes), tolerance) {
		chordNotes := VoiceEvent(ev)
		strummed := h.Apply(chordNotes, pattern, cfg.Humanize)
		out = append(out, h.VaryVelocity(strummed, variation)...)
	}
	return out, nil
}

// VoiceEvent realizes one chord event as per-string notes at the event's
// start, carrying the duration and velocity of the group's first note. An
// event with no pitches yields no notes.
func VoiceEvent(ev model.ChordEvent) []model.NoteEvent {
	pitches := ev.Pitches()
	label := chord.Recognize(pitches)

	voicing, ok := fretboard.VoicingFor(label.Name, 0)
	if !ok {
		voicing = fretboard.Fallback(pitches)
	}

	var duration float64
	var velocity uint8
	if len(ev.Notes) > 0 {
		duration = ev.Notes[0].Duration
		velocity = ev.Notes[0].Velocity
	}

	var res []model.NoteEvent
	for _, p := range voicing.Sounding() {
		res = append(res, model.NoteEvent{
			Pitch:    p,
			Start:    ev.Start,
			Duration: duration,
			Velocity: velocity,
		})
	}
	return res
}

// sanitize clamps degenerate upstream values instead of rejecting them:
// velocities above the MIDI ceiling come down to 127 and non-positive
// durations come up to minDuration. Pitch is already bounded by its type.
func sanitize(notes []model.NoteEvent) []model.NoteEvent {
	res := make([]model.NoteEvent, 0, len(notes))
	for _, n := range notes {
		if n.Velocity > 127 {
			n.Velocity = 127
		}
		if n.Pitch > 127 {
			n.Pitch = 127
		}
		if n.Duration <= 0 {
			n.Duration = minDuration
		}
		res = append(res, n)
	}
	return res
}
