package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mwhitford/fretwork/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// drum parts don't voice onto a fretboard, skip channel 10
const drumChannel = 9

// acoustic guitar in the General MIDI program map
const guitarProgram = 24

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// ReadNoteEvents parses an SMF into the engine's note representation.
func ReadNoteEvents(filepath string) ([]model.NoteEvent, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	return ExtractNoteEvents(s), nil
}

// ExtractNoteEvents pairs note-on/note-off messages per key within each
// track and converts tick offsets to seconds. Notes on the drum channel are
// skipped. Notes still sounding at end of track are dropped.
func ExtractNoteEvents(s *smf.SMF) []model.NoteEvent {
	type onset struct {
		micros   int64
		velocity uint8
	}

	var res []model.NoteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		open := make(map[uint8]onset)
		for _, event := range track {
			absTicks += int64(event.Delta)
			absMicros := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				if channel == drumChannel {
					continue
				}
				open[key] = onset{micros: absMicros, velocity: velocity}
			case event.Message.GetNoteEnd(&channel, &key):
				if channel == drumChannel {
					continue
				}
				start, ok := open[key]
				if !ok {
					continue
				}
				delete(open, key)
				res = append(res, model.NoteEvent{
					Pitch:    key,
					Start:    float64(start.micros) / 1e6,
					Duration: float64(absMicros-start.micros) / 1e6,
					Velocity: start.velocity,
				})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	return res
}

// WriteNoteEvents renders a note stream as a single-track SMF carrying an
// acoustic guitar program at the given tempo.
func WriteNoteEvents(filepath string, notes []model.NoteEvent, bpm float64) error {
	s := smf.New()
	ticks := smf.MetricTicks(960)
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("Guitar"))
	tr.Add(0, smf.MetaTempo(bpm))
	tr.Add(0, midi.ProgramChange(0, guitarProgram))

	type boundary struct {
		tick uint32
		off  bool
		key  uint8
		vel  uint8
	}
	var evs []boundary
	for _, n := range notes {
		start := ticks.Ticks(bpm, time.Duration(n.Start*float64(time.Second)))
		end := ticks.Ticks(bpm, time.Duration((n.Start+n.Duration)*float64(time.Second)))
		if end <= start {
			end = start + 1
		}
		evs = append(evs, boundary{tick: start, key: n.Pitch, vel: n.Velocity})
		evs = append(evs, boundary{tick: end, off: true, key: n.Pitch})
	}

	// offs before ons at the same tick so retriggered pitches close first
	sort.SliceStable(evs, func(i, j int) bool {
		if evs[i].tick != evs[j].tick {
			return evs[i].tick < evs[j].tick
		}
		return evs[i].off && !evs[j].off
	})

	var last uint32
	for _, b := range evs {
		delta := b.tick - last
		last = b.tick
		if b.off {
			tr.Add(delta, midi.NoteOff(0, b.key))
		} else {
			tr.Add(delta, midi.NoteOn(0, b.key, b.vel))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("error adding track: %w", err)
	}
	return s.WriteFile(filepath)
}
