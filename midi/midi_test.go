package midi

import (
	"path/filepath"
	"testing"

	"github.com/mwhitford/fretwork/model"
	"github.com/stretchr/testify/assert"
)

func TestWriteReadRoundTrip(t *testing.T) {
	notes := []model.NoteEvent{
		{Pitch: 48, Start: 0.0, Duration: 1.0, Velocity: 90},
		{Pitch: 55, Start: 0.02, Duration: 1.0, Velocity: 88},
		{Pitch: 64, Start: 2.0, Duration: 0.5, Velocity: 70},
	}

	path := filepath.Join(t.TempDir(), "out.mid")
	err := WriteNoteEvents(path, notes, 120)
	assert.NoError(t, err)

	got, err := ReadNoteEvents(path)
	assert.NoError(t, err)
	assert.Len(t, got, len(notes))

	for i, want := range notes {
		assert.Equal(t, want.Pitch, got[i].Pitch)
		assert.Equal(t, want.Velocity, got[i].Velocity)
		assert.InDelta(t, want.Start, got[i].Start, 0.01)
		assert.InDelta(t, want.Duration, got[i].Duration, 0.02)
	}
}

func TestZeroDurationNoteStillCloses(t *testing.T) {
	notes := []model.NoteEvent{
		{Pitch: 60, Start: 0.0, Duration: 0.0, Velocity: 90},
	}

	path := filepath.Join(t.TempDir(), "tiny.mid")
	assert.NoError(t, WriteNoteEvents(path, notes, 120))

	got, err := ReadNoteEvents(path)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Greater(t, got[0].Duration, 0.0)
}

func TestReadMissingFileErrors(t *testing.T) {
	_, err := ReadNoteEvents("definitely/not/here.mid")
	assert.Error(t, err)
}
