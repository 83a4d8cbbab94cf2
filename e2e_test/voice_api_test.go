//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mwhitford/fretwork/cmd"
	"github.com/mwhitford/fretwork/model"
	"github.com/stretchr/testify/assert"
)

func encodeBody(t *testing.T, body any) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err.Error())
	}
	return bytes.NewReader(data)
}

func progressionNotes() []model.NoteEvent {
	chords := []model.Notes{
		{60, 64, 67}, // C
		{57, 60, 64}, // Am
		{53, 57, 60}, // F
		{55, 59, 62}, // G
	}
	var notes []model.NoteEvent
	for i, pitches := range chords {
		for _, p := range pitches {
			notes = append(notes, model.NoteEvent{
				Pitch:    p,
				Start:    float64(i) * 2.0,
				Duration: 1.5,
				Velocity: 90,
			})
		}
	}
	return notes
}

func TestVoiceFolkProgressionE2E(t *testing.T) {
	seed := int64(1)
	body := model.VoiceRequestBody{Notes: progressionNotes(), Style: "folk", Seed: &seed}
	req := httptest.NewRequest(http.MethodPost, "/voice", encodeBody(t, body))
	w := httptest.NewRecorder()
	cmd.HandleVoice(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var out model.VoiceResponse
	err := json.Unmarshal(respBody, &out)
	assert.NoError(err)
	assert.Len(out.Notes, 5+5+6+6)

	for _, n := range out.Notes {
		assert.GreaterOrEqual(n.Velocity, uint8(40))
		assert.LessOrEqual(n.Velocity, uint8(127))
	}
}

func TestVoiceRejectsBadInstrumentStyleGracefully(t *testing.T) {
	// unknown styles default rather than erroring
	body := model.VoiceRequestBody{Notes: progressionNotes(), Style: "polka"}
	req := httptest.NewRequest(http.MethodPost, "/voice", encodeBody(t, body))
	w := httptest.NewRecorder()
	cmd.HandleVoice(w, req)

	assert.Equal(t, 200, w.Result().StatusCode)
}

func TestVoiceRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/voice", bytes.NewReader([]byte("{nope")))
	w := httptest.NewRecorder()
	cmd.HandleVoice(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResp model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errResp))
	assert.NotEmpty(errResp.Error)
}

func TestRecognizeProgressionE2E(t *testing.T) {
	body := model.RecognizeRequestBody{Notes: progressionNotes()}
	req := httptest.NewRequest(http.MethodPost, "/recognize", encodeBody(t, body))
	w := httptest.NewRecorder()
	cmd.HandleRecognize(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var out model.RecognizeResponse
	assert.NoError(json.Unmarshal(respBody, &out))

	var names []string
	for _, c := range out.Chords {
		names = append(names, c.Name)
	}
	assert.Equal([]string{"C", "Am", "F", "G"}, names)
}
