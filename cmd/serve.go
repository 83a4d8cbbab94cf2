package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mwhitford/fretwork/chord"
	"github.com/mwhitford/fretwork/constants"
	"github.com/mwhitford/fretwork/db"
	"github.com/mwhitford/fretwork/fretboard"
	"github.com/mwhitford/fretwork/model"
	"github.com/mwhitford/fretwork/pipeline"
	"github.com/mwhitford/fretwork/strum"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the voicing API",
	Long:  `Serves the voicing API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadCustomShapes merges community shapes from DynamoDB into the voicing
// table. No-op unless SHAPES_TABLE is set.
func LoadCustomShapes() {
	custom := db.GetCustomShapes()
	if len(custom) == 0 {
		return
	}
	added := fretboard.AddShapes(custom)
	fmt.Printf("Merged %v custom chord shapes\n", added)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleVoice runs the voicing pipeline over the posted note stream.
func HandleVoice(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.VoiceRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}

	cfg := pipeline.DefaultConfig()
	if input.Style != "" {
		cfg.Style = input.Style
	}
	if input.Humanize != nil {
		cfg.Humanize = *input.Humanize
	}
	if input.GroupingTolerance != nil {
		cfg.GroupingTolerance = *input.GroupingTolerance
	}
	if input.VelocityVariation != nil {
		cfg.VelocityVariation = *input.VelocityVariation
	}

	h := strum.NewDefault()
	if input.Seed != nil {
		h = strum.NewSeeded(*input.Seed)
	}

	voiced, err := pipeline.Run(input.Notes, cfg, h)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	fmt.Printf("[%v] voiced %v notes as style %q\n", reqID, len(voiced), cfg.Style)
	json.NewEncoder(w).Encode(model.VoiceResponse{Notes: voiced})
}

// HandleRecognize groups the posted notes and returns a label per chord.
func HandleRecognize(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.RecognizeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}

	chords := make([]model.RecognizedChord, 0)
	for _, ev := range chord.GroupNotes(input.Notes, chord.DefaultTolerance) {
		label := chord.Recognize(ev.Pitches())
		chords = append(chords, model.RecognizedChord{Start: ev.Start, Name: label.Name})
	}
	json.NewEncoder(w).Encode(model.RecognizeResponse{Chords: chords})
}

func serve() {
	LoadCustomShapes()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/voice", HandleVoice).Methods("POST")
	router.HandleFunc("/recognize", HandleRecognize).Methods("POST")

	handler := cors.Default().Handler(router)
	addr := constants.GetServeAddr()
	fmt.Printf("Serving on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
