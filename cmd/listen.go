package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/bep/debounce"
	"github.com/mwhitford/fretwork/chord"
	"github.com/mwhitford/fretwork/model"
	"github.com/mwhitford/fretwork/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints recognized chords from live MIDI input",
	Long:  `Prints recognized chords from live MIDI input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	held := make(map[uint8]bool)
	var lastLabel string

	// wait for the hand to settle before naming the chord
	debounced := debounce.New(80 * time.Millisecond)

	report := func(pitches model.Notes) func() {
		return func() {
			label := chord.Recognize(pitches)
			if label.Name == lastLabel {
				return
			}
			lastLabel = label.Name
			fmt.Println(label.Name)
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held[key] = true
		case msg.GetNoteEnd(&ch, &key):
			delete(held, key)
		default:
			return
		}
		// snapshot inside the callback, the debounced func fires later
		pitches := util.GetKeys(held)
		sort.Slice(pitches, func(i, j int) bool { return pitches[i] < pitches[j] })
		debounced(report(pitches))
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
