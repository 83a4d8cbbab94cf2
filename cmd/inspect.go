package cmd

import (
	"fmt"

	"github.com/mwhitford/fretwork/chord"
	"github.com/mwhitford/fretwork/midi"
	"github.com/spf13/cobra"
)

var inspectTolerance float64

func init() {
	inspectCmd.Flags().Float64Var(&inspectTolerance, "tolerance", chord.DefaultTolerance, "onset window in seconds for grouping notes into chords")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <in.mid>",
	Short: "Prints the chords a file would voice",
	Long:  `Prints the chords a file would voice`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	notes, err := midi.ReadNoteEvents(path)
	if err != nil {
		return err
	}

	for _, ev := range chord.GroupNotes(notes, inspectTolerance) {
		label := chord.Recognize(ev.Pitches())
		fmt.Printf("%8.3fs  %-4v %v\n", ev.Start, label.Name, ev.Pitches())
	}
	return nil
}
