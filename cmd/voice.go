package cmd

import (
	"fmt"

	"github.com/mwhitford/fretwork/chord"
	"github.com/mwhitford/fretwork/midi"
	"github.com/mwhitford/fretwork/pipeline"
	"github.com/mwhitford/fretwork/strum"
	"github.com/spf13/cobra"
)

var (
	voiceStyle      string
	voiceNoHumanize bool
	voiceSeed       int64
	voiceTolerance  float64
	voiceVariation  float64
	voiceBPM        float64
)

func init() {
	voiceCmd.Flags().StringVar(&voiceStyle, "style", "folk", "playing style: folk, rock or fingerstyle")
	voiceCmd.Flags().BoolVar(&voiceNoHumanize, "no-humanize", false, "disable timing and velocity jitter")
	voiceCmd.Flags().Int64Var(&voiceSeed, "seed", 0, "random seed, 0 seeds from the clock")
	voiceCmd.Flags().Float64Var(&voiceTolerance, "tolerance", chord.DefaultTolerance, "onset window in seconds for grouping notes into chords")
	voiceCmd.Flags().Float64Var(&voiceVariation, "variation", strum.DefaultVariation, "velocity variation amount")
	voiceCmd.Flags().Float64Var(&voiceBPM, "bpm", 120, "tempo written to the output file")
	rootCmd.AddCommand(voiceCmd)
}

var voiceCmd = &cobra.Command{
	Use:   "voice <in.mid> <out.mid>",
	Short: "Voices a symbolic part for guitar",
	Long:  `Voices a symbolic part for guitar`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(voice(args[0], args[1]))
	},
}

func voice(inPath string, outPath string) error {
	notes, err := midi.ReadNoteEvents(inPath)
	if err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig()
	cfg.Style = voiceStyle
	cfg.Humanize = !voiceNoHumanize
	cfg.GroupingTolerance = voiceTolerance
	cfg.VelocityVariation = voiceVariation

	h := strum.NewDefault()
	if voiceSeed != 0 {
		h = strum.NewSeeded(voiceSeed)
	}

	voiced, err := pipeline.Run(notes, cfg, h)
	if err != nil {
		return err
	}

	if err := midi.WriteNoteEvents(outPath, voiced, voiceBPM); err != nil {
		return err
	}
	fmt.Printf("Wrote %v notes to %v\n", len(voiced), outPath)
	return nil
}
