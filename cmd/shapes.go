package cmd

import (
	"fmt"

	"github.com/mwhitford/fretwork/fretboard"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Lists the chord shape table",
	Long:  `Lists the chord shape table`,
	Run: func(cmd *cobra.Command, args []string) {
		shapes()
	},
}

func shapes() {
	LoadCustomShapes()

	for _, name := range fretboard.Names() {
		for i := 0; i < fretboard.NumVariants(name); i++ {
			v, _ := fretboard.VoicingFor(name, i)
			fmt.Printf("%-6v variant %v: %v\n", name, i, v.Sounding())
		}
	}
}
