package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretwork",
	Short: "Guitar voicing tools",
	Long:  `Turns piano-style symbolic parts into guitar-idiomatic ones.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
