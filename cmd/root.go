package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jazzlines",
	Short: "Jazz line editor core",
	Long:  `Builds, stores, connects and exports jazz melodic lines.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
