package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lane-gate",
	Short: "Per-lane traffic-signal priority decisions",
	Long:  "Evaluate which lanes should switch to GREEN given snapshots of waiting vehicles and competing cross traffic.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
