package main

import (
	"os"

	"github.com/spf13/cobra"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "counter",
	Short: "Serves the counter app.",
	Long: `Serves the counter app: a random number endpoint, a home page that ` +
		`links to a seeded counter, and the counter pages themselves.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil,
		"env files to load before reading configuration (defaults to .env when present)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
