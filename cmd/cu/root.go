package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cu",
	Short: "ClickUp command line client",
	Long: `A command line client for the ClickUp API.

Credentials are read from ~/.clickup/config.toml or the CLICKUP_EMAIL,
CLICKUP_PASSWORD and CLICKUP_API_KEY environment variables. A clickup.toml
file in the current directory or a parent can set default team_id and space_id.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Global flags
var (
	jsonOutput bool
	verbose    bool
	baseURL    string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every API request to stderr")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Override the API base URL")
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	syncLogger()
	if err != nil {
		printError(os.Stderr, err, jsonOutput)
		os.Exit(mapErrorToExitCode(err))
	}
}
