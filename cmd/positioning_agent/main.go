// Package main provides the entry point for the school positioning agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "positioning_agent",
	Short: "School positioning and application planning agent",
	Long:  "Positioning agent assembles a graduate-school applicant profile, submits it to the analysis service, and renders the recommendation report with an exportable paginated document.",
}

// Flags shared by every service-facing command.
var (
	flagConfigPath string
	flagServiceURL string
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&flagServiceURL, "service-url", "", "Analysis service base URL (defaults to SERVICE_URL env var)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
