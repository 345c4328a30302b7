// Package main provides the entry point for the TalentScout screening agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screening_agent",
	Short: "TalentScout candidate screening agent",
	Long:  "TalentScout runs multi-phase screening conversations: validated profile collection, an adaptive LLM-driven technical interview, and a structured evaluation.",
}

var (
	logJSON  bool
	logDebug bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
