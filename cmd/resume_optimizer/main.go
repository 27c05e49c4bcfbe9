// Package main provides the entry point for the Resume Optimizer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume Optimizer HTTP API Server",
	Long:  "Resume Optimizer extracts a structured profile from a resume, classifies its career domain and seniority, and generates optimization recommendations, with deterministic fallbacks when the LLM is unavailable.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
