// Package main provides the entry point for the career assessment wizard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_wizard",
	Short: "Career assessment wizard",
	Long:  "Career assessment wizard collects personality answers, academic scores and interests, computes a temperament classification and submits the profile to the recommendation service.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
