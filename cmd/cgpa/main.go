// Package main provides the cgpa command-line tool and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cgpa",
	Short: "Grade point calculator on a 5-point scale",
	Long: `cgpa converts scores and letter grades to grade points, computes term GPAs and
the cumulative CGPA from a transcript, and maps the CGPA to a degree class.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootLogFormat  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: logfmt or json")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
