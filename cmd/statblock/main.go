// Package main is the entry point for the statblock importer CLI and gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

var (
	logLevel       string
	conditionsFile string
)

var rootCmd = &cobra.Command{
	Use:   "statblock",
	Short: "Draw Steel monster statblock importer",
	Long: `statblock converts Draw Steel statblock exports and malice feature prose
into structured monster documents, and serves them over gRPC.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&conditionsFile, "conditions", "", "YAML file of extra condition names")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(maliceCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(versionCmd)
}
