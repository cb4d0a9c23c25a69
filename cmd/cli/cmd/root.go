// Package cmd provides the CLI commands for dovela.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dovela/internal/logging"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dovela",
	Short: "Stress analysis for diamond dowels in rigid pavement joints",
	Long: `dovela computes AASHTO-style stress checks for diamond-shaped
load transfer dowels across slab joints.

Inputs are JSON files describing geometry, material, loading and
service environment.

Examples:
  dovela analyze case.json
  dovela field --grid 80 case.json
  dovela sweep cases.json --out results.xlsx`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	_ = logging.Initialize(cfg)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dovela version 0.1.0")
	},
}
