// Package cmd - analyze command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dovela/internal/analysis"
	"dovela/internal/params"
	"dovela/internal/validation"
)

var analyzeFormat string

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run a single dowel stress analysis",
	Long: `Analyze one load case from a JSON request file.

Examples:
  dovela analyze case.json
  dovela analyze --format json case.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "cli", "output format (cli, json)")
}

func loadRequest(path string) (params.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return params.Request{}, err
	}
	var req params.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return params.Request{}, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return req, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req, err := loadRequest(args[0])
	if err != nil {
		return err
	}
	in, err := req.Build()
	if err != nil {
		return err
	}

	report := validation.Validate(in)
	for _, f := range report.Findings {
		fmt.Fprintf(os.Stderr, "%s  %s: %s\n", f.Severity, f.Field, f.Message)
	}
	if report.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", len(report.Errors()))
	}

	res, err := analysis.Analyze(in.Geometry, in.Material, in.Load, in.Environment, in.Target)
	if err != nil {
		return err
	}

	if analyzeFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Printf("Effective area       %10.1f mm2\n", in.Geometry.EffectiveArea)
	fmt.Printf("Base stress          %10.2f MPa\n", res.Info["base_stress"])
	fmt.Printf("Peak stress          %10.2f MPa\n", res.MaxStress)
	fmt.Printf("Allowable stress     %10.2f MPa\n", res.Info["allowable_stress"])
	fmt.Printf("Combined factor      %10.3f\n", res.Info["total_modification_factor"])
	fmt.Printf("Safety factor        %10.2f (target %.2f)\n", res.SafetyFactor, in.Target)
	fmt.Printf("Max displacement     %10.4f mm\n", res.MaxDisplacement)
	if res.MeetsTarget {
		fmt.Println("Verdict: meets target")
	} else {
		fmt.Println("Verdict: DOES NOT MEET target")
	}
	return nil
}
