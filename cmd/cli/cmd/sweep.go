// Package cmd - sweep command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dovela/internal/batch"
)

var (
	sweepOut     string
	sweepWorkers int
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep [file]",
	Short: "Run a parameter sweep from a JSON or xlsx file",
	Long: `Run many analyses in one pass. The input is either a JSON file
with an "items" array of requests, or an xlsx workbook with one row per
case. With --out ending in .xlsx the results are written as a workbook.

Examples:
  dovela sweep cases.json
  dovela sweep cases.xlsx --out results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "", "output file (.json or .xlsx; default stdout JSON)")
	sweepCmd.Flags().IntVarP(&sweepWorkers, "workers", "w", 4, "concurrent workers")
}

func runSweep(cmd *cobra.Command, args []string) error {
	var input batch.SweepInput

	if strings.EqualFold(filepath.Ext(args[0]), ".xlsx") {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input, err = batch.ImportXLSX(f)
		if err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, &input); err != nil {
			return fmt.Errorf("cannot parse %s: %w", args[0], err)
		}
	}

	res, err := batch.NewRunner(sweepWorkers).Run(input)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(sweepOut), ".xlsx") {
		f, err := os.Create(sweepOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := batch.ExportXLSX(f, input, res); err != nil {
			return err
		}
		fmt.Printf("Ran %d cases (%d failed), wrote %s\n", len(res.Outcomes), res.Failed, sweepOut)
		return nil
	}

	out := os.Stdout
	if sweepOut != "" {
		f, err := os.Create(sweepOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
