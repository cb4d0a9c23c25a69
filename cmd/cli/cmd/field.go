// Package cmd - field command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dovela/internal/analysis"
)

var (
	fieldGrid int
	fieldOut  string
)

// fieldCmd represents the field command
var fieldCmd = &cobra.Command{
	Use:   "field [file]",
	Short: "Sample the stress distribution over the dowel",
	Long: `Sample the stress field on a grid over the loaded half of the
diamond and write it as JSON, for plotting.

Examples:
  dovela field case.json
  dovela field --grid 100 --out field.json case.json`,
	Args: cobra.ExactArgs(1),
	RunE: runField,
}

func init() {
	fieldCmd.Flags().IntVarP(&fieldGrid, "grid", "g", 50, "grid resolution per axis")
	fieldCmd.Flags().StringVarP(&fieldOut, "out", "o", "", "output file (default stdout)")
}

func runField(cmd *cobra.Command, args []string) error {
	req, err := loadRequest(args[0])
	if err != nil {
		return err
	}
	in, err := req.Build()
	if err != nil {
		return err
	}

	base := in.Load.Magnitude / in.Geometry.EffectiveArea
	field, err := analysis.SampleField(in.Geometry, base, fieldGrid, fieldGrid)
	if err != nil {
		return err
	}

	out := os.Stdout
	if fieldOut != "" {
		f, err := os.Create(fieldOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := json.NewEncoder(out).Encode(field); err != nil {
		return err
	}
	if fieldOut != "" {
		fmt.Printf("Wrote %dx%d field to %s (max %.2f MPa, min %.2f MPa)\n",
			fieldGrid, fieldGrid, fieldOut, field.MaxStress, field.MinStress)
	}
	return nil
}
