// Package report renders a dowel analysis as a PDF calculation note:
// inputs, factor audit trail, governing stresses and the validation
// findings, so the sheet can be filed with the project records.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"dovela/internal/analysis"
	"dovela/internal/params"
	"dovela/internal/validation"
)

// Request wraps the analysis inputs with the document header fields.
type Request struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`

	Analysis params.Request `json:"analysis"`
}

// Generate runs the analysis and writes the PDF to w. Validation errors
// abort; warnings are printed on the sheet.
func Generate(w io.Writer, req Request) error {
	in, err := req.Analysis.Build()
	if err != nil {
		return err
	}
	report := validation.Validate(in)
	if report.HasErrors() {
		f := report.Errors()[0]
		return fmt.Errorf("validation failed on %s: %s", f.Field, f.Message)
	}
	res, err := analysis.Analyze(in.Geometry, in.Material, in.Load, in.Environment, in.Target)
	if err != nil {
		return err
	}

	if req.Title == "" {
		req.Title = "Diamond Dowel Analysis"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, req.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", req.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", req.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Geometry")
	g := in.Geometry
	kv(pdf, "Side length", fmt.Sprintf("%.1f mm", g.SideLength))
	kv(pdf, "Thickness", fmt.Sprintf("%.1f mm", g.Thickness))
	kv(pdf, "Joint opening", fmt.Sprintf("%.1f mm", g.JointOpening))
	kv(pdf, "Effective area", fmt.Sprintf("%.1f mm2", g.EffectiveArea))
	kv(pdf, "Effective length", fmt.Sprintf("%.1f mm", g.EffectiveLength))

	section(pdf, "Material")
	kv(pdf, "Grade", in.Material.Grade)
	kv(pdf, "Elastic modulus", fmt.Sprintf("%.0f MPa", in.Material.E))
	kv(pdf, "Yield strength", fmt.Sprintf("%.0f MPa", in.Material.Fy))

	section(pdf, "Loading")
	kv(pdf, "Applied load", fmt.Sprintf("%.0f N", in.Load.Magnitude))
	kv(pdf, "Impact factor", fmt.Sprintf("%.2f", in.Load.ImpactFactor))
	kv(pdf, "Dynamic amplification", fmt.Sprintf("%.2f", in.Load.DynamicAmplification))
	kv(pdf, "Fatigue cycles", fmt.Sprintf("%.3g", in.Load.FatigueCycles))

	section(pdf, "Modification factors")
	kv(pdf, "Temperature", fmt.Sprintf("%.3f", res.Info["temperature_factor"]))
	kv(pdf, "Environmental", fmt.Sprintf("%.3f", res.Info["environmental_factor"]))
	kv(pdf, "Dynamic", fmt.Sprintf("%.3f", res.Info["dynamic_factor"]))
	kv(pdf, "Fatigue", fmt.Sprintf("%.3f", res.Info["fatigue_factor"]))
	kv(pdf, "Combined", fmt.Sprintf("%.3f", res.Info["total_modification_factor"]))

	section(pdf, "Results")
	kv(pdf, "Base stress", fmt.Sprintf("%.2f MPa", res.Info["base_stress"]))
	kv(pdf, "Peak stress", fmt.Sprintf("%.2f MPa", res.MaxStress))
	kv(pdf, "Allowable stress", fmt.Sprintf("%.2f MPa", res.Info["allowable_stress"]))
	kv(pdf, "Safety factor", fmt.Sprintf("%.2f (target %.2f)", res.SafetyFactor, in.Target))
	kv(pdf, "Max displacement", fmt.Sprintf("%.4f mm", res.MaxDisplacement))
	verdict := "DOES NOT MEET target"
	if res.MeetsTarget {
		verdict = "Meets target"
	}
	kv(pdf, "Verdict", verdict)

	if n := report.Warnings(); n > 0 {
		section(pdf, "Warnings")
		pdf.SetFont("Helvetica", "", 10)
		for _, f := range report.Findings {
			if f.Severity != validation.SeverityWarning {
				continue
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("- %s: %s", f.Field, f.Message), "", "L", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, res.Notes, "", "L", false)

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func kv(pdf *gofpdf.Fpdf, key, value string) {
	pdf.Cell(70, 6, key)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}
