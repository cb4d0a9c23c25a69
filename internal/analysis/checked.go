package analysis

import (
	"dovela/internal/errors"
	"dovela/internal/params"
	"dovela/internal/validation"
)

// AnalyzeChecked refuses to run when the validation report carries
// ERROR findings. A caller proceeding past a hard validation error is a
// precondition violation, not a computable case.
func (a *Analyzer) AnalyzeChecked(in params.Inputs, report validation.Report) (Result, error) {
	if report.HasErrors() {
		f := report.Errors()[0]
		return Result{}, errors.Validation("analysis requested despite validation errors").
			WithField(f.Field, f.Message)
	}
	return a.Analyze(in.Geometry, in.Material, in.Load, in.Environment, in.Target)
}
