// Package batch runs parameter sweeps: many analysis requests in one
// call, with spreadsheet import and export for the common workflow of
// sizing a dowel across a load or geometry range.
package batch

import (
	"sync"

	"dovela/internal/analysis"
	"dovela/internal/errors"
	"dovela/internal/params"
	"dovela/internal/validation"
)

// SweepInput is an ordered list of analysis requests.
type SweepInput struct {
	Items []params.Request `json:"items"`
}

// Outcome is the per-item result. Exactly one of Result or Error is
// meaningful; Error carries the message when the item failed.
type Outcome struct {
	Index      int               `json:"index"`
	Result     *analysis.Result  `json:"result,omitempty"`
	Validation validation.Report `json:"validation"`
	Error      string            `json:"error,omitempty"`
}

// SweepResult preserves input order regardless of completion order.
type SweepResult struct {
	Outcomes []Outcome `json:"outcomes"`
	Failed   int       `json:"failed"`
}

// Runner executes sweeps with bounded concurrency. Items are
// independent, so they run in parallel; outcomes land at their input
// index.
type Runner struct {
	analyzer  *analysis.Analyzer
	validator *validation.Validator
	workers   int
}

// NewRunner builds a runner; workers below 1 defaults to 4.
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = 4
	}
	return &Runner{
		analyzer:  analysis.NewAnalyzer(analysis.DefaultConfig()),
		validator: validation.NewValidator(validation.Limits{}),
		workers:   workers,
	}
}

// Run executes every item and reports per-item outcomes. A failed item
// does not abort the sweep.
func (r *Runner) Run(in SweepInput) (SweepResult, error) {
	if len(in.Items) == 0 {
		return SweepResult{}, errors.Input("no items")
	}

	out := SweepResult{Outcomes: make([]Outcome, len(in.Items))}
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out.Outcomes[i] = r.runOne(i, in.Items[i])
			}
		}()
	}
	for i := range in.Items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, o := range out.Outcomes {
		if o.Error != "" {
			out.Failed++
		}
	}
	return out, nil
}

func (r *Runner) runOne(i int, req params.Request) Outcome {
	o := Outcome{Index: i}
	in, err := req.Build()
	if err != nil {
		o.Error = err.Error()
		return o
	}
	o.Validation = r.validator.Validate(in)
	if o.Validation.HasErrors() {
		o.Error = "validation failed"
		return o
	}
	res, err := r.analyzer.Analyze(in.Geometry, in.Material, in.Load, in.Environment, in.Target)
	if err != nil {
		o.Error = err.Error()
		return o
	}
	o.Result = &res
	return o
}
