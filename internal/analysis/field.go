package analysis

import (
	"encoding/json"
	"math"

	"dovela/internal/errors"
	"dovela/internal/geometry"
)

// Spatial decay of stress along the dowel body, from the loaded base
// (xi = 0) to the free tip (xi = 1). Both the analyzer's peak value and
// the field sampler share this model; keeping it in one place is what
// guarantees they agree.

// Zone breakpoints and concentration levels of the piecewise model.
const (
	contactZoneEnd    = 0.1
	transitionZoneEnd = 0.3

	contactConcentration = DefaultKt // flat maximum at the loaded edge
	transitionScale      = 1.8
	transitionDecay      = 5.0
	tipConcentration     = 0.2 // flat minimum toward the tip
)

// Concentration returns the three-branch concentration factor at the
// normalized position xi in [0, 1]: a flat contact zone at the loaded
// base, an exponential transition, and a flat tip zone.
func Concentration(xi float64) float64 {
	switch {
	case xi < contactZoneEnd:
		return contactConcentration
	case xi < transitionZoneEnd:
		return transitionScale * math.Exp(-transitionDecay*xi)
	default:
		return tipConcentration
	}
}

// StressAt evaluates the decayed stress at normalized position xi for a
// base stress, using the decay envelope alpha. The combined model keeps
// the maximum at the loaded base and better than a 5:1 ratio over the
// tip, which is the physical expectation for diamond dowels.
func StressAt(baseStress, xi, alpha float64) float64 {
	if xi < 0 {
		xi = 0
	} else if xi > 1 {
		xi = 1
	}
	return baseStress * math.Exp(-alpha*xi) * Concentration(xi)
}

// Xi normalizes a canonical-mm x position (measured from the diamond
// centre) to the decay coordinate: 0 at the loaded base offset, 1 at
// the free tip. Clamped to [0, 1].
func Xi(g geometry.Geometry, x float64) float64 {
	xi := (x - g.BaseOffset) / g.EffectiveLength
	if xi < 0 {
		return 0
	}
	if xi > 1 {
		return 1
	}
	return xi
}

// Field is a sampled stress distribution over the half-diamond, for
// rendering by external consumers. Cells outside the dowel boundary are
// NaN so plotting layers can mask them.
type Field struct {
	X         []float64   `json:"x_mm"`
	Y         []float64   `json:"y_mm"`
	Stress    [][]float64 `json:"stress_mpa"`
	MaxStress float64     `json:"max_stress_mpa"`
	MinStress float64     `json:"min_stress_mpa"`
}

// MarshalJSON emits masked cells as null, since encoding/json rejects
// NaN. In-process consumers still see NaN in Stress.
func (f Field) MarshalJSON() ([]byte, error) {
	stress := make([][]*float64, len(f.Stress))
	for j, row := range f.Stress {
		out := make([]*float64, len(row))
		for i := range row {
			if !math.IsNaN(row[i]) {
				out[i] = &row[i]
			}
		}
		stress[j] = out
	}
	return json.Marshal(struct {
		X         []float64    `json:"x_mm"`
		Y         []float64    `json:"y_mm"`
		Stress    [][]*float64 `json:"stress_mpa"`
		MaxStress float64      `json:"max_stress_mpa"`
		MinStress float64      `json:"min_stress_mpa"`
	}{f.X, f.Y, stress, f.MaxStress, f.MinStress})
}

// SampleField evaluates the decay model on an nx by ny grid covering the
// loaded half of the diamond, from the base offset to the free tip.
// Every cell depends only on its own coordinate, so callers may shard
// the grid if they want parallel evaluation.
func (a *Analyzer) SampleField(g geometry.Geometry, baseStress float64, nx, ny int) (Field, error) {
	if nx < 2 || ny < 2 {
		return Field{}, errors.Input("grid resolution must be at least 2x2").
			WithField("nx", nx)
	}
	if g.EffectiveLength <= 0 {
		return Field{}, errors.Degenerate("effective length %g mm", g.EffectiveLength)
	}

	f := Field{
		X:         make([]float64, nx),
		Y:         make([]float64, ny),
		Stress:    make([][]float64, ny),
		MaxStress: math.Inf(-1),
		MinStress: math.Inf(1),
	}
	for i := 0; i < nx; i++ {
		f.X[i] = g.BaseOffset + float64(i)/float64(nx-1)*g.EffectiveLength
	}
	for j := 0; j < ny; j++ {
		f.Y[j] = -g.DiagonalHalf + float64(j)/float64(ny-1)*2*g.DiagonalHalf
	}

	for j := 0; j < ny; j++ {
		row := make([]float64, nx)
		for i := 0; i < nx; i++ {
			if !g.Inside(f.X[i], f.Y[j]) {
				row[i] = math.NaN()
				continue
			}
			s := StressAt(baseStress, Xi(g, f.X[i]), a.cfg.Alpha)
			row[i] = s
			if s > f.MaxStress {
				f.MaxStress = s
			}
			if s < f.MinStress {
				f.MinStress = s
			}
		}
		f.Stress[j] = row
	}

	if math.IsInf(f.MaxStress, -1) {
		return Field{}, errors.Degenerate("no grid cell falls inside the dowel boundary")
	}
	return f, nil
}

// SampleField samples with the default calibration.
func SampleField(g geometry.Geometry, baseStress float64, nx, ny int) (Field, error) {
	return NewAnalyzer(DefaultConfig()).SampleField(g, baseStress, nx, ny)
}
