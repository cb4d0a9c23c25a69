// Package analysis implements the classical stress model for diamond
// load-transfer dowels: average contact stress, geometric concentration,
// the service-condition modification pipeline, and the spatial decay
// field. Closed-form throughout; this is not an FEA solver.
package analysis

import (
	"math"

	"dovela/internal/errors"
	"dovela/internal/geometry"
	"dovela/internal/material"
	"dovela/internal/params"
)

// Calibration constants. Named so a code edition or material grade can
// override them without touching the algorithm.
const (
	// DefaultKt is the static stress-concentration factor for the
	// angular loaded edge of the diamond.
	DefaultKt = 2.5

	// DefaultAlpha controls the exponential stress-decay envelope
	// along the dowel body.
	DefaultAlpha = 3.0

	// DefaultFixedAllowable is the AASHTO allowable stress for dowel
	// steel, 275 MPa (40 ksi).
	DefaultFixedAllowable = 275.0

	// DefaultYieldFraction is the allowable fraction of fy when the
	// yield-fraction basis is selected.
	DefaultYieldFraction = 0.8

	// MaxReportedSafety caps the reported safety factor. Keeps the
	// zero-load case finite; anything above this reads as "not
	// governing" anyway.
	MaxReportedSafety = 10.0
)

// AllowableBasis selects how the allowable stress is derived. The
// reference material implies both bases in different places, so the
// choice is explicit configuration rather than a hard-coded value.
type AllowableBasis int

const (
	// BasisFixedAASHTO uses the fixed code limit (275 MPa class).
	BasisFixedAASHTO AllowableBasis = iota

	// BasisYieldFraction uses YieldFraction * fy of the actual grade.
	BasisYieldFraction
)

// Config carries the calibration constants for one analyzer.
type Config struct {
	Kt             float64
	Alpha          float64
	Basis          AllowableBasis
	FixedAllowable float64
	YieldFraction  float64
}

// DefaultConfig returns the AASHTO-calibrated defaults.
func DefaultConfig() Config {
	return Config{
		Kt:             DefaultKt,
		Alpha:          DefaultAlpha,
		Basis:          BasisFixedAASHTO,
		FixedAllowable: DefaultFixedAllowable,
		YieldFraction:  DefaultYieldFraction,
	}
}

// Analyzer evaluates the classical stress model. It holds no per-call
// state; one analyzer may serve concurrent analyses.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer builds an analyzer with the given calibration.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.Kt <= 0 {
		cfg.Kt = DefaultKt
	}
	if cfg.Alpha <= 0 {
		cfg.Alpha = DefaultAlpha
	}
	if cfg.FixedAllowable <= 0 {
		cfg.FixedAllowable = DefaultFixedAllowable
	}
	if cfg.YieldFraction <= 0 {
		cfg.YieldFraction = DefaultYieldFraction
	}
	return &Analyzer{cfg: cfg}
}

// Result is the immutable outcome of one analysis. Stresses in MPa,
// displacement in mm. Info keeps every intermediate value for audit.
type Result struct {
	SafetyFactor    float64            `json:"safety_factor"`
	MaxStress       float64            `json:"max_stress_mpa"`
	MaxDisplacement float64            `json:"max_displacement_mm"`
	MeetsTarget     bool               `json:"meets_target"`
	Info            map[string]float64 `json:"analysis_info"`
	Notes           string             `json:"notes"`
}

// Analyze runs the classical model. Deterministic and pure: no I/O, no
// logging, no retained state. The caller is responsible for gating on
// the validation report first; Analyze does not re-validate.
func (a *Analyzer) Analyze(geom geometry.Geometry, mat material.Properties,
	lc params.LoadCase, env params.Environment, target float64) (Result, error) {

	area := geom.EffectiveArea
	if area <= 0 || geom.EffectiveLength <= 0 {
		return Result{}, errors.Degenerate("effective area %g mm2, effective length %g mm", area, geom.EffectiveLength).
			WithField("effective_area_mm2", area)
	}

	// Average contact stress over the loaded side: N / mm2 = MPa.
	baseStress := lc.Magnitude / area

	// Peak at the loaded edge from geometric angularity.
	baseMax := baseStress * a.cfg.Kt

	factors := ComputeFactors(lc, env)
	total := factors.Total()
	if total <= 0 {
		return Result{}, errors.Factor("total modification factor %g is non-physical", total).
			WithField("total_modification_factor", total)
	}

	modified := baseMax * total
	if lc.Magnitude > 0 && modified <= 0 {
		return Result{}, errors.Factor("modified stress %g MPa under load %g N", modified, lc.Magnitude)
	}

	allowable := a.allowableStress(mat)
	safety := MaxReportedSafety
	if modified > 0 {
		safety = math.Min(allowable/modified, MaxReportedSafety)
	}

	// Linear-elastic displacement estimate: sigma * L / E over the
	// effective width. An order-of-magnitude figure, not a deflection
	// solution.
	displacement := modified * geom.EffectiveWidth / mat.E

	res := Result{
		SafetyFactor:    safety,
		MaxStress:       modified,
		MaxDisplacement: displacement,
		MeetsTarget:     safety >= target,
		Info: map[string]float64{
			"effective_area_mm2":        area,
			"base_stress":               baseStress,
			"kt":                        a.cfg.Kt,
			"base_max_stress":           baseMax,
			"temperature_factor":        factors.Temperature,
			"environmental_factor":      factors.Environmental,
			"dynamic_factor":            factors.Dynamic,
			"fatigue_factor":            factors.Fatigue,
			"total_modification_factor": total,
			"modified_stress":           modified,
			"allowable_stress":          allowable,
			"safety_factor_target":      target,
		},
		Notes: "Classical closed-form dowel model per AASHTO practice.",
	}
	return res, nil
}

func (a *Analyzer) allowableStress(mat material.Properties) float64 {
	if a.cfg.Basis == BasisYieldFraction {
		return a.cfg.YieldFraction * mat.Fy
	}
	return a.cfg.FixedAllowable
}

// Analyze runs the model with the default AASHTO calibration.
func Analyze(geom geometry.Geometry, mat material.Properties,
	lc params.LoadCase, env params.Environment, target float64) (Result, error) {
	return NewAnalyzer(DefaultConfig()).Analyze(geom, mat, lc, env, target)
}
