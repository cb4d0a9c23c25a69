// Package validation checks analysis inputs against practical design
// limits before any stress is computed. ERROR findings block analysis;
// WARNING findings annotate the report but let it proceed.
package validation

import (
	"fmt"

	"dovela/internal/geometry"
	"dovela/internal/material"
	"dovela/internal/params"
)

// Severity of a single finding.
type Severity string

const (
	SeverityOK      Severity = "OK"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// Finding is one validation result tied to an input field.
type Finding struct {
	Field          string   `json:"field"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// Report collects the findings for one set of inputs.
type Report struct {
	Findings []Finding `json:"findings"`
}

// HasErrors reports whether any finding blocks analysis.
func (r Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Warnings returns the number of WARNING findings.
func (r Report) Warnings() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Errors returns the ERROR findings only.
func (r Report) Errors() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) add(field string, sev Severity, msg, rec string) {
	r.Findings = append(r.Findings, Finding{Field: field, Severity: sev, Message: msg, Recommendation: rec})
}

// Limits are the practical design ranges, canonical mm and N. The
// defaults reflect common diamond dowel products for slab-on-ground
// joints.
type Limits struct {
	MinSide            float64
	MaxSide            float64
	MinThickness       float64
	MaxThickness       float64
	MinSlenderness     float64
	MaxSlenderness     float64
	JointOpeningRatio  float64
	TypicalServiceLoad float64
}

// DefaultLimits returns the standard design ranges.
func DefaultLimits() Limits {
	return Limits{
		MinSide:            100,
		MaxSide:            200,
		MinThickness:       6,
		MaxThickness:       50,
		MinSlenderness:     0.05,
		MaxSlenderness:     0.4,
		JointOpeningRatio:  0.1,
		TypicalServiceLoad: 22200,
	}
}

// Validator applies a set of limits to canonical inputs.
type Validator struct {
	limits Limits
}

// NewValidator builds a validator, filling zero limits with defaults.
func NewValidator(l Limits) *Validator {
	d := DefaultLimits()
	if l.MinSide == 0 {
		l.MinSide = d.MinSide
	}
	if l.MaxSide == 0 {
		l.MaxSide = d.MaxSide
	}
	if l.MinThickness == 0 {
		l.MinThickness = d.MinThickness
	}
	if l.MaxThickness == 0 {
		l.MaxThickness = d.MaxThickness
	}
	if l.MinSlenderness == 0 {
		l.MinSlenderness = d.MinSlenderness
	}
	if l.MaxSlenderness == 0 {
		l.MaxSlenderness = d.MaxSlenderness
	}
	if l.JointOpeningRatio == 0 {
		l.JointOpeningRatio = d.JointOpeningRatio
	}
	if l.TypicalServiceLoad == 0 {
		l.TypicalServiceLoad = d.TypicalServiceLoad
	}
	return &Validator{limits: l}
}

// Validate checks canonical inputs against the design limits and returns
// every finding, worst first within each field.
func (v *Validator) Validate(in params.Inputs) Report {
	var r Report
	v.checkGeometry(&r, in.Geometry)
	v.checkMaterial(&r, in.Material)
	v.checkLoad(&r, in.Load)
	v.checkEnvironment(&r, in.Environment)
	v.checkTarget(&r, in.Target)
	return r
}

func (v *Validator) checkGeometry(r *Report, g geometry.Geometry) {
	l := v.limits
	if g.SideLength < l.MinSide || g.SideLength > l.MaxSide {
		r.add("side_length", SeverityError,
			fmt.Sprintf("side length %.1f mm is outside the %g-%g mm product range", g.SideLength, l.MinSide, l.MaxSide),
			"use a plate size from the manufacturer's catalog")
	}
	if g.Thickness < l.MinThickness || g.Thickness > l.MaxThickness {
		r.add("thickness", SeverityError,
			fmt.Sprintf("thickness %.1f mm is outside the %g-%g mm range", g.Thickness, l.MinThickness, l.MaxThickness),
			"use a plate thickness from the manufacturer's catalog")
	}
	if ratio := g.Thickness / g.SideLength; ratio < l.MinSlenderness {
		r.add("thickness_ratio", SeverityWarning,
			fmt.Sprintf("thickness to side ratio %.3f is below %g; the plate is very slender", ratio, l.MinSlenderness),
			"increase the thickness or reduce the side length")
	} else if ratio > l.MaxSlenderness {
		r.add("thickness_ratio", SeverityWarning,
			fmt.Sprintf("thickness to side ratio %.3f exceeds %g; the plate is unusually stocky", ratio, l.MaxSlenderness),
			"a thinner plate transfers the same load at lower cost")
	}
	if g.JointOpening > l.JointOpeningRatio*g.SideLength {
		r.add("joint_opening", SeverityWarning,
			fmt.Sprintf("joint opening %.1f mm exceeds %g%% of the side length; bending in the unsupported span becomes significant", g.JointOpening, l.JointOpeningRatio*100),
			"consider a larger dowel or confirm the expected joint movement")
	}
}

func (v *Validator) checkMaterial(r *Report, m material.Properties) {
	if m.E < 190000 || m.E > 210000 {
		r.add("e", SeverityWarning,
			fmt.Sprintf("elastic modulus %.0f MPa is unusual for structural steel", m.E),
			"expected roughly 200000 MPa")
	}
	if m.Poisson < 0.25 || m.Poisson > 0.35 {
		r.add("poisson_ratio", SeverityWarning,
			fmt.Sprintf("Poisson ratio %.2f is unusual for steel", m.Poisson),
			"expected roughly 0.30")
	}
	if min := material.MinYield(m.Grade); min > 0 && m.Fy < min {
		r.add("fy", SeverityError,
			fmt.Sprintf("yield strength %.0f MPa is below the %.0f MPa minimum for grade %s", m.Fy, min, m.Grade),
			"use the specified minimum yield for the grade or correct the grade")
	}
}

func (v *Validator) checkLoad(r *Report, lc params.LoadCase) {
	if lc.Magnitude > 2*v.limits.TypicalServiceLoad {
		r.add("magnitude", SeverityWarning,
			fmt.Sprintf("load %.0f N is more than twice the typical service load of %.0f N", lc.Magnitude, v.limits.TypicalServiceLoad),
			"confirm the wheel load; heavy-vehicle joints may need a load transfer study")
	}
	// A zero factor means unset; anything else below 1.0 would credit
	// the dowel with less than the static load.
	if f := lc.ImpactFactor; f != 0 && f < 1 {
		r.add("impact_factor", SeverityError,
			fmt.Sprintf("impact factor %.2f is below 1.0", f),
			"static loading corresponds to an impact factor of 1.0")
	}
	if f := lc.DynamicAmplification; f != 0 && f < 1 {
		r.add("dynamic_amplification", SeverityError,
			fmt.Sprintf("dynamic amplification %.2f is below 1.0", f), "")
	}
	if lc.FatigueCycles < 0 {
		r.add("fatigue_cycles", SeverityError,
			"fatigue cycle count must not be negative", "")
	} else if lc.FatigueCycles > 1e9 {
		r.add("fatigue_cycles", SeverityWarning,
			fmt.Sprintf("%.2g cycles is beyond the calibrated fatigue range", lc.FatigueCycles),
			"the fatigue factor saturates; consider a dedicated fatigue assessment")
	}
}

func (v *Validator) checkEnvironment(r *Report, env params.Environment) {
	if env.TemperatureMin > env.TemperatureMax {
		r.add("temperature_min_c", SeverityError,
			fmt.Sprintf("minimum temperature %.1f C exceeds maximum %.1f C", env.TemperatureMin, env.TemperatureMax), "")
	} else if env.ServiceTemperature < env.TemperatureMin || env.ServiceTemperature > env.TemperatureMax {
		r.add("service_temperature_c", SeverityError,
			fmt.Sprintf("service temperature %.1f C is outside the declared range %.1f to %.1f C", env.ServiceTemperature, env.TemperatureMin, env.TemperatureMax),
			"the service temperature must lie within the design extremes")
	}
	if env.HumidityAvg < 0 || env.HumidityAvg > 100 {
		r.add("humidity_avg", SeverityError,
			fmt.Sprintf("humidity %.1f%% is outside 0-100%%", env.HumidityAvg), "")
	}
	if env.WindSpeedMax < 0 {
		r.add("wind_speed_max", SeverityError,
			"wind speed must not be negative", "")
	}
}

func (v *Validator) checkTarget(r *Report, target float64) {
	switch {
	case target < 1.0:
		r.add("safety_factor_target", SeverityError,
			fmt.Sprintf("safety factor target %.2f is below 1.0", target),
			"a target below unity accepts predicted failure")
	case target < 2.0:
		r.add("safety_factor_target", SeverityWarning,
			fmt.Sprintf("safety factor target %.2f is below the customary 2.0", target),
			"")
	}
}

// Validate checks inputs with the default limits.
func Validate(in params.Inputs) Report {
	return NewValidator(Limits{}).Validate(in)
}
