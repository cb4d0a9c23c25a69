// Package params defines the plain parameter structures supplied by the
// outer layers (HTTP handlers, CLI, spreadsheet import) and the single
// conversion point that turns them into validated canonical value objects.
package params

import (
	"dovela/internal/errors"
	"dovela/internal/geometry"
	"dovela/internal/material"
	"dovela/internal/units"
)

// Exposure is the categorical environmental exposure condition, ordered
// by severity: Normal < Industrial < Marina < Severe.
type Exposure string

const (
	ExposureNormal     Exposure = "Normal"
	ExposureIndustrial Exposure = "Industrial"
	ExposureMarina     Exposure = "Marina"
	ExposureSevere     Exposure = "Severe"
)

// Rank returns the severity order of the exposure condition. Unknown
// conditions rank as Normal.
func (e Exposure) Rank() int {
	switch e {
	case ExposureIndustrial:
		return 1
	case ExposureMarina:
		return 2
	case ExposureSevere:
		return 3
	default:
		return 0
	}
}

// LoadCase holds the applied load in canonical newtons plus the dynamic
// and fatigue inputs. Multiplicative factors at 1.0 mean "no effect";
// zero values are treated as unset and defaulted.
type LoadCase struct {
	Magnitude            float64 `json:"magnitude_n"`
	ImpactFactor         float64 `json:"impact_factor"`
	DynamicAmplification float64 `json:"dynamic_amplification"`
	FatigueCycles        float64 `json:"fatigue_cycles"`
}

// Environment holds the service conditions. Temperatures in Celsius,
// humidity in percent, wind speed in km/h. Pure input; plausibility is
// the validator's concern.
type Environment struct {
	ServiceTemperature float64  `json:"service_temperature_c"`
	TemperatureMax     float64  `json:"temperature_max_c"`
	TemperatureMin     float64  `json:"temperature_min_c"`
	Exposure           Exposure `json:"exposure_condition"`
	HumidityAvg        float64  `json:"humidity_avg"`
	WindSpeedMax       float64  `json:"wind_speed_max"`
}

// GeometryParams are the raw dowel dimensions in the request's declared
// unit system.
type GeometryParams struct {
	SideLength   float64 `json:"side_length"`
	Thickness    float64 `json:"thickness"`
	JointOpening float64 `json:"joint_opening"`
}

// MaterialParams identify the steel. When Grade names a catalog grade and
// E/Fy are zero, catalog values are used.
type MaterialParams struct {
	Grade        string  `json:"grade"`
	E            float64 `json:"e"`
	Fy           float64 `json:"fy"`
	PoissonRatio float64 `json:"poisson_ratio"`
}

// Request is the full analysis input as supplied by a caller, with a
// declared unit system. Lengths are mm or in, the load is N or lbf, and
// stresses are MPa or ksi according to Units.
type Request struct {
	Units              string         `json:"units"`
	Geometry           GeometryParams `json:"geometry"`
	Material           MaterialParams `json:"material"`
	Load               LoadCase       `json:"load"`
	Environment        Environment    `json:"environment"`
	SafetyFactorTarget float64        `json:"safety_factor_target"`
}

// Inputs are the canonical value objects an analysis consumes.
type Inputs struct {
	System      units.System
	Geometry    geometry.Geometry
	Material    material.Properties
	Load        LoadCase
	Environment Environment
	Target      float64
}

// Build converts a request into canonical value objects. This is the one
// place raw parameters cross into the core; past it everything is mm, N
// and MPa.
func (r Request) Build() (Inputs, error) {
	us, err := units.Parse(r.Units)
	if err != nil {
		return Inputs{}, err
	}

	geom, err := geometry.New(r.Geometry.SideLength, r.Geometry.Thickness, r.Geometry.JointOpening, us)
	if err != nil {
		return Inputs{}, err
	}

	m := r.Material
	if cat, ok := material.ByGrade(m.Grade); ok {
		if m.E == 0 {
			m.E = units.StressFromMPa(cat.E, us)
		}
		if m.Fy == 0 {
			m.Fy = units.StressFromMPa(cat.Fy, us)
		}
		if m.PoissonRatio == 0 {
			m.PoissonRatio = cat.Poisson
		}
	}
	if m.PoissonRatio == 0 {
		m.PoissonRatio = 0.3
	}
	mat, err := material.New(m.Grade,
		units.StressToMPa(m.E, us),
		units.StressToMPa(m.Fy, us),
		m.PoissonRatio)
	if err != nil {
		return Inputs{}, err
	}

	lc := r.Load
	lc.Magnitude = units.ForceToN(lc.Magnitude, us)
	if lc.Magnitude < 0 {
		return Inputs{}, errors.Input("load magnitude must not be negative").
			WithField("magnitude", r.Load.Magnitude)
	}
	if lc.ImpactFactor == 0 {
		lc.ImpactFactor = 1.0
	}
	if lc.DynamicAmplification == 0 {
		lc.DynamicAmplification = 1.0
	}

	env := r.Environment
	if env.Exposure == "" {
		env.Exposure = ExposureNormal
	}

	target := r.SafetyFactorTarget
	if target == 0 {
		target = 2.0
	}

	return Inputs{
		System:      us,
		Geometry:    geom,
		Material:    mat,
		Load:        lc,
		Environment: env,
		Target:      target,
	}, nil
}
