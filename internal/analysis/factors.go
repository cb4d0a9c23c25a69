package analysis

import (
	"dovela/internal/params"
)

// Modification factors adjust the base concentrated stress for service
// conditions. Each is an independent pure function of its driving inputs
// and returns a multiplier >= 1.0; the analyzer combines them
// multiplicatively.

// Factors is the audit breakdown of the pipeline.
type Factors struct {
	Temperature   float64 `json:"temperature_factor"`
	Environmental float64 `json:"environmental_factor"`
	Dynamic       float64 `json:"dynamic_factor"`
	Fatigue       float64 `json:"fatigue_factor"`
}

// Total combines the four factors multiplicatively.
func (f Factors) Total() float64 {
	return f.Temperature * f.Environmental * f.Dynamic * f.Fatigue
}

// ComputeFactors evaluates the full pipeline for a load case and service
// environment.
func ComputeFactors(lc params.LoadCase, env params.Environment) Factors {
	return Factors{
		Temperature:   TemperatureFactor(env),
		Environmental: EnvironmentalFactor(env),
		Dynamic:       DynamicFactor(lc),
		Fatigue:       FatigueFactor(lc.FatigueCycles),
	}
}

// TemperatureFactor maps the design thermal range to a multiplier.
// A wider range between extreme temperatures means larger thermal
// movements and a reduced stress margin.
func TemperatureFactor(env params.Environment) float64 {
	tempRange := env.TemperatureMax - env.TemperatureMin
	switch {
	case tempRange > 60:
		return 1.15
	case tempRange > 40:
		return 1.10
	default:
		return 1.05
	}
}

// EnvironmentalFactor maps exposure severity, humidity and wind to a
// corrosion/degradation multiplier. Severity ordering is
// Normal < Industrial < Marina < Severe.
func EnvironmentalFactor(env params.Environment) float64 {
	var factor float64
	switch env.Exposure {
	case params.ExposureMarina:
		factor = 1.20
	case params.ExposureIndustrial:
		factor = 1.15
	case params.ExposureSevere:
		factor = 1.25
	default:
		factor = 1.0
	}
	if env.HumidityAvg > 80 {
		factor *= 1.05
	}
	if env.WindSpeedMax > 40 {
		factor *= 1.03
	}
	return factor
}

// DynamicFactor combines traffic impact with resonance amplification.
// Anything below 1.0, including the zero unset value, counts as 1.0:
// dynamic effects never reduce the static stress.
func DynamicFactor(lc params.LoadCase) float64 {
	impact := lc.ImpactFactor
	if impact < 1.0 {
		impact = 1.0
	}
	amp := lc.DynamicAmplification
	if amp < 1.0 {
		amp = 1.0
	}
	return impact * amp
}

// FatigueFactor maps expected cyclic load repetitions over the design
// life to a cumulative-degradation multiplier. Saturates at the
// high-cycle value so extreme counts cannot grow without bound.
func FatigueFactor(cycles float64) float64 {
	switch {
	case cycles > 1e7:
		return 1.15
	case cycles > 1e6:
		return 1.10
	default:
		return 1.05
	}
}
