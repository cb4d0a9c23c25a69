package analysis

import (
	"math"
	"testing"

	"dovela/internal/params"
)

func TestTemperatureFactorBands(t *testing.T) {
	cases := []struct {
		max, min float64
		want     float64
	}{
		{30, 10, 1.05},
		{40, 0, 1.05},
		{41, 0, 1.10},
		{50, -10, 1.10},
		{60, 0, 1.10},
		{55, -15, 1.15},
		{80, 0, 1.15},
	}
	for _, tc := range cases {
		env := params.Environment{TemperatureMax: tc.max, TemperatureMin: tc.min}
		if got := TemperatureFactor(env); got != tc.want {
			t.Errorf("TemperatureFactor(range %g) = %g, want %g", tc.max-tc.min, got, tc.want)
		}
	}
}

func TestEnvironmentalFactorSeverityOrdering(t *testing.T) {
	exposures := []params.Exposure{
		params.ExposureNormal,
		params.ExposureIndustrial,
		params.ExposureMarina,
		params.ExposureSevere,
	}
	prev := 0.0
	for _, e := range exposures {
		got := EnvironmentalFactor(params.Environment{Exposure: e})
		if got <= prev {
			t.Errorf("EnvironmentalFactor(%s) = %g, not above %g", e, got, prev)
		}
		prev = got
	}
}

func TestEnvironmentalFactorHumidityAndWind(t *testing.T) {
	base := EnvironmentalFactor(params.Environment{Exposure: params.ExposureMarina})
	humid := EnvironmentalFactor(params.Environment{Exposure: params.ExposureMarina, HumidityAvg: 85})
	if math.Abs(humid-base*1.05) > 1e-12 {
		t.Errorf("humidity surcharge: %g, want %g", humid, base*1.05)
	}
	windy := EnvironmentalFactor(params.Environment{Exposure: params.ExposureMarina, HumidityAvg: 85, WindSpeedMax: 45})
	if math.Abs(windy-base*1.05*1.03) > 1e-12 {
		t.Errorf("wind surcharge: %g, want %g", windy, base*1.05*1.03)
	}

	// At-threshold values add nothing.
	if got := EnvironmentalFactor(params.Environment{HumidityAvg: 80, WindSpeedMax: 40}); got != 1.0 {
		t.Errorf("threshold humidity/wind: %g, want 1.0", got)
	}
}

func TestDynamicFactor(t *testing.T) {
	if got := DynamicFactor(params.LoadCase{}); got != 1.0 {
		t.Errorf("unset inputs: %g, want 1.0", got)
	}
	got := DynamicFactor(params.LoadCase{ImpactFactor: 1.30, DynamicAmplification: 1.20})
	if math.Abs(got-1.56) > 1e-12 {
		t.Errorf("DynamicFactor = %g, want 1.56", got)
	}
}

func TestDynamicFactorNeverReducesStress(t *testing.T) {
	if got := DynamicFactor(params.LoadCase{ImpactFactor: 0.8, DynamicAmplification: 1.0}); got != 1.0 {
		t.Errorf("sub-unity impact: %g, want 1.0", got)
	}
	if got := DynamicFactor(params.LoadCase{ImpactFactor: 1.3, DynamicAmplification: 0.5}); got != 1.3 {
		t.Errorf("sub-unity amplification: %g, want 1.3", got)
	}
	if got := DynamicFactor(params.LoadCase{ImpactFactor: -2}); got != 1.0 {
		t.Errorf("negative impact: %g, want 1.0", got)
	}
}

func TestFatigueFactorSaturates(t *testing.T) {
	cases := []struct {
		cycles, want float64
	}{
		{0, 1.05},
		{1e5, 1.05},
		{1e6, 1.05},
		{5e6, 1.10},
		{1e7, 1.10},
		{2e7, 1.15},
		{1e12, 1.15},
	}
	for _, tc := range cases {
		if got := FatigueFactor(tc.cycles); got != tc.want {
			t.Errorf("FatigueFactor(%g) = %g, want %g", tc.cycles, got, tc.want)
		}
	}
}

func TestTotalIsProduct(t *testing.T) {
	f := Factors{Temperature: 1.15, Environmental: 1.2978, Dynamic: 1.56, Fatigue: 1.10}
	want := 1.15 * 1.2978 * 1.56 * 1.10
	if math.Abs(f.Total()-want) > 1e-12 {
		t.Errorf("Total = %g, want %g", f.Total(), want)
	}
}
