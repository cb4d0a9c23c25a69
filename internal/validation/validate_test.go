package validation

import (
	"testing"

	"dovela/internal/params"
)

func buildInputs(t *testing.T, mutate func(*params.Request)) params.Inputs {
	t.Helper()
	req := params.Request{
		Geometry: params.GeometryParams{SideLength: 150, Thickness: 15, JointOpening: 25},
		Material: params.MaterialParams{Grade: "A572-50"},
		Load:     params.LoadCase{Magnitude: 35000, FatigueCycles: 5e6},
		Environment: params.Environment{
			ServiceTemperature: 35,
			TemperatureMax:     55,
			TemperatureMin:     -15,
			Exposure:           params.ExposureMarina,
			HumidityAvg:        85,
			WindSpeedMax:       45,
		},
		SafetyFactorTarget: 2.0,
	}
	if mutate != nil {
		mutate(&req)
	}
	in, err := req.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return in
}

func findingFor(r Report, field string) (Finding, bool) {
	for _, f := range r.Findings {
		if f.Field == field {
			return f, true
		}
	}
	return Finding{}, false
}

func TestValidateReferenceCasePasses(t *testing.T) {
	r := Validate(buildInputs(t, nil))
	if r.HasErrors() {
		t.Fatalf("reference case should not error: %+v", r.Errors())
	}

	// The 25 mm opening on a 150 mm dowel exceeds the 10% guideline
	// and should warn without blocking.
	f, ok := findingFor(r, "joint_opening")
	if !ok {
		t.Fatal("expected a joint_opening finding")
	}
	if f.Severity != SeverityWarning {
		t.Errorf("joint_opening severity = %s, want WARNING", f.Severity)
	}
}

func TestValidateGeometryOutsideRangeBlocks(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Geometry.SideLength = 250
		req.Geometry.Thickness = 5
	}))
	if !r.HasErrors() {
		t.Fatal("out-of-range dimensions must block analysis")
	}
	f, ok := findingFor(r, "side_length")
	if !ok || f.Severity != SeverityError {
		t.Errorf("side 250: got %+v, want ERROR", f)
	}
	f, ok = findingFor(r, "thickness")
	if !ok || f.Severity != SeverityError {
		t.Errorf("thickness 5: got %+v, want ERROR", f)
	}
}

func TestValidateSlendernessRatio(t *testing.T) {
	// 7/150 = 0.047, inside the thickness range but below the 0.05
	// slenderness guideline.
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Geometry.Thickness = 7
	}))
	if r.HasErrors() {
		t.Fatalf("slender plate should only warn: %+v", r.Errors())
	}
	f, ok := findingFor(r, "thickness_ratio")
	if !ok || f.Severity != SeverityWarning {
		t.Errorf("ratio 0.047: got %+v, want WARNING", f)
	}

	// 45/100 = 0.45, above the 0.4 guideline.
	r = Validate(buildInputs(t, func(req *params.Request) {
		req.Geometry.SideLength = 100
		req.Geometry.Thickness = 45
	}))
	if r.HasErrors() {
		t.Fatalf("stocky plate should only warn: %+v", r.Errors())
	}
	if _, ok := findingFor(r, "thickness_ratio"); !ok {
		t.Error("expected thickness_ratio warning for ratio 0.45")
	}

	// The reference case (15/150 = 0.1) sits inside the band.
	r = Validate(buildInputs(t, nil))
	if _, ok := findingFor(r, "thickness_ratio"); ok {
		t.Error("unexpected thickness_ratio finding for ratio 0.1")
	}
}

func TestValidateSubUnityDynamicInputs(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Load.ImpactFactor = 0.8
	}))
	f, ok := findingFor(r, "impact_factor")
	if !ok || f.Severity != SeverityError {
		t.Errorf("impact 0.8: got %+v, want ERROR", f)
	}

	r = Validate(buildInputs(t, func(req *params.Request) {
		req.Load.DynamicAmplification = 0.9
	}))
	f, ok = findingFor(r, "dynamic_amplification")
	if !ok || f.Severity != SeverityError {
		t.Errorf("amplification 0.9: got %+v, want ERROR", f)
	}
}

func TestValidateTargetSeverities(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.SafetyFactorTarget = 0.5
	}))
	f, ok := findingFor(r, "safety_factor_target")
	if !ok || f.Severity != SeverityError {
		t.Errorf("target 0.5: got %+v, want ERROR", f)
	}

	r = Validate(buildInputs(t, func(req *params.Request) {
		req.SafetyFactorTarget = 1.5
	}))
	f, ok = findingFor(r, "safety_factor_target")
	if !ok || f.Severity != SeverityWarning {
		t.Errorf("target 1.5: got %+v, want WARNING", f)
	}
}

func TestValidateServiceTemperatureOutsideRange(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Environment.ServiceTemperature = 70
	}))
	if !r.HasErrors() {
		t.Fatal("service temperature above the design maximum must error")
	}
}

func TestValidateInvertedTemperatureRange(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Environment.TemperatureMin = 60
		req.Environment.TemperatureMax = 40
	}))
	f, ok := findingFor(r, "temperature_min_c")
	if !ok || f.Severity != SeverityError {
		t.Errorf("inverted range: got %+v, want ERROR", f)
	}
}

func TestValidateYieldBelowGradeMinimum(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Material.Fy = 300 // A572-50 specifies 345 minimum
	}))
	f, ok := findingFor(r, "fy")
	if !ok || f.Severity != SeverityError {
		t.Errorf("low fy: got %+v, want ERROR", f)
	}
}

func TestValidateNegativeCycles(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Load.FatigueCycles = -1
	}))
	f, ok := findingFor(r, "fatigue_cycles")
	if !ok || f.Severity != SeverityError {
		t.Errorf("negative cycles: got %+v, want ERROR", f)
	}
}

func TestValidateExtremeCyclesWarn(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Load.FatigueCycles = 1e10
	}))
	f, ok := findingFor(r, "fatigue_cycles")
	if !ok || f.Severity != SeverityWarning {
		t.Errorf("extreme cycles: got %+v, want WARNING", f)
	}
}

func TestValidateHeavyLoadWarns(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Load.Magnitude = 50000
	}))
	f, ok := findingFor(r, "magnitude")
	if !ok || f.Severity != SeverityWarning {
		t.Errorf("heavy load: got %+v, want WARNING", f)
	}
}

func TestValidateHumidityBounds(t *testing.T) {
	r := Validate(buildInputs(t, func(req *params.Request) {
		req.Environment.HumidityAvg = 120
	}))
	if !r.HasErrors() {
		t.Fatal("humidity above 100% must error")
	}
}

func TestReportCounts(t *testing.T) {
	r := Validate(buildInputs(t, nil))
	if r.Warnings() == 0 {
		t.Error("reference case should carry at least one warning")
	}
	if len(r.Errors()) != 0 {
		t.Errorf("unexpected errors: %+v", r.Errors())
	}
}
