package analysis

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestConcentrationBranches(t *testing.T) {
	if got := Concentration(0); got != DefaultKt {
		t.Errorf("Concentration(0) = %g, want %g", got, DefaultKt)
	}
	if got := Concentration(0.05); got != DefaultKt {
		t.Errorf("Concentration(0.05) = %g, want %g", got, DefaultKt)
	}
	if got, want := Concentration(0.2), 1.8*math.Exp(-1.0); math.Abs(got-want) > 1e-12 {
		t.Errorf("Concentration(0.2) = %g, want %g", got, want)
	}
	if got := Concentration(0.5); got != 0.2 {
		t.Errorf("Concentration(0.5) = %g, want 0.2", got)
	}
	if got := Concentration(1); got != 0.2 {
		t.Errorf("Concentration(1) = %g, want 0.2", got)
	}
}

func TestStressAtEndpoints(t *testing.T) {
	base := 100.0

	atBase := StressAt(base, 0, DefaultAlpha)
	if got, want := atBase, base*DefaultKt; math.Abs(got-want) > 1e-9 {
		t.Errorf("stress at base = %g, want %g", got, want)
	}

	atTip := StressAt(base, 1, DefaultAlpha)
	if got, want := atTip, base*math.Exp(-DefaultAlpha)*0.2; math.Abs(got-want) > 1e-9 {
		t.Errorf("stress at tip = %g, want %g", got, want)
	}

	// The concentrated base stress dominates the tip by more than 5:1.
	if atBase/atTip < 5 {
		t.Errorf("base:tip ratio = %g, want > 5", atBase/atTip)
	}

	// Out-of-range positions clamp.
	if got := StressAt(base, -0.5, DefaultAlpha); got != atBase {
		t.Errorf("clamped low = %g, want %g", got, atBase)
	}
	if got := StressAt(base, 1.5, DefaultAlpha); got != atTip {
		t.Errorf("clamped high = %g, want %g", got, atTip)
	}
}

func TestStressAtMonotoneAcrossZones(t *testing.T) {
	prev := math.Inf(1)
	for xi := 0.0; xi <= 1.0; xi += 0.01 {
		s := StressAt(100, xi, DefaultAlpha)
		if s > prev+1e-9 {
			t.Fatalf("stress increased at xi=%g: %g > %g", xi, s, prev)
		}
		prev = s
	}
}

func TestSampleField(t *testing.T) {
	g := referenceGeometry(t)
	a := NewAnalyzer(DefaultConfig())

	f, err := a.SampleField(g, 100, 41, 41)
	if err != nil {
		t.Fatalf("SampleField: %v", err)
	}

	if len(f.X) != 41 || len(f.Y) != 41 || len(f.Stress) != 41 {
		t.Fatalf("grid shape %dx%d, rows %d", len(f.X), len(f.Y), len(f.Stress))
	}
	if f.X[0] != g.BaseOffset || math.Abs(f.X[40]-g.DiagonalHalf) > 1e-9 {
		t.Errorf("x range [%g, %g], want [%g, %g]", f.X[0], f.X[40], g.BaseOffset, g.DiagonalHalf)
	}

	// Peak sits at the loaded base on the axis.
	if got, want := f.MaxStress, 100*DefaultKt; math.Abs(got-want) > 1e-9 {
		t.Errorf("MaxStress = %g, want %g", got, want)
	}
	if f.MaxStress/f.MinStress < 5 {
		t.Errorf("max:min ratio = %g, want > 5", f.MaxStress/f.MinStress)
	}

	// Corners lie outside the diamond and must be masked.
	if !math.IsNaN(f.Stress[0][40]) {
		t.Errorf("corner cell = %g, want NaN", f.Stress[0][40])
	}
	// The axis row is entirely inside.
	for i, s := range f.Stress[20] {
		if math.IsNaN(s) {
			t.Errorf("axis cell %d masked", i)
		}
	}
	t.Logf("field max %.2f MPa, min %.4f MPa", f.MaxStress, f.MinStress)
}

func TestSampleFieldRejectsTinyGrid(t *testing.T) {
	g := referenceGeometry(t)
	if _, err := SampleField(g, 100, 1, 10); err == nil {
		t.Error("accepted 1-column grid")
	}
}

func TestFieldMarshalsMaskedCellsAsNull(t *testing.T) {
	g := referenceGeometry(t)
	f, err := SampleField(g, 100, 11, 11)
	if err != nil {
		t.Fatalf("SampleField: %v", err)
	}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "null") {
		t.Error("expected masked cells to marshal as null")
	}
	if strings.Contains(string(data), "NaN") {
		t.Error("NaN leaked into JSON")
	}
}
