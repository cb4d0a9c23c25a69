package geometry

import (
	"math"
	"testing"

	"dovela/internal/units"
)

func TestNewDerivedQuantities(t *testing.T) {
	g, err := New(150, 15, 25, units.Metric)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := g.EffectiveArea, 2250.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("EffectiveArea = %g, want %g", got, want)
	}
	if got, want := g.DiagonalHalf, 150*math.Sqrt2/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("DiagonalHalf = %g, want %g", got, want)
	}
	if got, want := g.BaseOffset, 12.5; got != want {
		t.Errorf("BaseOffset = %g, want %g", got, want)
	}
	if got, want := g.EffectiveLength, g.DiagonalHalf-12.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("EffectiveLength = %g, want %g", got, want)
	}
	if g.EffectiveWidth != g.SideLength {
		t.Errorf("EffectiveWidth = %g, want side length %g", g.EffectiveWidth, g.SideLength)
	}
}

func TestNewAreaScalesLinearly(t *testing.T) {
	g1, err := New(150, 15, 25, units.Metric)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g2, err := New(150, 30, 25, units.Metric)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if math.Abs(g2.EffectiveArea-2*g1.EffectiveArea) > 1e-9 {
		t.Errorf("doubling thickness: area %g, want %g", g2.EffectiveArea, 2*g1.EffectiveArea)
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name                  string
		side, thickness, joint float64
	}{
		{"zero side", 0, 15, 25},
		{"negative side", -150, 15, 25},
		{"zero thickness", 150, 0, 25},
		{"zero joint", 150, 15, 0},
		{"joint equals side", 150, 15, 150},
		{"joint exceeds side", 150, 15, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.side, tc.thickness, tc.joint, units.Metric); err == nil {
				t.Errorf("New(%g, %g, %g) accepted invalid dimensions", tc.side, tc.thickness, tc.joint)
			}
		})
	}
}

func TestNewConvertsImperial(t *testing.T) {
	g, err := New(6, 0.5, 1, units.Imperial)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := g.SideLength, 6*25.4; math.Abs(got-want) > 1e-9 {
		t.Errorf("SideLength = %g mm, want %g", got, want)
	}
	if got, want := g.Thickness, 12.7; math.Abs(got-want) > 1e-9 {
		t.Errorf("Thickness = %g mm, want %g", got, want)
	}

	d := g.In(units.Imperial)
	if math.Abs(d.SideLength-6) > 1e-9 {
		t.Errorf("round trip side = %g in, want 6", d.SideLength)
	}
}

func TestInside(t *testing.T) {
	g, err := New(150, 15, 25, units.Metric)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !g.Inside(0, 0) {
		t.Error("centre should be inside")
	}
	if !g.Inside(g.DiagonalHalf, 0) {
		t.Error("vertex should be on the boundary")
	}
	if g.Inside(g.DiagonalHalf, 1) {
		t.Error("point past the vertex should be outside")
	}
	if g.Inside(g.DiagonalHalf/2+1, g.DiagonalHalf/2) {
		t.Error("point past the edge should be outside")
	}
}
