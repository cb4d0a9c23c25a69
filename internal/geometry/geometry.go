// Package geometry derives the dimensions of a diamond load-transfer
// dowel from raw inputs. The diamond sits with its long diagonal across
// the joint; the loaded base is offset from the centre by half the joint
// opening, and stress decays from there toward the free tip.
package geometry

import (
	"math"

	"dovela/internal/errors"
	"dovela/internal/units"
)

// Geometry is an immutable value object in canonical millimetres.
type Geometry struct {
	SideLength   float64      `json:"side_length_mm"`
	Thickness    float64      `json:"thickness_mm"`
	JointOpening float64      `json:"joint_opening_mm"`
	Units        units.System `json:"unit_system"`

	// Derived, computed once at construction.
	DiagonalHalf    float64 `json:"diagonal_half_mm"`
	EffectiveWidth  float64 `json:"effective_width_mm"`
	EffectiveArea   float64 `json:"effective_area_mm2"`
	BaseOffset      float64 `json:"base_offset_mm"`
	EffectiveLength float64 `json:"effective_length_mm"`
}

// New builds a dowel geometry. Inputs are in the declared unit system
// (mm or in) and are converted to canonical millimetres before any
// derived quantity is computed.
func New(sideLength, thickness, jointOpening float64, us units.System) (Geometry, error) {
	side := units.LengthToMM(sideLength, us)
	t := units.LengthToMM(thickness, us)
	joint := units.LengthToMM(jointOpening, us)

	if side <= 0 {
		return Geometry{}, errors.Geometry("side length must be positive, got %g mm", side).
			WithField("side_length", sideLength)
	}
	if t <= 0 {
		return Geometry{}, errors.Geometry("thickness must be positive, got %g mm", t).
			WithField("thickness", thickness)
	}
	if joint <= 0 {
		return Geometry{}, errors.Geometry("joint opening must be positive, got %g mm", joint).
			WithField("joint_opening", jointOpening)
	}
	if joint >= side {
		return Geometry{}, errors.Geometry("joint opening (%g mm) must be less than side length (%g mm)", joint, side).
			WithField("joint_opening", jointOpening)
	}

	g := Geometry{
		SideLength:   side,
		Thickness:    t,
		JointOpening: joint,
		Units:        us,
	}

	// Distance from the diamond centre to a vertex.
	g.DiagonalHalf = side * math.Sqrt2 / 2

	// The loaded side transfers the load over the full side width.
	g.EffectiveWidth = side
	g.EffectiveArea = g.EffectiveWidth * t

	// The decay coordinate origin sits half a joint opening past the
	// centre plane ("ap" offset); the effective decay length runs from
	// there to the free tip.
	g.BaseOffset = joint / 2
	g.EffectiveLength = g.DiagonalHalf - g.BaseOffset

	if g.EffectiveLength <= 0 {
		return Geometry{}, errors.Geometry("joint opening leaves no embedded length (offset %g mm >= half diagonal %g mm)",
			g.BaseOffset, g.DiagonalHalf).WithField("joint_opening", jointOpening)
	}

	return g, nil
}

// Inside reports whether a canonical-mm point lies within the diamond
// |x| + |y| <= diagonalHalf.
func (g Geometry) Inside(x, y float64) bool {
	return math.Abs(x)+math.Abs(y) <= g.DiagonalHalf
}

// Dimensions is the geometry expressed in a display unit system.
type Dimensions struct {
	SideLength   float64 `json:"side_length"`
	Thickness    float64 `json:"thickness"`
	JointOpening float64 `json:"joint_opening"`
	LengthUnit   string  `json:"length_unit"`
}

// In converts the raw dimensions back to the requested display system.
func (g Geometry) In(us units.System) Dimensions {
	return Dimensions{
		SideLength:   units.LengthFromMM(g.SideLength, us),
		Thickness:    units.LengthFromMM(g.Thickness, us),
		JointOpening: units.LengthFromMM(g.JointOpening, us),
		LengthUnit:   units.LengthUnit(us),
	}
}
