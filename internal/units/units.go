// Package units handles conversion between the caller's unit system and
// the canonical internal units. All derived formulas in the analysis core
// are defined in canonical units only: millimetres for length, newtons for
// force, megapascals for stress.
package units

import (
	"strings"

	"dovela/internal/errors"
)

// System is the unit system declared by the caller.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// Conversion factors to canonical units.
const (
	MMPerInch = 25.4
	NPerLbf   = 4.44822
	NPerKip   = 4448.22
	MPaPerKsi = 6.89476
)

// Parse returns the unit system for a string, defaulting empty to metric.
func Parse(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return "", errors.Input("unknown unit system: " + s).WithField("unit_system", s)
}

// LengthToMM converts a length in the system's display unit (mm or in) to
// canonical millimetres.
func LengthToMM(v float64, s System) float64 {
	if s == Imperial {
		return v * MMPerInch
	}
	return v
}

// LengthFromMM converts canonical millimetres back to the system's display
// unit.
func LengthFromMM(v float64, s System) float64 {
	if s == Imperial {
		return v / MMPerInch
	}
	return v
}

// ForceToN converts a force in the system's display unit (N or lbf) to
// canonical newtons.
func ForceToN(v float64, s System) float64 {
	if s == Imperial {
		return v * NPerLbf
	}
	return v
}

// ForceFromN converts canonical newtons back to the system's display unit.
func ForceFromN(v float64, s System) float64 {
	if s == Imperial {
		return v / NPerLbf
	}
	return v
}

// StressToMPa converts a stress in the system's display unit (MPa or ksi)
// to canonical megapascals.
func StressToMPa(v float64, s System) float64 {
	if s == Imperial {
		return v * MPaPerKsi
	}
	return v
}

// StressFromMPa converts canonical megapascals back to the system's
// display unit.
func StressFromMPa(v float64, s System) float64 {
	if s == Imperial {
		return v / MPaPerKsi
	}
	return v
}

// LengthUnit returns the display length unit symbol for the system.
func LengthUnit(s System) string {
	if s == Imperial {
		return "in"
	}
	return "mm"
}

// StressUnit returns the display stress unit symbol for the system.
func StressUnit(s System) string {
	if s == Imperial {
		return "ksi"
	}
	return "MPa"
}

// ForceUnit returns the display force unit symbol for the system.
func ForceUnit(s System) string {
	if s == Imperial {
		return "lbf"
	}
	return "N"
}
