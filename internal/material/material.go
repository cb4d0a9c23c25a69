// Package material defines dowel steel properties and the standard grade
// catalog.
package material

import (
	"dovela/internal/errors"
)

// Properties holds the mechanical properties of the dowel steel in
// canonical units (MPa). Value object; treat as immutable.
type Properties struct {
	Grade   string  `json:"grade"`
	E       float64 `json:"e_mpa"`
	Fy      float64 `json:"fy_mpa"`
	Poisson float64 `json:"poisson_ratio"`
}

// New builds validated material properties.
func New(grade string, e, fy, poisson float64) (Properties, error) {
	p := Properties{Grade: grade, E: e, Fy: fy, Poisson: poisson}
	if err := p.check(); err != nil {
		return Properties{}, err
	}
	return p, nil
}

func (p Properties) check() error {
	if p.E <= 0 {
		return errors.Material("elastic modulus must be positive, got %g", p.E).WithField("e_mpa", p.E)
	}
	if p.Fy <= 0 {
		return errors.Material("yield strength must be positive, got %g", p.Fy).WithField("fy_mpa", p.Fy)
	}
	if p.Poisson <= 0 || p.Poisson >= 0.5 {
		return errors.Material("poisson ratio must be in (0, 0.5), got %g", p.Poisson).WithField("poisson_ratio", p.Poisson)
	}
	return nil
}

// Standard ASTM grades for load-transfer dowels. E = 200 GPa, nu = 0.3
// for all structural steels.
var grades = map[string]Properties{
	"A36":     {Grade: "A36", E: 200000, Fy: 250, Poisson: 0.3},
	"A572-50": {Grade: "A572-50", E: 200000, Fy: 345, Poisson: 0.3},
	"A588":    {Grade: "A588", E: 200000, Fy: 345, Poisson: 0.3},
}

// ByGrade returns the catalog properties for a standard grade name.
func ByGrade(grade string) (Properties, bool) {
	p, ok := grades[grade]
	return p, ok
}

// MinYield returns the specified minimum yield strength for a standard
// grade, or 0 when the grade is not in the catalog.
func MinYield(grade string) float64 {
	if p, ok := grades[grade]; ok {
		return p.Fy
	}
	return 0
}
