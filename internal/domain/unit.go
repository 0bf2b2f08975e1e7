package domain

import "strings"

// UnitID identifies a unit, e.g. "meter" or "celsius".
type UnitID string

// NormalizeUnitID trims and lowercases a unit identifier taken from user input.
func NormalizeUnitID(s string) UnitID {
	return UnitID(strings.ToLower(strings.TrimSpace(s)))
}

// AffineFormula converts between a unit and its category's pivot unit
// with functions of the form y = a*x + b.
type AffineFormula struct {
	Name      string
	ToPivot   func(float64) float64
	FromPivot func(float64) float64
}

// Unit is a measurement unit scoped to exactly one category.
//
// A multiplicative unit carries Factor, the number of base units in one of
// this unit. An affine unit carries Formula instead. Exactly one of the two
// is set.
type Unit struct {
	ID       UnitID   `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`

	Factor  float64        `json:"-"`
	Formula *AffineFormula `json:"-"`
}

// IsAffine reports whether the unit converts with a formula rather than a factor.
func (u Unit) IsAffine() bool {
	return u.Formula != nil
}
