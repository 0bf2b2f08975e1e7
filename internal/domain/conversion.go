package domain

import "github.com/google/uuid"

// ConversionRequest is the validated input of a single conversion.
type ConversionRequest struct {
	Category Category
	From     UnitID
	To       UnitID
	Value    float64
}

// ConversionResult is the outcome of a successful conversion.
// It is built per request and never persisted.
type ConversionResult struct {
	ID      uuid.UUID
	Request ConversionRequest

	FromUnit Unit
	ToUnit   Unit

	// Value is the full precision result.
	Value float64

	// InputFormatted and Formatted are the display strings for the input and
	// the result after applying the configured rounding policy.
	InputFormatted string
	Formatted      string
}

// Summary renders the result as "<value> <from> = <result> <to>".
func (r *ConversionResult) Summary() string {
	return r.InputFormatted + " " + r.FromUnit.Symbol + " = " + r.Formatted + " " + r.ToUnit.Symbol
}
