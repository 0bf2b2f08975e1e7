// Package conversion holds the unit registry and the pure conversion engine.
//
// The registry is an immutable table built once at startup and passed to the
// engine explicitly. Length and weight convert through a base unit with a
// multiplicative factor; temperature converts through Celsius with affine
// formulas.
package conversion
