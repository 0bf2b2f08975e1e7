package conversion

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal places results are rounded to
// for display.
const DefaultPrecision = 4

// MaxPrecision bounds the configurable display precision.
const MaxPrecision = 12

// FormatValue renders v rounded to precision decimal places without
// scientific notation. Trailing zeros and a dangling decimal point are
// removed and negative zero prints as "0".
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}

	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatInput renders a parsed input value with the shortest exact representation.
func FormatInput(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
