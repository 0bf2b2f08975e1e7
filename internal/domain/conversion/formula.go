package conversion

import "github.com/phrazzld/unit-converter/internal/domain"

// Temperature formulas, all pivoting through Celsius.
var (
	CelsiusFormula = domain.AffineFormula{
		Name:      "celsius",
		ToPivot:   func(c float64) float64 { return c },
		FromPivot: func(c float64) float64 { return c },
	}

	// F = C * 9/5 + 32, C = (F - 32) * 5/9
	FahrenheitFormula = domain.AffineFormula{
		Name:      "fahrenheit",
		ToPivot:   func(f float64) float64 { return (f - 32) * 5 / 9 },
		FromPivot: func(c float64) float64 { return c*9/5 + 32 },
	}

	// K = C + 273.15
	KelvinFormula = domain.AffineFormula{
		Name:      "kelvin",
		ToPivot:   func(k float64) float64 { return k - 273.15 },
		FromPivot: func(c float64) float64 { return c + 273.15 },
	}
)
