package conversion

import "github.com/phrazzld/unit-converter/internal/domain"

// DefaultDefinitions returns the built-in unit table.
//
// Length is based on the meter and weight on the gram. The imperial factors
// are the exact international definitions, so 1 mile is 5280 feet.
func DefaultDefinitions() []CategoryDefinition {
	return []CategoryDefinition{
		{
			Category: domain.CategoryLength,
			Units: []domain.Unit{
				lengthUnit("meter", "Meter", "m", 1),
				lengthUnit("kilometer", "Kilometer", "km", 1000),
				lengthUnit("centimeter", "Centimeter", "cm", 0.01),
				lengthUnit("millimeter", "Millimeter", "mm", 0.001),
				lengthUnit("mile", "Mile", "mi", 1609.344),
				lengthUnit("yard", "Yard", "yd", 0.9144),
				lengthUnit("foot", "Foot", "ft", 0.3048),
				lengthUnit("inch", "Inch", "in", 0.0254),
			},
		},
		{
			Category: domain.CategoryTemperature,
			Units: []domain.Unit{
				temperatureUnit("celsius", "Celsius", "°C", &CelsiusFormula),
				temperatureUnit("fahrenheit", "Fahrenheit", "°F", &FahrenheitFormula),
				temperatureUnit("kelvin", "Kelvin", "K", &KelvinFormula),
			},
		},
		{
			Category: domain.CategoryWeight,
			Units: []domain.Unit{
				weightUnit("gram", "Gram", "g", 1),
				weightUnit("kilogram", "Kilogram", "kg", 1000),
				weightUnit("milligram", "Milligram", "mg", 0.001),
				weightUnit("pound", "Pound", "lb", 453.59237),
				weightUnit("ounce", "Ounce", "oz", 28.349523125),
			},
		},
	}
}

// NewDefaultRegistry builds the registry from DefaultDefinitions.
// The built-in table is known to be valid, so construction cannot fail.
func NewDefaultRegistry() *Registry {
	reg, err := NewRegistry(DefaultDefinitions()...)
	if err != nil {
		panic("conversion: invalid default unit table: " + err.Error())
	}
	return reg
}

func lengthUnit(id, name, symbol string, factor float64) domain.Unit {
	return domain.Unit{
		ID:       domain.UnitID(id),
		Category: domain.CategoryLength,
		Name:     name,
		Symbol:   symbol,
		Factor:   factor,
	}
}

func weightUnit(id, name, symbol string, factor float64) domain.Unit {
	return domain.Unit{
		ID:       domain.UnitID(id),
		Category: domain.CategoryWeight,
		Name:     name,
		Symbol:   symbol,
		Factor:   factor,
	}
}

func temperatureUnit(id, name, symbol string, f *domain.AffineFormula) domain.Unit {
	return domain.Unit{
		ID:       domain.UnitID(id),
		Category: domain.CategoryTemperature,
		Name:     name,
		Symbol:   symbol,
		Formula:  f,
	}
}
