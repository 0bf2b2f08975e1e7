package conversion

import (
	"testing"

	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitIDs(units []domain.Unit) []domain.UnitID {
	ids := make([]domain.UnitID, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	return ids
}

func TestDefaultRegistry_Categories(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	assert.Equal(t, domain.AllCategories(), reg.Categories())
	assert.True(t, reg.IsAffine(domain.CategoryTemperature))
	assert.False(t, reg.IsAffine(domain.CategoryLength))
	assert.False(t, reg.IsAffine(domain.CategoryWeight))
}

func TestDefaultRegistry_Units(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	length, err := reg.Units(domain.CategoryLength)
	require.NoError(t, err)
	assert.Equal(t, []domain.UnitID{
		"meter", "kilometer", "centimeter", "millimeter", "mile", "yard", "foot", "inch",
	}, unitIDs(length))

	temperature, err := reg.Units(domain.CategoryTemperature)
	require.NoError(t, err)
	assert.Equal(t, []domain.UnitID{"celsius", "fahrenheit", "kelvin"}, unitIDs(temperature))

	weight, err := reg.Units(domain.CategoryWeight)
	require.NoError(t, err)
	assert.Equal(t, []domain.UnitID{"gram", "kilogram", "milligram", "pound", "ounce"}, unitIDs(weight))

	_, err = reg.Units("volume")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	units, err := reg.Units(domain.CategoryLength)
	require.NoError(t, err)
	units[0].Factor = 42
	units[0].ID = "tampered"

	again, err := reg.Units(domain.CategoryLength)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitID("meter"), again[0].ID)
	assert.Equal(t, 1.0, again[0].Factor)

	categories := reg.Categories()
	categories[0] = "tampered"
	assert.Equal(t, domain.CategoryLength, reg.Categories()[0])
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	u, err := reg.Lookup("kelvin")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryTemperature, u.Category)
	assert.True(t, u.IsAffine())

	u, err = reg.Lookup("mile")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLength, u.Category)
	assert.Equal(t, 1609.344, u.Factor)

	_, err = reg.Lookup("parsec")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewRegistry_Validation(t *testing.T) {
	t.Parallel()

	meter := domain.Unit{ID: "meter", Category: domain.CategoryLength, Factor: 1}
	foot := domain.Unit{ID: "foot", Category: domain.CategoryLength, Factor: 0.3048}
	celsius := domain.Unit{ID: "celsius", Category: domain.CategoryTemperature, Formula: &CelsiusFormula}

	testCases := []struct {
		name    string
		defs    []CategoryDefinition
		wantErr error
	}{
		{
			name: "duplicate category",
			defs: []CategoryDefinition{
				{Category: domain.CategoryLength, Units: []domain.Unit{meter}},
				{Category: domain.CategoryLength, Units: []domain.Unit{foot}},
			},
			wantErr: ErrDuplicateCategory,
		},
		{
			name: "duplicate unit",
			defs: []CategoryDefinition{
				{Category: domain.CategoryLength, Units: []domain.Unit{meter, foot, foot}},
			},
			wantErr: ErrDuplicateUnit,
		},
		{
			name: "empty category",
			defs: []CategoryDefinition{
				{Category: domain.CategoryLength},
			},
			wantErr: ErrInvalidDefinition,
		},
		{
			name: "base unit factor is not one",
			defs: []CategoryDefinition{
				{Category: domain.CategoryLength, Units: []domain.Unit{foot, meter}},
			},
			wantErr: ErrInvalidDefinition,
		},
		{
			name: "non-positive factor",
			defs: []CategoryDefinition{
				{Category: domain.CategoryLength, Units: []domain.Unit{
					meter,
					{ID: "void", Category: domain.CategoryLength, Factor: 0},
				}},
			},
			wantErr: ErrInvalidDefinition,
		},
		{
			name: "unit declares another category",
			defs: []CategoryDefinition{
				{Category: domain.CategoryWeight, Units: []domain.Unit{meter}},
			},
			wantErr: ErrInvalidDefinition,
		},
		{
			name: "mixed factor and formula units",
			defs: []CategoryDefinition{
				{Category: domain.CategoryTemperature, Units: []domain.Unit{
					celsius,
					{ID: "rankine", Category: domain.CategoryTemperature, Factor: 1.8},
				}},
			},
			wantErr: ErrInvalidDefinition,
		},
		{
			name: "incomplete formula",
			defs: []CategoryDefinition{
				{Category: domain.CategoryTemperature, Units: []domain.Unit{
					{ID: "celsius", Category: domain.CategoryTemperature, Formula: &domain.AffineFormula{Name: "broken"}},
				}},
			},
			wantErr: ErrInvalidDefinition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := NewRegistry(tc.defs...)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, reg)
		})
	}
}
