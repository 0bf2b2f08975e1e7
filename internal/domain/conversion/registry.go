package conversion

import (
	"errors"
	"fmt"

	"github.com/phrazzld/unit-converter/internal/domain"
)

// Registry construction errors
var (
	ErrDuplicateUnit     = errors.New("duplicate unit")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrInvalidDefinition = errors.New("invalid unit definition")
)

// CategoryDefinition declares one category and its units in display order.
// The first unit is the category's base (or pivot) unit.
type CategoryDefinition struct {
	Category domain.Category
	Units    []domain.Unit
}

type categoryEntry struct {
	affine bool
	units  []domain.Unit
}

// Registry is the immutable table of categories and units.
// It is safe for concurrent use once built.
type Registry struct {
	order      []domain.Category
	categories map[domain.Category]categoryEntry
	units      map[domain.UnitID]domain.Unit
}

// NewRegistry validates the definitions and freezes them into a Registry.
func NewRegistry(defs ...CategoryDefinition) (*Registry, error) {
	reg := &Registry{
		categories: make(map[domain.Category]categoryEntry, len(defs)),
		units:      make(map[domain.UnitID]domain.Unit),
	}

	for _, def := range defs {
		if def.Category == "" {
			return nil, fmt.Errorf("%w: empty category", ErrInvalidDefinition)
		}
		if _, exists := reg.categories[def.Category]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, def.Category)
		}
		if len(def.Units) == 0 {
			return nil, fmt.Errorf("%w: category %s has no units", ErrInvalidDefinition, def.Category)
		}

		entry := categoryEntry{
			affine: def.Units[0].IsAffine(),
			units:  make([]domain.Unit, 0, len(def.Units)),
		}

		for i, u := range def.Units {
			if err := validateUnit(def.Category, u, entry.affine); err != nil {
				return nil, err
			}
			if i == 0 && !entry.affine && u.Factor != 1 {
				return nil, fmt.Errorf("%w: base unit %s must have factor 1", ErrInvalidDefinition, u.ID)
			}
			if _, exists := reg.units[u.ID]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateUnit, u.ID)
			}
			reg.units[u.ID] = u
			entry.units = append(entry.units, u)
		}

		reg.order = append(reg.order, def.Category)
		reg.categories[def.Category] = entry
	}

	return reg, nil
}

func validateUnit(category domain.Category, u domain.Unit, affine bool) error {
	if u.ID == "" {
		return fmt.Errorf("%w: unit without ID in %s", ErrInvalidDefinition, category)
	}
	if u.Category != category {
		return fmt.Errorf("%w: unit %s declares category %q inside %s",
			ErrInvalidDefinition, u.ID, u.Category, category)
	}
	if u.IsAffine() != affine {
		return fmt.Errorf("%w: category %s mixes factor and formula units", ErrInvalidDefinition, category)
	}
	if u.IsAffine() {
		if u.Factor != 0 {
			return fmt.Errorf("%w: unit %s has both factor and formula", ErrInvalidDefinition, u.ID)
		}
		if u.Formula.ToPivot == nil || u.Formula.FromPivot == nil {
			return fmt.Errorf("%w: unit %s has an incomplete formula", ErrInvalidDefinition, u.ID)
		}
		return nil
	}
	if !(u.Factor > 0) {
		return fmt.Errorf("%w: unit %s needs a positive factor", ErrInvalidDefinition, u.ID)
	}
	return nil
}

// Categories returns the registered categories in display order.
func (r *Registry) Categories() []domain.Category {
	out := make([]domain.Category, len(r.order))
	copy(out, r.order)
	return out
}

// Units returns the ordered units of a category.
func (r *Registry) Units(category domain.Category) ([]domain.Unit, error) {
	entry, ok := r.categories[category]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", category, domain.ErrNotFound)
	}
	out := make([]domain.Unit, len(entry.units))
	copy(out, entry.units)
	return out, nil
}

// Lookup returns the unit registered under id.
func (r *Registry) Lookup(id domain.UnitID) (domain.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return domain.Unit{}, fmt.Errorf("unit %q: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

// HasCategory reports whether the category is registered.
func (r *Registry) HasCategory(category domain.Category) bool {
	_, ok := r.categories[category]
	return ok
}

// IsAffine reports whether the category converts through formulas.
func (r *Registry) IsAffine(category domain.Category) bool {
	return r.categories[category].affine
}
