package conversion

import (
	"errors"
	"fmt"
	"math"

	"github.com/phrazzld/unit-converter/internal/domain"
)

// Service defines the conversion operations
type Service interface {
	// Convert converts value from one unit to another within category
	Convert(category domain.Category, from, to domain.UnitID, value float64) (float64, error)

	// ConvertRequest is Convert for a prepared request
	ConvertRequest(req domain.ConversionRequest) (float64, error)

	// Registry exposes the unit table the service converts with
	Registry() *Registry
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	registry *Registry
}

// NewDefaultService creates a conversion service over the built-in unit table
func NewDefaultService() Service {
	return &defaultService{
		registry: NewDefaultRegistry(),
	}
}

// NewService creates a conversion service over a custom registry
func NewService(registry *Registry) (Service, error) {
	if registry == nil {
		return nil, errors.New("registry cannot be nil")
	}
	return &defaultService{
		registry: registry,
	}, nil
}

// Registry implements the Service interface
func (s *defaultService) Registry() *Registry {
	return s.registry
}

// ConvertRequest implements the Service interface
func (s *defaultService) ConvertRequest(req domain.ConversionRequest) (float64, error) {
	return s.Convert(req.Category, req.From, req.To, req.Value)
}

// Convert implements the Service interface
func (s *defaultService) Convert(
	category domain.Category,
	from, to domain.UnitID,
	value float64,
) (float64, error) {
	if !s.registry.HasCategory(category) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	src, err := s.unitIn(category, from)
	if err != nil {
		return 0, err
	}
	dst, err := s.unitIn(category, to)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, domain.ErrNonFiniteValue
	}

	if src.ID == dst.ID {
		return value, nil
	}

	return convertUnits(src, dst, value), nil
}

// unitIn looks up id and checks that it belongs to category.
func (s *defaultService) unitIn(category domain.Category, id domain.UnitID) (domain.Unit, error) {
	u, err := s.registry.Lookup(id)
	if err != nil {
		return domain.Unit{}, fmt.Errorf("%w: %q", domain.ErrInvalidUnit, id)
	}
	if u.Category != category {
		return domain.Unit{}, fmt.Errorf("%w: %s is a %s unit, not %s",
			domain.ErrUnitMismatch, u.ID, u.Category, category)
	}
	return u, nil
}

// convertUnits is the pure conversion between two units of the same category.
func convertUnits(src, dst domain.Unit, value float64) float64 {
	if src.IsAffine() {
		return dst.Formula.FromPivot(src.Formula.ToPivot(value))
	}
	return value * src.Factor / dst.Factor
}
