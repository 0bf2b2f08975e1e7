package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/phrazzld/unit-converter/internal/service"
)

// MockConverterService implements service.ConverterService for testing
type MockConverterService struct {
	// Custom behavior functions
	CategoriesFn func(ctx context.Context) []service.CategoryUnits
	UnitsFn      func(ctx context.Context, category string) (service.CategoryUnits, error)
	ConvertFn    func(ctx context.Context, in service.ConvertInput) (*domain.ConversionResult, error)

	// Default response values
	CategoryList  []service.CategoryUnits
	CategoryUnits service.CategoryUnits
	Result        *domain.ConversionResult
	Err           error

	mu           sync.Mutex
	ConvertCalls []service.ConvertInput
	UnitsCalls   []string
}

var _ service.ConverterService = (*MockConverterService)(nil)

// Categories implements service.ConverterService
func (m *MockConverterService) Categories(ctx context.Context) []service.CategoryUnits {
	if m.CategoriesFn != nil {
		return m.CategoriesFn(ctx)
	}
	return m.CategoryList
}

// Units implements service.ConverterService
func (m *MockConverterService) Units(ctx context.Context, category string) (service.CategoryUnits, error) {
	m.mu.Lock()
	m.UnitsCalls = append(m.UnitsCalls, category)
	m.mu.Unlock()

	if m.UnitsFn != nil {
		return m.UnitsFn(ctx, category)
	}
	return m.CategoryUnits, m.Err
}

// Convert implements service.ConverterService
func (m *MockConverterService) Convert(
	ctx context.Context,
	in service.ConvertInput,
) (*domain.ConversionResult, error) {
	m.mu.Lock()
	m.ConvertCalls = append(m.ConvertCalls, in)
	m.mu.Unlock()

	if m.ConvertFn != nil {
		return m.ConvertFn(ctx, in)
	}
	return m.Result, m.Err
}

// ConvertCallCount returns the number of Convert calls made so far.
func (m *MockConverterService) ConvertCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ConvertCalls)
}
