package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/phrazzld/unit-converter/internal/domain/conversion"
	"github.com/phrazzld/unit-converter/internal/observability"
)

// ConvertInput carries the raw, unvalidated form fields of a conversion.
type ConvertInput struct {
	Category string
	FromUnit string
	ToUnit   string
	Value    string
}

// CategoryUnits is a category together with its ordered units.
type CategoryUnits struct {
	Category domain.Category
	Units    []domain.Unit
}

// ConverterService provides unit conversion operations
type ConverterService interface {
	// Categories returns every category with its units, in display order
	Categories(ctx context.Context) []CategoryUnits

	// Units returns the units of the named category
	Units(ctx context.Context, category string) (CategoryUnits, error)

	// Convert validates raw input and performs the conversion
	Convert(ctx context.Context, in ConvertInput) (*domain.ConversionResult, error)
}

// converterServiceImpl implements the ConverterService interface
type converterServiceImpl struct {
	engine    conversion.Service
	precision int
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewConverterService creates a new ConverterService.
// It returns an error if the engine or logger is nil or the precision is out of range.
// metrics may be nil, in which case nothing is recorded.
func NewConverterService(
	engine conversion.Service,
	precision int,
	metrics *observability.Metrics,
	logger *slog.Logger,
) (ConverterService, error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: engine", ErrNilDependency)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger", ErrNilDependency)
	}
	if precision < 0 || precision > conversion.MaxPrecision {
		return nil, fmt.Errorf("precision must be between 0 and %d, got %d", conversion.MaxPrecision, precision)
	}

	return &converterServiceImpl{
		engine:    engine,
		precision: precision,
		metrics:   metrics,
		logger:    logger.With(slog.String("component", "converter_service")),
	}, nil
}

// Categories implements ConverterService
func (s *converterServiceImpl) Categories(ctx context.Context) []CategoryUnits {
	reg := s.engine.Registry()
	categories := reg.Categories()

	out := make([]CategoryUnits, 0, len(categories))
	for _, c := range categories {
		units, err := reg.Units(c)
		if err != nil {
			// Categories() only lists registered categories.
			s.logger.ErrorContext(ctx, "registry lists category without units",
				slog.String("category", string(c)),
				slog.Any("error", err))
			continue
		}
		out = append(out, CategoryUnits{Category: c, Units: units})
	}
	return out
}

// Units implements ConverterService
func (s *converterServiceImpl) Units(ctx context.Context, category string) (CategoryUnits, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return CategoryUnits{}, err
	}

	units, err := s.engine.Registry().Units(c)
	if err != nil {
		return CategoryUnits{}, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	return CategoryUnits{Category: c, Units: units}, nil
}

// Convert implements ConverterService
func (s *converterServiceImpl) Convert(
	ctx context.Context,
	in ConvertInput,
) (*domain.ConversionResult, error) {
	result, err := s.convert(ctx, in)

	if s.metrics != nil {
		label := ""
		if c, perr := domain.ParseCategory(in.Category); perr == nil {
			label = string(c)
		}
		s.metrics.RecordConversion(label, err)
	}

	if err != nil {
		s.logger.DebugContext(ctx, "conversion rejected",
			slog.String("category", in.Category),
			slog.String("from_unit", in.FromUnit),
			slog.String("to_unit", in.ToUnit),
			slog.String("outcome", observability.Outcome(err)),
			slog.Any("error", err))
		return nil, NewConverterServiceError("convert", "conversion failed", err)
	}

	s.logger.InfoContext(ctx, "conversion completed",
		slog.String("conversion_id", result.ID.String()),
		slog.String("category", string(result.Request.Category)),
		slog.String("from_unit", string(result.Request.From)),
		slog.String("to_unit", string(result.Request.To)))

	return result, nil
}

func (s *converterServiceImpl) convert(
	_ context.Context,
	in ConvertInput,
) (*domain.ConversionResult, error) {
	value, err := ParseValue(in.Value)
	if err != nil {
		return nil, err
	}

	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	from := domain.NormalizeUnitID(in.FromUnit)
	if from == "" {
		return nil, domain.NewValidationError("from_unit", "is required", domain.ErrInvalidUnit)
	}
	to := domain.NormalizeUnitID(in.ToUnit)
	if to == "" {
		return nil, domain.NewValidationError("to_unit", "is required", domain.ErrInvalidUnit)
	}

	req := domain.ConversionRequest{
		Category: category,
		From:     from,
		To:       to,
		Value:    value,
	}

	converted, err := s.engine.ConvertRequest(req)
	if err != nil {
		return nil, err
	}

	// The engine has already resolved both units.
	reg := s.engine.Registry()
	fromUnit, err := reg.Lookup(from)
	if err != nil {
		return nil, err
	}
	toUnit, err := reg.Lookup(to)
	if err != nil {
		return nil, err
	}

	return &domain.ConversionResult{
		ID:             uuid.New(),
		Request:        req,
		FromUnit:       fromUnit,
		ToUnit:         toUnit,
		Value:          converted,
		InputFormatted: conversion.FormatInput(value),
		Formatted:      conversion.FormatValue(converted, s.precision),
	}, nil
}

// ParseValue parses a user supplied number.
// Empty input, text that is not a number and non-finite values all fail
// with errors wrapping domain.ErrInvalidValue.
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.NewValidationError("value", "is required", domain.ErrEmptyValue)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, domain.NewValidationError("value", "is not a number", domain.ErrNotNumeric)
		}
		// Overflow yields ±Inf and is rejected below; underflow yields a usable value near zero.
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.NewValidationError("value", "must be finite", domain.ErrNonFiniteValue)
	}

	return v, nil
}
