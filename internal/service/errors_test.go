package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConverterServiceError
		expected string
	}{
		{
			name: "with underlying error",
			err: &ConverterServiceError{
				Operation: "convert",
				Message:   "conversion failed",
				Err:       errors.New("registry lookup failed"),
			},
			expected: "converter service convert failed: conversion failed: registry lookup failed",
		},
		{
			name: "without underlying error",
			err: &ConverterServiceError{
				Operation: "list_units",
				Message:   "no units",
			},
			expected: "converter service list_units failed: no units",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewConverterServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, NewConverterServiceError("convert", "failed", nil))
	})

	inputErrors := []error{
		domain.ErrEmptyValue,
		domain.NewValidationError("value", "is not a number", domain.ErrNotNumeric),
		fmt.Errorf("%w: %q", domain.ErrInvalidUnit, "parsec"),
		domain.ErrUnitMismatch,
		domain.ErrInvalidCategory,
		domain.ErrNotFound,
	}
	for _, inputErr := range inputErrors {
		t.Run("input error "+inputErr.Error(), func(t *testing.T) {
			err := NewConverterServiceError("convert", "failed", inputErr)
			assert.Same(t, inputErr, err, "input errors should pass through unchanged")
		})
	}

	t.Run("unexpected error is wrapped", func(t *testing.T) {
		underlying := errors.New("boom")
		err := NewConverterServiceError("convert", "conversion failed", underlying)

		var serviceErr *ConverterServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "convert", serviceErr.Operation)
		assert.Equal(t, "conversion failed", serviceErr.Message)
		assert.ErrorIs(t, err, underlying)
	})
}
