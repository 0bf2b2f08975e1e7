package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/unit-converter/internal/api/shared"
	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/phrazzld/unit-converter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "empty value",
			err:            domain.ErrEmptyValue,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "value validation error",
			err:            domain.NewValidationError("value", "is not a number", domain.ErrNotNumeric),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unit mismatch wrapped by service",
			err:            service.NewConverterServiceError("convert", "conversion failed", domain.ErrUnitMismatch),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown unit",
			err:            fmt.Errorf("%w: %q", domain.ErrInvalidUnit, "parsec"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown category",
			err:            fmt.Errorf("%w: %q", domain.ErrInvalidCategory, "volume"),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "structural validation",
			err:            domain.NewValidationError("category", "is required", domain.ErrValidation),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("unknown error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"empty value", domain.ErrEmptyValue, "Please enter a value to convert."},
		{"not numeric", domain.NewValidationError("value", "is not a number", domain.ErrNotNumeric), "Invalid number entered."},
		{"non-finite", domain.ErrNonFiniteValue, "Value must be a finite number."},
		{"generic invalid value", domain.ErrInvalidValue, "Invalid number entered."},
		{"unit mismatch", domain.ErrUnitMismatch, "Both units must belong to the same category."},
		{"unknown unit", domain.ErrInvalidUnit, "Unknown unit selected."},
		{"unknown category", domain.ErrInvalidCategory, "Unknown conversion category."},
		{
			"structural validation",
			domain.NewValidationError("category", "is required", domain.ErrValidation),
			"Invalid request: category is required",
		},
		{"internal error", errors.New("registry lookup: disk on fire"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMessage, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	t.Run("derives status and message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
		req = req.WithContext(shared.SetTraceID(req.Context()))
		rec := httptest.NewRecorder()

		HandleAPIError(rec, req, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, "volume"), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Unknown conversion category.", body.Error)
		assert.Equal(t, shared.GetTraceID(req.Context()), body.TraceID)
		assert.NotContains(t, rec.Body.String(), "volume")
	})

	t.Run("custom message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
		rec := httptest.NewRecorder()

		HandleAPIError(rec, req, errors.New("boom"), "Conversion failed")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Conversion failed")
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}
