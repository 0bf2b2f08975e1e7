package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/unit-converter/internal/api/shared"
	"github.com/phrazzld/unit-converter/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Unknown errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad input
	case errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrUnitMismatch),
		errors.Is(err, domain.ErrInvalidUnit),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err. The text never
// includes the underlying error string.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// The specific value errors wrap ErrInvalidValue, so they go first.
	switch {
	case errors.Is(err, domain.ErrEmptyValue):
		return "Please enter a value to convert."
	case errors.Is(err, domain.ErrNotNumeric):
		return "Invalid number entered."
	case errors.Is(err, domain.ErrNonFiniteValue):
		return "Value must be a finite number."
	case errors.Is(err, domain.ErrInvalidValue):
		return "Invalid number entered."

	case errors.Is(err, domain.ErrUnitMismatch):
		return "Both units must belong to the same category."
	case errors.Is(err, domain.ErrInvalidUnit):
		return "Unknown unit selected."
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrNotFound):
		return "Unknown conversion category."

	case errors.Is(err, domain.ErrValidation):
		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			return "Invalid request: " + ve.Field + " " + ve.Message
		}
		return "Invalid request format"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes a JSON error response for err. The status and text
// come from MapErrorToStatusCode and GetSafeErrorMessage unless message is
// non-empty, in which case it replaces the derived text.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithError(w, r, status, message, err)
}
