package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/unit-converter/internal/domain"
)

// Common service errors.
//
// Error handling principles:
// 1. Expected input failures are returned as domain sentinel errors (possibly wrapped)
// 2. Unexpected errors are wrapped in ConverterServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps these errors to HTTP status codes and display messages
var (
	// ErrNilDependency is returned by constructors given a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")
)

// ConverterServiceError wraps unexpected errors from the converter service with context.
type ConverterServiceError struct {
	// Operation is the operation that failed (e.g., "convert", "list_units")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ConverterServiceError.
func (e *ConverterServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("converter service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("converter service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ConverterServiceError) Unwrap() error {
	return e.Err
}

// NewConverterServiceError creates a new ConverterServiceError.
// Domain input errors are returned as they are, without wrapping.
func NewConverterServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if isInputError(err) {
		return err
	}

	return &ConverterServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrInvalidValue) ||
		errors.Is(err, domain.ErrInvalidUnit) ||
		errors.Is(err, domain.ErrUnitMismatch) ||
		errors.Is(err, domain.ErrInvalidCategory) ||
		errors.Is(err, domain.ErrNotFound)
}
