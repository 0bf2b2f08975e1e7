package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/unit-converter/internal/domain"
)

// fieldNames maps struct fields to the names clients submit.
var fieldNames = map[string]string{
	"Category": "category",
	"FromUnit": "from_unit",
	"ToUnit":   "to_unit",
	"Value":    "value",
}

// validationToDomainError translates a validator failure into the domain
// error a client would get from the service for the same input. A missing
// value takes precedence over missing units.
func validationToDomainError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("request", "is invalid", domain.ErrValidation)
	}

	var first error
	for _, fe := range verrs {
		field := fieldNames[fe.StructField()]
		if field == "" {
			field = fe.Field()
		}

		var mapped error
		switch fe.StructField() {
		case "Value":
			return domain.NewValidationError(field, "is required", domain.ErrEmptyValue)
		case "FromUnit", "ToUnit":
			mapped = domain.NewValidationError(field, "is required", domain.ErrInvalidUnit)
		default:
			mapped = domain.NewValidationError(field, "is required", domain.ErrValidation)
		}
		if first == nil {
			first = mapped
		}
	}
	return first
}
