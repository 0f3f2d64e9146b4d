package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var ErrInternal = errors.New("internal error")

// FieldError describes one rejected field of a submission.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when a submission is malformed. Its fields are
// safe to show to the caller.
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	return "validation failed: " + strings.Join(lo.Map(e.Fields, func(f FieldError, _ int) string {
		return f.Message
	}), "; ")
}

func fromValidator(errs validator.ValidationErrors) ValidationError {
	return ValidationError{Fields: lo.Map(errs, func(fe validator.FieldError, _ int) FieldError {
		return FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		}
	})}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	}
	return fe.Field() + " is invalid"
}
