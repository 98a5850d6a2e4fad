package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError describes the first invalid field of a payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Errorf("register notblank validation: %w", err))
	}

	return v
}

// Validate checks v against its validate tags and returns *ValidationError on failure.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return newValidationError(verrs[0])
		}
		return &ValidationError{Message: err.Error()}
	}

	return nil
}

// ValidateAll validates every element of list.
func ValidateAll[T any](list []T) error {
	for i := range list {
		if err := Validate(&list[i]); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Field = fmt.Sprintf("[%d].%s", i, verr.Field)
			}
			return err
		}
	}

	return nil
}

func newValidationError(fe validator.FieldError) *ValidationError {
	field := fieldPath(fe.Namespace())

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "notblank":
		msg = "must not be empty"
	case "max":
		msg = fmt.Sprintf("must be at most %s characters", fe.Param())
		if fe.Kind() != reflect.String {
			msg = fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "min":
		msg = fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		msg = fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		msg = fmt.Sprintf("must be one of: %s", fe.Param())
	case "startswith":
		msg = fmt.Sprintf("must start with %s", fe.Param())
	default:
		msg = "is invalid"
	}

	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s %s", field, msg),
	}
}

// fieldPath strips the root struct name from a validator namespace:
// "CreateEventRequest.title" -> "title".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}
