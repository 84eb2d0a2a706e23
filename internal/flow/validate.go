package flow

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"visitnepal/pkg/utils"
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}()

// ValidateInput checks `validate` struct tags and wraps failures in
// utils.ErrInvalidInput with a readable message.
func ValidateInput(v any) error {
	if msg := describe(validate.Struct(v)); msg != "" {
		return fmt.Errorf("%w: %s", utils.ErrInvalidInput, msg)
	}
	return nil
}

// ValidateOutput checks `validate` struct tags on a decoded model response.
func ValidateOutput(v any) error {
	if msg := describe(validate.Struct(v)); msg != "" {
		return errors.New(msg)
	}
	return nil
}

// Invalid builds an input validation error.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", utils.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func describe(err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	kind := fe.Kind()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		switch kind {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case "max":
		switch kind {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", field, fe.Param())
		}
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
