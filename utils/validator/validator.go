// Package validator wraps go-playground/validator with the rules and
// messages used by request bodies.
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const TagHTTPURL = "http_url"

// Validator satisfies echo.Validator.
type Validator struct {
	validator *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	_ = validate.RegisterValidation(TagHTTPURL, func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil || u.Host == "" {
			return false
		}
		return u.Scheme == "http" || u.Scheme == "https"
	})

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validator: validate}
}

func (v *Validator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return NewValidationError(errs)
	}
	return err
}

// ValidationError maps field names to user-facing messages.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, e.Errors[field])
	}
	return "validation failed: " + strings.Join(messages, ", ")
}

func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	messages := make(map[string]string, len(errs))

	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required":
			messages[field] = fmt.Sprintf("%s is required", field)
		case "min":
			messages[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			messages[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "url", TagHTTPURL:
			messages[field] = fmt.Sprintf("%s must be a valid http(s) URL", field)
		case "uuid":
			messages[field] = fmt.Sprintf("%s must be a valid UUID", field)
		default:
			messages[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: messages}
}
