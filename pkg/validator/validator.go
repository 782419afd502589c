package validator

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

// Validate checks i against its struct tags and folds every field failure
// into a single error.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	fields := cv.FormatValidationErrors(err)
	if len(fields) == 0 {
		return err
	}

	messages := make([]string, 0, len(fields))
	for _, msg := range fields {
		messages = append(messages, msg)
	}
	sort.Strings(messages)
	return errors.New(strings.Join(messages, "; "))
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fieldErrors
	}

	for _, e := range validationErrors {
		field := e.Namespace()
		switch e.Tag() {
		case "required", "required_if":
			fieldErrors[field] = field + " is required"
		case "oneof":
			fieldErrors[field] = field + " must be one of [" + e.Param() + "]"
		case "numeric":
			fieldErrors[field] = field + " must be numeric"
		case "gt":
			fieldErrors[field] = field + " must be greater than " + e.Param()
		case "gte":
			fieldErrors[field] = field + " must be greater than or equal to " + e.Param()
		case "lte":
			fieldErrors[field] = field + " must be less than or equal to " + e.Param()
		default:
			fieldErrors[field] = field + " is invalid"
		}
	}

	return fieldErrors
}
