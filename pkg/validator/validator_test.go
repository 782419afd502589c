package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"gt=0"`
	Mode  string `validate:"oneof=a b"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(sample{Name: "x", Count: 1, Mode: "a"}))

	err := v.Validate(sample{Mode: "c"})
	require.Error(t, err)
	assert.Equal(t,
		"sample.Count must be greater than 0; sample.Mode must be one of [a b]; sample.Name is required",
		err.Error())
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	fields := NewValidator().FormatValidationErrors(errors.New("boom"))
	assert.Empty(t, fields)
}
