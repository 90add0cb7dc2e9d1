package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileForm struct {
	FullName string `json:"fullName" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=M F O"`
	Age      int    `json:"age" validate:"gte=0,lte=150"`
}

func TestCustomValidator_FormatsErrorsByJSONName(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&profileForm{Gender: "Z", Age: 200})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "fullName is required", errs["fullName"])
	assert.Equal(t, "gender must be one of: M F O", errs["gender"])
	assert.Equal(t, "age must be less than or equal to 150", errs["age"])
}

func TestCustomValidator_Valid(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&profileForm{FullName: "Asha", Gender: "F", Age: 30}))
}
