package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New()

	require.NotNil(t, v)
	require.NotNil(t, v.Errors)
	require.True(t, v.Valid())
}

func TestValidator_AddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("gender", "must be All, male or female")
	v.AddError("gender", "second message")

	require.Len(t, v.Errors, 1)
	require.Equal(t, "must be All, male or female", v.Errors["gender"])
	require.False(t, v.Valid())
}

func TestValidator_Check(t *testing.T) {
	v := New()
	v.Check(true, "country", "never recorded")
	require.True(t, v.Valid())

	v.Check(false, "country", "must be provided")
	require.Equal(t, "must be provided", v.Errors["country"])
}

func TestValidationError(t *testing.T) {
	v := New()
	v.AddError("gender", "must be one of All, male, female")
	v.AddError("country", "must be provided")

	err := NewValidationError("Validation failed", v.Errors)
	require.Equal(t, "Validation failed (country: must be provided, gender: must be one of All, male, female)", err.Error())
	require.Equal(t, "Validation failed", NewValidationError("Validation failed", nil).Error())
}
