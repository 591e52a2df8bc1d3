package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Username string `validate:"required,min=3,max=150"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required,oneof=donor bloodbank patient"`
}

func TestValidate_Passes(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&registerForm{
		Username: "asha",
		Email:    "asha@example.com",
		Role:     "donor",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registerForm{
		Username: "ab",
		Email:    "not-an-email",
		Role:     "admin",
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)

	assert.Equal(t, "Username must be at least 3 characters", formatted["Username"])
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Role must be one of: donor bloodbank patient", formatted["Role"])
}
