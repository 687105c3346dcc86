package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Phone string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Role  string `validate:"required,oneof=user agent"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(&sampleRequest{
		Phone: "+911234567890",
		Email: "someone@example.com",
		Role:  "user",
	})
	assert.NoError(t, err)
}

func TestValidateRequestReportsEveryFailedField(t *testing.T) {
	err := ValidateRequest(&sampleRequest{
		Email: "not-an-email",
		Role:  "admin",
	})
	require.Error(t, err)

	appErr, ok := err.(*AppError)
	require.True(t, ok)
	assert.Equal(t, CodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Message, "Phone (required)")
	assert.Contains(t, appErr.Message, "Email (email)")
	assert.Contains(t, appErr.Message, "Role (oneof)")
}
