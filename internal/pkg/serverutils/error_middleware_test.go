package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/probe", handler)
	return app
}

func probe(t *testing.T, app *fiber.App) (int, BaseResponse[any]) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	var body BaseResponse[any]
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res.StatusCode, body
}

func TestErrorHandlerMapsAppErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", NotFound("Query not found"), fiber.StatusNotFound, "Query not found"},
		{"validation", ValidationFailed("phone is required"), fiber.StatusBadRequest, "phone is required"},
		{"unauthorized", Unauthorized("Invalid token"), fiber.StatusUnauthorized, "Invalid token"},
		{"forbidden", Forbidden("Insufficient role"), fiber.StatusForbidden, "Insufficient role"},
		{"conflict", Conflict("Agent already registered"), fiber.StatusConflict, "Agent already registered"},
		{"unavailable", Unavailable("payment gateway error", assert.AnError), fiber.StatusInternalServerError, "payment gateway error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(c *fiber.Ctx) error { return tt.err })

			status, body := probe(t, app)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Status)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error { return assert.AnError })

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, body.Status)
	assert.Equal(t, "Server Error", body.Message)
	assert.NotContains(t, body.Message, assert.AnError.Error())
}

func TestErrorHandlerPassesSuccessThrough(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("OTP sent", map[string]string{"otp": "123456"}))
	})

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, body.Status)
	assert.Equal(t, "OTP sent", body.Message)
}
