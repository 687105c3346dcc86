package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func statusForCode(code ErrorCode) int {
	switch code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeValidationFailed:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts AppError returns from handlers into the
// {message, status:false} wire shape. Unknown errors become a generic 500 so
// internals never leak to clients.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(statusForCode(appErr.Code)).JSON(FailResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(FailResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(FailResponse("Server Error"))
	}
}
