package helpers

import (
	"cricket-booking/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type responseEnvelope struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Success bool        `json:"success"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(responseEnvelope{
		Data:    data,
		Message: message,
		Success: true,
	})
}

// RespError maps an internal error onto the envelope. Unknown error types
// are reported as a generic 500 so backend details never leak to buyers.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*errors.ErrorResp); ok {
		code = e.HttpCode
		message = e.Message
	}

	return ctx.Status(code).JSON(responseEnvelope{
		Message: message,
		Success: false,
	})
}
