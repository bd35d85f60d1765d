package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogmosaic/internal/gateway"
	"blogmosaic/internal/identity"
)

// ErrorHandlerMiddleware converts uncaught errors into the standard envelope.
// Remote service failures keep their message (it's all they carry); identity
// resolution failures abort the operation but not the session.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		var remoteErr *gateway.RemoteError
		if errors.As(err, &remoteErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, remoteErr.Error()))
		}

		if errors.Is(err, identity.ErrNoIdentifier) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(
				fiber.StatusUnprocessableEntity,
				"unable to identify user, please log out and back in",
			))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
