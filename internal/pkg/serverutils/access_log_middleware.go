package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"blogmosaic/internal/pkg/logger"
)

// AccessLogMiddleware writes one structured log line per request.
func AccessLogMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		log.Info("HTTP", "request", map[string]interface{}{
			"request_id": RequestIDFromCtx(ctx),
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		})
		return err
	}
}
