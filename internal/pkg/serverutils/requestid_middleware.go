package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader   = "X-Request-ID"
	RequestIDLocalKey = "request_id"
)

// RequestIDMiddleware ensures every request carries a request id, reusing
// the inbound header when present.
func RequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Locals(RequestIDLocalKey, id)
		ctx.Set(RequestIDHeader, id)
		return ctx.Next()
	}
}

func RequestIDFromCtx(ctx *fiber.Ctx) string {
	if v := ctx.Locals(RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
