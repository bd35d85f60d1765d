package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"blogmosaic/internal/model"
	"blogmosaic/internal/session"
)

const SessionLocalKey = "session_entry"

// SessionMiddleware resolves the browser's session cookie into a store entry
// and stashes it in locals. Requests without a valid cookie proceed with an
// unauthenticated session; gating is RequireAuth's job.
func SessionMiddleware(store session.Store, codec *session.TokenCodec, cookieName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		raw := ctx.Cookies(cookieName)
		if raw == "" {
			return ctx.Next()
		}

		id, err := codec.Parse(raw)
		if err != nil {
			return ctx.Next()
		}

		if entry, found := store.Get(id); found && entry.Session.Valid() {
			ctx.Locals(SessionLocalKey, entry)
		}
		return ctx.Next()
	}
}

// RequireAuth rejects requests whose session is not authenticated.
func RequireAuth(ctx *fiber.Ctx) error {
	entry := EntryFromCtx(ctx)
	if entry == nil || !entry.Session.Authenticated() {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "login required"))
	}
	return ctx.Next()
}

// EntryFromCtx returns the session entry set by SessionMiddleware, or nil.
func EntryFromCtx(ctx *fiber.Ctx) *session.Entry {
	if v := ctx.Locals(SessionLocalKey); v != nil {
		if entry, ok := v.(*session.Entry); ok {
			return entry
		}
	}
	return nil
}

// SessionFromCtx returns the read-only session snapshot for the request,
// defaulting to unauthenticated.
func SessionFromCtx(ctx *fiber.Ctx) model.Session {
	if entry := EntryFromCtx(ctx); entry != nil {
		return entry.Session
	}
	return model.NewUnauthenticatedSession()
}
