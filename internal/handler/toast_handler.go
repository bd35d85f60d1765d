package handler

import (
	"blogmosaic/internal/model"
	"blogmosaic/internal/pkg/logger"
	"blogmosaic/internal/pkg/serverutils"
	"blogmosaic/internal/session"
	internalWS "blogmosaic/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ToastHandler upgrades browser connections onto the toast hub. The
// websocket is keyed by the session entry id from the auth cookie, so every
// tab of one browser session shares a delivery target.
type ToastHandler struct {
	store      session.Store
	codec      *session.TokenCodec
	cookieName string
	hub        *internalWS.Hub
	logger     logger.ILogger
}

func NewToastHandler(store session.Store, codec *session.TokenCodec, cookieName string, hub *internalWS.Hub, log logger.ILogger) *ToastHandler {
	return &ToastHandler{
		store:      store,
		codec:      codec,
		cookieName: cookieName,
		hub:        hub,
		logger:     log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *ToastHandler) ServeWs(c *fiber.Ctx) error {
	// 1. Get token source. Priority 1: the session cookie (browser standard).
	tokenStr := c.Cookies(h.cookieName)

	// Priority 2: query param, for tooling that cannot send cookies.
	if tokenStr == "" {
		tokenStr = c.Query("token")
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "missing session token"))
	}

	// 2. Resolve the session entry.
	entryID, err := h.codec.Parse(tokenStr)
	if err != nil {
		h.logger.Warn("ToastHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "invalid session token"))
	}

	if _, found := h.store.Get(entryID); !found {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "session expired"))
	}

	// 3. Upgrade via the Fiber websocket middleware, which hijacks the
	// connection.
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ToastHandler", "Starting WebSocket session", map[string]interface{}{"session_id": entryID})
			internalWS.ServeWs(h.hub, conn, entryID)
			h.logger.Info("ToastHandler", "WebSocket session ended", map[string]interface{}{"session_id": entryID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// Broadcast pushes a toast to every connected client. Operational use only.
func (h *ToastHandler) Broadcast(c *fiber.Ctx) error {
	var req struct {
		Level   string `json:"level"`
		Message string `json:"message" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	level := model.ToastLevel(req.Level)
	if level == "" {
		level = model.ToastSuccess
	}

	h.hub.Broadcast(model.NewToast(level, req.Message))
	return c.JSON(serverutils.SuccessResponse[any]("Broadcast queued", nil))
}

// RegisterRoutes registers the toast routes.
func (h *ToastHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/toasts/broadcast", serverutils.RequireAuth, h.Broadcast)

	// WebSocket
	router.Get("/ws/toasts", h.ServeWs)
}
