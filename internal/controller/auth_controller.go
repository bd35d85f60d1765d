package controller

import (
	"errors"
	"time"

	"blogmosaic/internal/dto"
	"blogmosaic/internal/gateway"
	"blogmosaic/internal/pkg/serverutils"
	"blogmosaic/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	cookieName  string
	cookieTTL   time.Duration
}

func NewAuthController(authService service.IAuthService, cookieName string, cookieTTL time.Duration) IAuthController {
	return &authController{
		authService: authService,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("signup", c.Signup)
	h.Post("login", c.Login)
	h.Post("logout", c.Logout)
	h.Get("me", c.Me)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, cookieToken, err := c.authService.Signup(ctx.Context(), &req)
	if err != nil {
		var remoteErr *gateway.RemoteError
		if errors.As(err, &remoteErr) {
			return fiber.NewError(fiber.StatusBadRequest, remoteErr.Message)
		}
		return err
	}

	c.setSessionCookie(ctx, cookieToken)
	return ctx.JSON(serverutils.SuccessResponse("Account created", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, cookieToken, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		var remoteErr *gateway.RemoteError
		if errors.As(err, &remoteErr) {
			return fiber.NewError(fiber.StatusUnauthorized, remoteErr.Message)
		}
		return err
	}

	c.setSessionCookie(ctx, cookieToken)
	return ctx.JSON(serverutils.SuccessResponse("Logged in", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	entry := serverutils.EntryFromCtx(ctx)
	if err := c.authService.Logout(ctx.Context(), entry); err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     c.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}

// Me is the shell's boot call: it always answers 200 with the current
// session, authenticated or not.
func (c *authController) Me(ctx *fiber.Ctx) error {
	entry := serverutils.EntryFromCtx(ctx)
	res := c.authService.Current(ctx.Context(), entry)
	return ctx.JSON(serverutils.SuccessResponse("Current session", &res))
}

func (c *authController) setSessionCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.cookieName,
		Value:    token,
		Expires:  time.Now().Add(c.cookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
