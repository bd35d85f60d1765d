package controller

import (
	"context"

	"blogmosaic/internal/dto"
	"blogmosaic/internal/pkg/serverutils"
	"blogmosaic/internal/service"
	"blogmosaic/internal/view"

	"github.com/gofiber/fiber/v2"
)

// IPageController serves the page view-models. Every handler runs the same
// reconciliation: loading, then exactly one of ready, empty or error. An
// error page carries retry=true; the client re-requests, it is never done
// automatically here.
type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Posts(ctx *fiber.Ctx) error
	MyPosts(ctx *fiber.Ctx) error
	PostDetail(ctx *fiber.Ctx) error
}

type pageController struct {
	postService service.IPostService
}

func NewPageController(postService service.IPostService) IPageController {
	return &pageController{
		postService: postService,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pages")
	h.Get("home", c.Home)
	h.Get("posts", serverutils.RequireAuth, c.Posts)
	h.Get("my-posts", serverutils.RequireAuth, c.MyPosts)
	h.Get("posts/:slug", c.PostDetail)
}

func (c *pageController) Home(ctx *fiber.Ctx) error {
	return renderList(ctx, "Home page", func(reqCtx context.Context) ([]dto.PostCard, error) {
		return c.postService.ListHome(reqCtx)
	})
}

func (c *pageController) Posts(ctx *fiber.Ctx) error {
	return renderList(ctx, "All posts", func(reqCtx context.Context) ([]dto.PostCard, error) {
		return c.postService.ListAll(reqCtx)
	})
}

func (c *pageController) MyPosts(ctx *fiber.Ctx) error {
	user := serverutils.SessionFromCtx(ctx).User
	return renderList(ctx, "My posts", func(reqCtx context.Context) ([]dto.PostCard, error) {
		return c.postService.ListMine(reqCtx, user)
	})
}

func (c *pageController) PostDetail(ctx *fiber.Ctx) error {
	slugID := ctx.Params("slug")
	viewer := serverutils.SessionFromCtx(ctx).User

	loader := view.NewLoader[*dto.PostDetail]()
	page, ok := loader.Load(ctx.UserContext(), func(reqCtx context.Context) (*dto.PostDetail, error) {
		return c.postService.GetBySlug(reqCtx, slugID, viewer)
	}, func(detail *dto.PostDetail) bool {
		return detail == nil
	})
	if !ok {
		// The request went away mid-fetch; nothing left to render.
		return nil
	}

	if page.State == view.StateEmpty {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.SuccessResponse("Post not found", page))
	}
	return ctx.JSON(serverutils.SuccessResponse("Post page", page))
}

func renderList(ctx *fiber.Ctx, message string, fetch func(context.Context) ([]dto.PostCard, error)) error {
	loader := view.NewLoader[[]dto.PostCard]()
	page, ok := loader.Load(ctx.UserContext(), fetch, func(cards []dto.PostCard) bool {
		return len(cards) == 0
	})
	if !ok {
		return nil
	}
	return ctx.JSON(serverutils.SuccessResponse(message, page))
}
