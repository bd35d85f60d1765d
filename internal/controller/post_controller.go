package controller

import (
	"errors"
	"io"

	"blogmosaic/internal/dto"
	"blogmosaic/internal/pkg/serverutils"
	"blogmosaic/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPostController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type postController struct {
	postService service.IPostService
}

func NewPostController(postService service.IPostService) IPostController {
	return &postController{
		postService: postService,
	}
}

func (c *postController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/posts")
	h.Use(serverutils.RequireAuth)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *postController) Create(ctx *fiber.Ctx) error {
	entry := serverutils.EntryFromCtx(ctx)

	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	image, err := imageFromForm(ctx)
	if err != nil {
		return err
	}
	if image != nil {
		if closer, ok := image.Reader.(io.Closer); ok {
			defer closer.Close()
		}
	}

	res, err := c.postService.Create(ctx.Context(), entry, &req, image)
	if err != nil {
		return mapPostError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Post created", res))
}

func (c *postController) Update(ctx *fiber.Ctx) error {
	entry := serverutils.EntryFromCtx(ctx)

	var req dto.UpdatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ID = ctx.Params("id")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	image, err := imageFromForm(ctx)
	if err != nil {
		return err
	}
	if image != nil {
		if closer, ok := image.Reader.(io.Closer); ok {
			defer closer.Close()
		}
	}

	res, err := c.postService.Update(ctx.Context(), entry, &req, image)
	if err != nil {
		return mapPostError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Post updated", res))
}

func (c *postController) Delete(ctx *fiber.Ctx) error {
	entry := serverutils.EntryFromCtx(ctx)

	if err := c.postService.Delete(ctx.Context(), entry, ctx.Params("id")); err != nil {
		return mapPostError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Post deleted", nil))
}

// imageFromForm extracts the optional featured image from the multipart
// form. A missing file is not an error; posts without images are fine.
func imageFromForm(ctx *fiber.Ctx) (*service.ImageUpload, error) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unreadable image upload")
	}

	return &service.ImageUpload{
		Reader:      f,
		Name:        fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

func mapPostError(err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotPostOwner):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmptySlug):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
