package dto

import (
	"time"

	"blogmosaic/internal/model"
)

type CreatePostRequest struct {
	Title   string `json:"title" form:"title" validate:"required,max=200"`
	Slug    string `json:"slug" form:"slug" validate:"max=200"`
	Content string `json:"content" form:"content" validate:"required"`
	Status  string `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdatePostRequest struct {
	ID      string
	Title   string `json:"title" form:"title" validate:"required,max=200"`
	Slug    string `json:"slug" form:"slug" validate:"max=200"`
	Content string `json:"content" form:"content" validate:"required"`
	Status  string `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

// PostCard is the grid item on the list pages.
type PostCard struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	PreviewURL string    `json:"preview_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostDetail is the full post page view-model.
type PostDetail struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	PreviewURL string    `json:"preview_url"`
	Status     string    `json:"status"`
	OwnerID    string    `json:"owner_id"`
	IsAuthor   bool      `json:"is_author"`
	CreatedAt  time.Time `json:"created_at"`
}

type MutatePostResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

func NewPostCard(p model.PostRecord, previewURL string) PostCard {
	return PostCard{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		PreviewURL: previewURL,
		CreatedAt:  p.CreatedAt,
	}
}

func NewPostDetail(p model.PostRecord, previewURL string, isAuthor bool) PostDetail {
	return PostDetail{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Content:    p.Content,
		PreviewURL: previewURL,
		Status:     string(p.Status),
		OwnerID:    p.OwnerID,
		IsAuthor:   isAuthor,
		CreatedAt:  p.CreatedAt,
	}
}
