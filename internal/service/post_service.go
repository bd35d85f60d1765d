// FILE: internal/service/post_service.go
package service

import (
	"context"
	"errors"
	"io"

	"blogmosaic/internal/dto"
	"blogmosaic/internal/gateway"
	"blogmosaic/internal/identity"
	"blogmosaic/internal/model"
	"blogmosaic/internal/pkg/logger"
	"blogmosaic/internal/session"
	"blogmosaic/pkg/events"
	pktNats "blogmosaic/pkg/nats"
	"blogmosaic/pkg/slug"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("you can only modify your own posts")
	ErrEmptySlug    = errors.New("title produces an empty slug")
)

// ImageUpload is a featured image taken from a multipart form.
type ImageUpload struct {
	Reader      io.Reader
	Name        string
	Size        int64
	ContentType string
}

// IPostService implements the post use-cases over the remote document and
// file gateways. The remote service has no transactions, so the two-step
// image+document mutations compensate manually: a failed second step deletes
// whatever the first step created.
type IPostService interface {
	ListAll(ctx context.Context) ([]dto.PostCard, error)
	ListHome(ctx context.Context) ([]dto.PostCard, error)
	ListMine(ctx context.Context, user *model.UserRecord) ([]dto.PostCard, error)
	GetBySlug(ctx context.Context, slugID string, viewer *model.UserRecord) (*dto.PostDetail, error)
	Create(ctx context.Context, entry *session.Entry, req *dto.CreatePostRequest, image *ImageUpload) (*dto.MutatePostResponse, error)
	Update(ctx context.Context, entry *session.Entry, req *dto.UpdatePostRequest, image *ImageUpload) (*dto.MutatePostResponse, error)
	Delete(ctx context.Context, entry *session.Entry, id string) error
}

type postService struct {
	docs           gateway.DocumentGateway
	files          gateway.FileGateway
	toasts         IToastService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPostService(
	docs gateway.DocumentGateway,
	files gateway.FileGateway,
	toasts IToastService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IPostService {
	return &postService{
		docs:           docs,
		files:          files,
		toasts:         toasts,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *postService) ListAll(ctx context.Context) ([]dto.PostCard, error) {
	posts, err := s.docs.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return s.toCards(posts), nil
}

func (s *postService) ListHome(ctx context.Context) ([]dto.PostCard, error) {
	posts, err := s.docs.List(ctx, []gateway.Filter{{Field: "status", Value: string(model.PostStatusActive)}})
	if err != nil {
		return nil, err
	}

	// The list endpoint's filtering is best-effort, so re-check locally.
	active := posts[:0]
	for _, p := range posts {
		if p.Status == model.PostStatusActive {
			active = append(active, p)
		}
	}
	return s.toCards(active), nil
}

func (s *postService) ListMine(ctx context.Context, user *model.UserRecord) ([]dto.PostCard, error) {
	ownerID, err := identity.Resolve(user)
	if err != nil {
		return nil, err
	}

	posts, err := s.docs.List(ctx, []gateway.Filter{{Field: "userId", Value: ownerID}})
	if err != nil {
		return nil, err
	}

	// Ownership is decided here, not by the server-side filter.
	mine := posts[:0]
	for _, p := range posts {
		if p.OwnerID == ownerID {
			mine = append(mine, p)
		}
	}
	return s.toCards(mine), nil
}

func (s *postService) GetBySlug(ctx context.Context, slugID string, viewer *model.UserRecord) (*dto.PostDetail, error) {
	post, err := s.docs.Get(ctx, slugID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	isAuthor := false
	if viewer != nil {
		if viewerID, idErr := identity.Resolve(viewer); idErr == nil {
			isAuthor = viewerID == post.OwnerID
		}
	}

	detail := dto.NewPostDetail(*post, s.files.PreviewURL(post.FeaturedImageID), isAuthor)
	return &detail, nil
}

func (s *postService) Create(ctx context.Context, entry *session.Entry, req *dto.CreatePostRequest, image *ImageUpload) (*dto.MutatePostResponse, error) {
	ownerID, err := identity.Resolve(entry.Session.User)
	if err != nil {
		return nil, err
	}

	slugID := req.Slug
	if slugID == "" {
		slugID = slug.Make(req.Title)
	}
	if slugID == "" {
		return nil, ErrEmptySlug
	}

	status := model.PostStatus(req.Status)
	if status == "" {
		status = model.PostStatusActive
	}

	// 1. Upload the image first; the document references its id.
	imageID := ""
	if image != nil {
		file, upErr := s.files.Upload(ctx, image.Reader, image.Name, image.Size, image.ContentType)
		if upErr != nil {
			s.toasts.Error(entry.ID, "Image upload failed")
			return nil, upErr
		}
		imageID = file.ID
	}

	// 2. Create the document with the slug as its id.
	post := &model.PostRecord{
		ID:              slugID,
		Title:           req.Title,
		Slug:            slugID,
		Content:         req.Content,
		FeaturedImageID: imageID,
		OwnerID:         ownerID,
		Status:          status,
	}
	created, err := s.docs.Create(ctx, post)
	if err != nil {
		// Compensate: the image must not outlive the failed document.
		if imageID != "" {
			if delErr := s.files.Delete(ctx, imageID); delErr != nil {
				s.logger.Error("PostService", "Orphaned image after failed create", map[string]interface{}{
					"file_id": imageID,
					"error":   delErr.Error(),
				})
			}
		}
		s.toasts.Error(entry.ID, "Failed to create post")
		return nil, err
	}

	s.publishPostEvent(ctx, events.TypePostCreated, created.ID, created.Slug, ownerID)
	s.toasts.Success(entry.ID, "Post created")
	return &dto.MutatePostResponse{ID: created.ID, Slug: created.Slug}, nil
}

func (s *postService) Update(ctx context.Context, entry *session.Entry, req *dto.UpdatePostRequest, image *ImageUpload) (*dto.MutatePostResponse, error) {
	ownerID, err := identity.Resolve(entry.Session.User)
	if err != nil {
		return nil, err
	}

	existing, err := s.docs.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPostNotFound
	}
	if existing.OwnerID != ownerID {
		return nil, ErrNotPostOwner
	}

	status := model.PostStatus(req.Status)
	if status == "" {
		status = existing.Status
	}

	// 1. Upload the replacement image before touching the document.
	imageID := existing.FeaturedImageID
	newImageID := ""
	if image != nil {
		file, upErr := s.files.Upload(ctx, image.Reader, image.Name, image.Size, image.ContentType)
		if upErr != nil {
			s.toasts.Error(entry.ID, "Image upload failed")
			return nil, upErr
		}
		newImageID = file.ID
		imageID = newImageID
	}

	post := &model.PostRecord{
		Title:           req.Title,
		Slug:            existing.Slug,
		Content:         req.Content,
		FeaturedImageID: imageID,
		OwnerID:         existing.OwnerID,
		Status:          status,
	}
	updated, err := s.docs.Update(ctx, req.ID, post)
	if err != nil {
		// Compensate the fresh upload; the old image stays referenced.
		if newImageID != "" {
			if delErr := s.files.Delete(ctx, newImageID); delErr != nil {
				s.logger.Error("PostService", "Orphaned image after failed update", map[string]interface{}{
					"file_id": newImageID,
					"error":   delErr.Error(),
				})
			}
		}
		s.toasts.Error(entry.ID, "Failed to update post")
		return nil, err
	}

	// 2. Only after the document points at the new image is the old one safe
	// to drop. A failure here leaves an orphan, never a broken reference.
	if newImageID != "" && existing.FeaturedImageID != "" {
		if delErr := s.files.Delete(ctx, existing.FeaturedImageID); delErr != nil {
			s.logger.Warn("PostService", "Failed to delete replaced image", map[string]interface{}{
				"file_id": existing.FeaturedImageID,
				"error":   delErr.Error(),
			})
		}
	}

	s.publishPostEvent(ctx, events.TypePostUpdated, updated.ID, updated.Slug, ownerID)
	s.toasts.Success(entry.ID, "Post updated")
	return &dto.MutatePostResponse{ID: updated.ID, Slug: updated.Slug}, nil
}

func (s *postService) Delete(ctx context.Context, entry *session.Entry, id string) error {
	ownerID, err := identity.Resolve(entry.Session.User)
	if err != nil {
		return err
	}

	existing, err := s.docs.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	if existing.OwnerID != ownerID {
		return ErrNotPostOwner
	}

	// Document first: once it is gone the post is gone for every reader.
	if err := s.docs.Delete(ctx, id); err != nil {
		s.toasts.Error(entry.ID, "Failed to delete post")
		return err
	}

	s.publishPostEvent(ctx, events.TypePostDeleted, existing.ID, existing.Slug, ownerID)

	// The image is cleanup. Losing it only leaks storage, so a failure is a
	// warning, not a failed delete.
	if existing.FeaturedImageID != "" {
		if delErr := s.files.Delete(ctx, existing.FeaturedImageID); delErr != nil {
			s.logger.Warn("PostService", "Post deleted but image cleanup failed", map[string]interface{}{
				"file_id": existing.FeaturedImageID,
				"error":   delErr.Error(),
			})
			s.toasts.Warning(entry.ID, "Post deleted, but its image could not be removed")
			return nil
		}
	}

	s.toasts.Success(entry.ID, "Post deleted")
	return nil
}

func (s *postService) toCards(posts []model.PostRecord) []dto.PostCard {
	cards := make([]dto.PostCard, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, dto.NewPostCard(p, s.files.PreviewURL(p.FeaturedImageID)))
	}
	return cards
}

func (s *postService) publishPostEvent(ctx context.Context, eventType, postID, slugID, ownerID string) {
	if s.eventPublisher == nil {
		return
	}
	event := events.NewPostEvent(eventType, postID, slugID, ownerID)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("PostService", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}
