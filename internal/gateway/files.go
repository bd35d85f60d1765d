package gateway

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"blogmosaic/internal/config"
	"blogmosaic/internal/model"
)

// fileStore implements FileGateway against the content service's
// S3-compatible featured-image bucket. Safe for concurrent use.
type fileStore struct {
	client      *minio.Client
	bucket      string
	baseURL     string
	placeholder string
}

// NewFileStore builds the file gateway. It validates connectivity lazily;
// the bucket is owned and provisioned by the remote service.
func NewFileStore(cfg config.StorageConfig) (FileGateway, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("storage endpoint is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &fileStore{
		client:      cli,
		bucket:      cfg.Bucket,
		baseURL:     fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
		placeholder: cfg.PlaceholderURL,
	}, nil
}

// Upload streams the blob under a fresh id (uuid + original extension).
func (s *fileStore) Upload(ctx context.Context, r io.Reader, name string, size int64, contentType string) (*model.FileRecord, error) {
	if r == nil {
		return nil, &RemoteError{Op: "upload file", Message: "empty file"}
	}

	id := uuid.New().String() + filepath.Ext(name)
	_, err := s.client.PutObject(ctx, s.bucket, id, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"original-filename": name},
	})
	if err != nil {
		return nil, &RemoteError{Op: "upload file", Message: err.Error()}
	}

	return &model.FileRecord{
		ID:          id,
		Name:        name,
		Size:        size,
		ContentType: contentType,
		CreatedAt:   time.Now(),
	}, nil
}

func (s *fileStore) Delete(ctx context.Context, id string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{}); err != nil {
		return &RemoteError{Op: "delete file", Message: err.Error()}
	}
	return nil
}

// PreviewURL builds a best-effort public URL for the blob. It never fails
// and performs no I/O: a nonexistent id only surfaces when the browser loads
// the image, which falls back to the placeholder asset.
func (s *fileStore) PreviewURL(id string) string {
	if id == "" {
		return s.placeholder
	}
	return s.baseURL + "/" + id
}
