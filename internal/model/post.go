package model

import "time"

// PostStatus mirrors the remote collection's status attribute.
type PostStatus string

const (
	PostStatusActive   PostStatus = "active"
	PostStatusInactive PostStatus = "inactive"
)

// PostRecord is a blog post document as stored in the remote collection.
// The document id doubles as the URL slug: posts are created with the slug
// as their id, so Get-by-slug is a plain document read.
type PostRecord struct {
	ID              string     `json:"$id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	FeaturedImageID string     `json:"featuredImage"`
	OwnerID         string     `json:"userId"`
	Status          PostStatus `json:"status"`
	CreatedAt       time.Time  `json:"$createdAt"`
}

// FileRecord is the metadata of a binary blob in the remote file bucket.
// Nothing ties its lifecycle to a PostRecord; cleanup is the caller's job.
type FileRecord struct {
	ID          string    `json:"$id"`
	Name        string    `json:"name"`
	Size        int64     `json:"sizeOriginal"`
	ContentType string    `json:"mimeType"`
	CreatedAt   time.Time `json:"$createdAt"`
}
