// Package session owns the client-side authentication state. The Session
// value itself is only ever mutated here; controllers read snapshots through
// the middleware and write via the auth service's login/logout calls.
package session

import (
	"blogmosaic/internal/model"

	"github.com/google/uuid"
)

// Entry is one browser's session: the auth state plus the remote service's
// session token that backs it. The token never leaves the server.
type Entry struct {
	ID          uuid.UUID     `json:"id"`
	Session     model.Session `json:"session"`
	RemoteToken string        `json:"remote_token"`
}

// Store is the single-owner session container. Implementations must be safe
// for concurrent use and must return isolated copies from Get, so callers
// can mutate what they got without racing other requests on the same cookie.
// Entries expire after the configured TTL.
type Store interface {
	Save(entry *Entry)
	Get(id uuid.UUID) (*Entry, bool)
	Delete(id uuid.UUID)
}

// NewEntry creates an authenticated entry for a fresh login.
func NewEntry(user *model.UserRecord, remoteToken string) *Entry {
	return &Entry{
		ID:          uuid.New(),
		Session:     model.NewAuthenticatedSession(user),
		RemoteToken: remoteToken,
	}
}
