// Package gateway is the typed façade over the remote content service.
// Every account, document and file operation the app performs goes through
// here; nothing else in the codebase talks to the network. The service is
// authoritative for ids, uniqueness and persistence.
package gateway

import (
	"context"
	"fmt"
	"io"

	"blogmosaic/internal/model"
)

// RemoteError is the only error shape the remote service produces. It
// carries no structured code, just the failed operation and the service's
// message; callers own any retry policy (none is implemented here).
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Credentials are the email/password pair for an email session.
type Credentials struct {
	Email    string
	Password string
}

// Profile is the signup payload.
type Profile struct {
	Name     string
	Email    string
	Password string
}

// Filter is a single server-side list predicate. The list endpoint forwards
// filters verbatim; server-side filtering is best-effort and consumers must
// not rely on it alone.
type Filter struct {
	Field string
	Value string
}

// AccountGateway covers the account/session endpoints. Current returns
// (nil, nil) when the token has no active session; "not logged in" is never
// an error.
type AccountGateway interface {
	Login(ctx context.Context, creds Credentials) (string, *model.UserRecord, error)
	Create(ctx context.Context, profile Profile) (*model.UserRecord, error)
	Logout(ctx context.Context, token string) error
	Current(ctx context.Context, token string) (*model.UserRecord, error)
}

// DocumentGateway covers the post document collection. Get returns
// (nil, nil) for a missing id. List order is server-determined and not
// stable across calls.
type DocumentGateway interface {
	List(ctx context.Context, filters []Filter) ([]model.PostRecord, error)
	Get(ctx context.Context, id string) (*model.PostRecord, error)
	Create(ctx context.Context, doc *model.PostRecord) (*model.PostRecord, error)
	Update(ctx context.Context, id string, doc *model.PostRecord) (*model.PostRecord, error)
	Delete(ctx context.Context, id string) error
}

// FileGateway covers the featured-image bucket. PreviewURL is pure and never
// fails; a bad id only surfaces when the browser tries to load the image.
type FileGateway interface {
	Upload(ctx context.Context, r io.Reader, name string, size int64, contentType string) (*model.FileRecord, error)
	Delete(ctx context.Context, id string) error
	PreviewURL(id string) string
}
