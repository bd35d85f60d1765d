package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogmosaic/internal/config"
	"blogmosaic/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.RemoteConfig{
		Endpoint:   srv.URL,
		ProjectID:  "proj",
		APIKey:     "key",
		Collection: "posts",
	})
}

func TestAccountLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account/sessions", r.URL.Path)
		assert.Equal(t, "proj", r.Header.Get("X-Project-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-1",
			"user":  map[string]string{"$id": "u-1", "email": "a@b.c"},
		})
	})

	token, user, err := NewAccountGateway(client).Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "u-1", user.ID)
}

func TestAccountLoginFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	})

	_, _, err := NewAccountGateway(client).Login(context.Background(), Credentials{})
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "login", remoteErr.Op)
	assert.Equal(t, "invalid credentials", remoteErr.Message)
}

func TestAccountCurrentNoSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	user, err := NewAccountGateway(client).Current(context.Background(), "stale-token")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestAccountCurrentEmptyToken(t *testing.T) {
	// No token means no request at all.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	})

	user, err := NewAccountGateway(client).Current(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestAccountCurrentNormalizesIdentity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get(sessionTokenHeader))
		// Older payloads carry id instead of $id.
		json.NewEncoder(w).Encode(map[string]string{"id": "legacy-7"})
	})

	user, err := NewAccountGateway(client).Current(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "legacy-7", user.ID)
}

func TestDocumentList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/posts/documents", r.URL.Path)
		assert.Equal(t, []string{"status=active"}, r.URL.Query()["filter"])
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total": 2,
			"documents": []map[string]string{
				{"$id": "p1", "title": "One"},
				{"$id": "p2", "title": "Two"},
			},
		})
	})

	docs, err := NewDocumentGateway(client).List(context.Background(), []Filter{{Field: "status", Value: "active"}})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "p1", docs[0].ID)
}

func TestDocumentGetMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "document not found"})
	})

	doc, err := NewDocumentGateway(client).Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDocumentCreateSendsSlugAsID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			DocumentID string            `json:"documentId"`
			Data       *model.PostRecord `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "hello-world", payload.DocumentID)
		assert.Equal(t, "Hello World", payload.Data.Title)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"$id": "hello-world", "title": "Hello World"})
	})

	created, err := NewDocumentGateway(client).Create(context.Background(), &model.PostRecord{
		ID:    "hello-world",
		Title: "Hello World",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", created.ID)
}

func TestDocumentDeleteFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := NewDocumentGateway(client).Delete(context.Background(), "p1")
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "delete document", remoteErr.Op)
}
