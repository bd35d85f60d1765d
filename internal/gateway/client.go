package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blogmosaic/internal/config"
)

const sessionTokenHeader = "X-Session-Token"

// Client is the HTTP/JSON client for the account and document endpoints.
// File operations live in FileStore because the bucket speaks S3, not the
// service's JSON API.
type Client struct {
	baseURL    string
	projectID  string
	apiKey     string
	collection string
	http       *http.Client
}

func NewClient(cfg config.RemoteConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.Endpoint, "/"),
		projectID:  cfg.ProjectID,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// remoteMessage is the error body the service returns on non-2xx responses.
type remoteMessage struct {
	Message string `json:"message"`
}

// do performs one request and decodes a 2xx JSON body into out (out may be
// nil for empty responses). Any non-2xx status becomes a *RemoteError whose
// message is taken from the response body when present.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Op: op, Message: err.Error()}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &RemoteError{Op: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-ID", c.projectID)
	req.Header.Set("X-API-Key", c.apiKey)
	if token != "" {
		req.Header.Set(sessionTokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Op: op, Message: readRemoteMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Op: op, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func readRemoteMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		var msg remoteMessage
		if json.Unmarshal(raw, &msg) == nil && msg.Message != "" {
			return msg.Message
		}
	}
	return resp.Status
}

func isStatus(resp *http.Response, code int) bool {
	return resp != nil && resp.StatusCode == code
}

// doRaw is do without body decoding, exposing the response status to the
// caller. Used where 404/401 is a legal, non-error outcome.
func (c *Client) doRaw(ctx context.Context, op, method, path, token string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &RemoteError{Op: op, Message: err.Error()}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &RemoteError{Op: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-ID", c.projectID)
	req.Header.Set("X-API-Key", c.apiKey)
	if token != "" {
		req.Header.Set(sessionTokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Op: op, Message: err.Error()}
	}
	return resp, nil
}
