package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"blogmosaic/internal/identity"
	"blogmosaic/internal/model"
)

// accountGateway implements AccountGateway on top of Client. Every user
// record leaving this file has been through identity.Normalize, so callers
// can rely on the canonical ID field.
type accountGateway struct {
	client *Client
}

func NewAccountGateway(client *Client) AccountGateway {
	return &accountGateway{client: client}
}

type sessionResponse struct {
	Token string           `json:"token"`
	User  model.UserRecord `json:"user"`
}

func (g *accountGateway) Login(ctx context.Context, creds Credentials) (string, *model.UserRecord, error) {
	payload := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}

	var res sessionResponse
	if err := g.client.do(ctx, "login", http.MethodPost, "/account/sessions", "", payload, &res); err != nil {
		return "", nil, err
	}

	user, err := identity.Normalize(&res.User)
	if err != nil {
		return "", nil, err
	}
	return res.Token, user, nil
}

func (g *accountGateway) Create(ctx context.Context, profile Profile) (*model.UserRecord, error) {
	payload := map[string]string{
		"name":     profile.Name,
		"email":    profile.Email,
		"password": profile.Password,
	}

	var user model.UserRecord
	if err := g.client.do(ctx, "create account", http.MethodPost, "/account", "", payload, &user); err != nil {
		return nil, err
	}
	return identity.Normalize(&user)
}

func (g *accountGateway) Logout(ctx context.Context, token string) error {
	return g.client.do(ctx, "logout", http.MethodDelete, "/account/sessions/current", token, nil, nil)
}

// Current resolves the user behind a session token. A 401 means no active
// session and yields (nil, nil); only transport or service failures error.
func (g *accountGateway) Current(ctx context.Context, token string) (*model.UserRecord, error) {
	if token == "" {
		return nil, nil
	}

	resp, err := g.client.doRaw(ctx, "current user", http.MethodGet, "/account", token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if isStatus(resp, http.StatusUnauthorized) {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Op: "current user", Message: readRemoteMessage(resp)}
	}

	var user model.UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &RemoteError{Op: "current user", Message: err.Error()}
	}
	return identity.Normalize(&user)
}
