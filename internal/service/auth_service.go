// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"blogmosaic/internal/dto"
	"blogmosaic/internal/gateway"
	"blogmosaic/internal/model"
	"blogmosaic/internal/pkg/logger"
	"blogmosaic/internal/session"

	"blogmosaic/pkg/events"
	pktNats "blogmosaic/pkg/nats"
)

// IAuthService owns the transitions of a browser session. Login and Signup
// return the session view plus the signed cookie token that links the
// browser to its store entry.
type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionResponse, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, string, error)
	Logout(ctx context.Context, entry *session.Entry) error
	Current(ctx context.Context, entry *session.Entry) dto.SessionResponse
}

type authService struct {
	accounts       gateway.AccountGateway
	store          session.Store
	codec          *session.TokenCodec
	toasts         IToastService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(
	accounts gateway.AccountGateway,
	store session.Store,
	codec *session.TokenCodec,
	toasts IToastService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		accounts:       accounts,
		store:          store,
		codec:          codec,
		toasts:         toasts,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionResponse, string, error) {
	// 1. Create the remote account. The remote service owns uniqueness.
	_, err := s.accounts.Create(ctx, gateway.Profile{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, "", err
	}

	// 2. A fresh account starts a session immediately.
	return s.Login(ctx, &dto.LoginRequest{Email: req.Email, Password: req.Password})
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, string, error) {
	remoteToken, user, err := s.accounts.Login(ctx, gateway.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, "", err
	}

	// Persist the entry and mint the cookie token that points at it.
	entry := session.NewEntry(user, remoteToken)
	s.store.Save(entry)

	cookieToken, err := s.codec.Issue(entry.ID)
	if err != nil {
		s.store.Delete(entry.ID)
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	if s.eventPublisher != nil {
		event := events.NewUserEvent(events.TypeUserLogin, user.ID)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("AuthService", "Failed to publish USER_LOGIN event", map[string]interface{}{"error": err.Error()})
		}
	}
	s.toasts.Success(entry.ID, "Welcome back, "+user.Name)

	res := dto.NewSessionResponse(entry.Session)
	return &res, cookieToken, nil
}

func (s *authService) Logout(ctx context.Context, entry *session.Entry) error {
	if entry == nil {
		return nil
	}

	// Invalidate the remote session first. A remote failure must not trap
	// the user in a logged-in shell, so it only logs.
	if err := s.accounts.Logout(ctx, entry.RemoteToken); err != nil {
		s.logger.Warn("AuthService", "Remote logout failed, dropping local session anyway", map[string]interface{}{
			"session_id": entry.ID,
			"error":      err.Error(),
		})
	}

	userID := ""
	if entry.Session.User != nil {
		userID = entry.Session.User.ID
	}
	s.store.Delete(entry.ID)

	if s.eventPublisher != nil {
		event := events.NewUserEvent(events.TypeUserLogout, userID)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("AuthService", "Failed to publish USER_LOGOUT event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

// Current re-validates the browser's session against the remote service.
// It never fails: a dead remote session downgrades to unauthenticated, and
// a transport error falls back to the stored snapshot so the shell can
// still render.
func (s *authService) Current(ctx context.Context, entry *session.Entry) dto.SessionResponse {
	if entry == nil {
		return dto.NewSessionResponse(model.NewUnauthenticatedSession())
	}

	user, err := s.accounts.Current(ctx, entry.RemoteToken)
	if err != nil {
		s.logger.Warn("AuthService", "Session check failed, serving stored session", map[string]interface{}{
			"session_id": entry.ID,
			"error":      err.Error(),
		})
		return dto.NewSessionResponse(entry.Session)
	}
	if user == nil {
		// Remote session expired or was revoked elsewhere.
		s.store.Delete(entry.ID)
		return dto.NewSessionResponse(model.NewUnauthenticatedSession())
	}

	// Refresh a private copy; the caller's entry may be read concurrently
	// by other handlers on the same request chain.
	refreshed := *entry
	refreshed.Session = model.NewAuthenticatedSession(user)
	s.store.Save(&refreshed)
	return dto.NewSessionResponse(refreshed.Session)
}
