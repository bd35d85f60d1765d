package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogmosaic/internal/dto"
	gwmocks "blogmosaic/internal/gateway/mocks"
	"blogmosaic/internal/model"
	"blogmosaic/internal/pkg/logger"
	"blogmosaic/internal/service"
	svcmocks "blogmosaic/internal/service/mocks"
	"blogmosaic/internal/session"
)

func newAuthFixture() (*gwmocks.MockAccountGateway, session.Store, *session.TokenCodec, service.IAuthService) {
	accounts := new(gwmocks.MockAccountGateway)
	store := session.NewMemoryStore(time.Hour)
	codec := session.NewTokenCodec("test-secret", time.Hour)
	toasts := new(svcmocks.MockToastService)
	toasts.On("Success", mock.Anything, mock.Anything).Maybe()
	toasts.On("Error", mock.Anything, mock.Anything).Maybe()
	toasts.On("Warning", mock.Anything, mock.Anything).Maybe()
	svc := service.NewAuthService(accounts, store, codec, toasts, nil, logger.NewNopLogger())
	return accounts, store, codec, svc
}

func TestLoginStoresEntryAndIssuesCookieToken(t *testing.T) {
	accounts, store, codec, svc := newAuthFixture()

	accounts.On("Login", mock.Anything, mock.Anything).
		Return("remote-token", &model.UserRecord{ID: "user-1", Name: "Alice", Email: "a@example.com"}, nil)

	res, cookieToken, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, model.SessionAuthenticated, res.Status)
	require.NotNil(t, res.User)
	assert.Equal(t, "user-1", res.User.ID)

	entryID, err := codec.Parse(cookieToken)
	require.NoError(t, err)
	entry, ok := store.Get(entryID)
	require.True(t, ok)
	assert.Equal(t, "remote-token", entry.RemoteToken)
	assert.True(t, entry.Session.Authenticated())
}

func TestSignupCreatesAccountThenLogsIn(t *testing.T) {
	accounts, _, _, svc := newAuthFixture()

	accounts.On("Create", mock.Anything, mock.Anything).
		Return(&model.UserRecord{ID: "user-1"}, nil)
	accounts.On("Login", mock.Anything, mock.Anything).
		Return("remote-token", &model.UserRecord{ID: "user-1", Name: "Alice"}, nil)

	res, cookieToken, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name: "Alice", Email: "a@example.com", Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, cookieToken)
	assert.Equal(t, model.SessionAuthenticated, res.Status)
	accounts.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogoutDropsLocalSessionEvenWhenRemoteFails(t *testing.T) {
	accounts, store, _, svc := newAuthFixture()

	entry := session.NewEntry(&model.UserRecord{ID: "user-1"}, "remote-token")
	store.Save(entry)

	accounts.On("Logout", mock.Anything, "remote-token").
		Return(errors.New("remote unavailable"))

	err := svc.Logout(context.Background(), entry)

	require.NoError(t, err)
	_, ok := store.Get(entry.ID)
	assert.False(t, ok)
}

func TestCurrentDowngradesWhenRemoteSessionIsGone(t *testing.T) {
	accounts, store, _, svc := newAuthFixture()

	entry := session.NewEntry(&model.UserRecord{ID: "user-1"}, "remote-token")
	store.Save(entry)

	accounts.On("Current", mock.Anything, "remote-token").Return(nil, nil)

	res := svc.Current(context.Background(), entry)

	assert.Equal(t, model.SessionUnauthenticated, res.Status)
	assert.Nil(t, res.User)
	_, ok := store.Get(entry.ID)
	assert.False(t, ok)
}

func TestCurrentWithoutEntryIsUnauthenticated(t *testing.T) {
	_, _, _, svc := newAuthFixture()

	res := svc.Current(context.Background(), nil)

	assert.Equal(t, model.SessionUnauthenticated, res.Status)
	assert.Nil(t, res.User)
}

func TestCurrentRefreshesStoredUser(t *testing.T) {
	accounts, store, _, svc := newAuthFixture()

	entry := session.NewEntry(&model.UserRecord{ID: "user-1", Name: "Alice"}, "remote-token")
	store.Save(entry)

	accounts.On("Current", mock.Anything, "remote-token").
		Return(&model.UserRecord{ID: "user-1", Name: "Alice Renamed"}, nil)

	res := svc.Current(context.Background(), entry)

	assert.Equal(t, model.SessionAuthenticated, res.Status)
	assert.Equal(t, "Alice Renamed", res.User.Name)

	stored, ok := store.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, "Alice Renamed", stored.Session.User.Name)
}

func TestCurrentDoesNotWriteCallersEntry(t *testing.T) {
	accounts, store, _, svc := newAuthFixture()

	entry := session.NewEntry(&model.UserRecord{ID: "user-1", Name: "Alice"}, "remote-token")
	store.Save(entry)

	accounts.On("Current", mock.Anything, "remote-token").
		Return(&model.UserRecord{ID: "user-1", Name: "Alice Renamed"}, nil)

	// A session refresh and a snapshot read on the same entry, as two
	// handlers behind the same cookie would do. Run with the race detector.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			svc.Current(context.Background(), entry)
		}
	}()

	for i := 0; i < 100; i++ {
		assert.True(t, entry.Session.Authenticated())
	}
	<-done

	assert.Equal(t, "Alice", entry.Session.User.Name)
}
