package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"blogmosaic/internal/dto"
	"blogmosaic/internal/model"
	"blogmosaic/internal/service"
	"blogmosaic/internal/session"
)

type MockToastService struct {
	mock.Mock
}

func (m *MockToastService) Success(sessionID uuid.UUID, msg string) {
	m.Called(sessionID, msg)
}

func (m *MockToastService) Error(sessionID uuid.UUID, msg string) {
	m.Called(sessionID, msg)
}

func (m *MockToastService) Warning(sessionID uuid.UUID, msg string) {
	m.Called(sessionID, msg)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SessionResponse, string, error) {
	args := m.Called(ctx, req)
	var res *dto.SessionResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.SessionResponse)
	}
	return res, args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, string, error) {
	args := m.Called(ctx, req)
	var res *dto.SessionResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.SessionResponse)
	}
	return res, args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, entry *session.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuthService) Current(ctx context.Context, entry *session.Entry) dto.SessionResponse {
	args := m.Called(ctx, entry)
	return args.Get(0).(dto.SessionResponse)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListAll(ctx context.Context) ([]dto.PostCard, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]dto.PostCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) ListHome(ctx context.Context) ([]dto.PostCard, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]dto.PostCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) ListMine(ctx context.Context, user *model.UserRecord) ([]dto.PostCard, error) {
	args := m.Called(ctx, user)
	if v := args.Get(0); v != nil {
		return v.([]dto.PostCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) GetBySlug(ctx context.Context, slugID string, viewer *model.UserRecord) (*dto.PostDetail, error) {
	args := m.Called(ctx, slugID, viewer)
	if v := args.Get(0); v != nil {
		return v.(*dto.PostDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, entry *session.Entry, req *dto.CreatePostRequest, image *service.ImageUpload) (*dto.MutatePostResponse, error) {
	args := m.Called(ctx, entry, req, image)
	if v := args.Get(0); v != nil {
		return v.(*dto.MutatePostResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, entry *session.Entry, req *dto.UpdatePostRequest, image *service.ImageUpload) (*dto.MutatePostResponse, error) {
	args := m.Called(ctx, entry, req, image)
	if v := args.Get(0); v != nil {
		return v.(*dto.MutatePostResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, entry *session.Entry, id string) error {
	args := m.Called(ctx, entry, id)
	return args.Error(0)
}
