package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"blogmosaic/internal/gateway"
	"blogmosaic/internal/model"
)

type MockAccountGateway struct {
	mock.Mock
}

func (m *MockAccountGateway) Login(ctx context.Context, creds gateway.Credentials) (string, *model.UserRecord, error) {
	args := m.Called(ctx, creds)
	var user *model.UserRecord
	if v := args.Get(1); v != nil {
		user = v.(*model.UserRecord)
	}
	return args.String(0), user, args.Error(2)
}

func (m *MockAccountGateway) Create(ctx context.Context, profile gateway.Profile) (*model.UserRecord, error) {
	args := m.Called(ctx, profile)
	if v := args.Get(0); v != nil {
		return v.(*model.UserRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountGateway) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAccountGateway) Current(ctx context.Context, token string) (*model.UserRecord, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*model.UserRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDocumentGateway struct {
	mock.Mock
}

func (m *MockDocumentGateway) List(ctx context.Context, filters []gateway.Filter) ([]model.PostRecord, error) {
	args := m.Called(ctx, filters)
	if v := args.Get(0); v != nil {
		return v.([]model.PostRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentGateway) Get(ctx context.Context, id string) (*model.PostRecord, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.PostRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentGateway) Create(ctx context.Context, doc *model.PostRecord) (*model.PostRecord, error) {
	args := m.Called(ctx, doc)
	if v := args.Get(0); v != nil {
		return v.(*model.PostRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentGateway) Update(ctx context.Context, id string, doc *model.PostRecord) (*model.PostRecord, error) {
	args := m.Called(ctx, id, doc)
	if v := args.Get(0); v != nil {
		return v.(*model.PostRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFileGateway struct {
	mock.Mock
}

func (m *MockFileGateway) Upload(ctx context.Context, r io.Reader, name string, size int64, contentType string) (*model.FileRecord, error) {
	args := m.Called(ctx, r, name, size, contentType)
	if v := args.Get(0); v != nil {
		return v.(*model.FileRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileGateway) PreviewURL(id string) string {
	args := m.Called(id)
	return args.String(0)
}
