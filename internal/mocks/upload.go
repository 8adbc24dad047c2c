package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// MockUploadStore is a mock implementation of the upload store
type MockUploadStore struct {
	mock.Mock
}

// Save mocks the Save method
func (m *MockUploadStore) Save(ctx context.Context, filename string, content io.Reader, contentType string) error {
	args := m.Called(ctx, filename, content, contentType)
	return args.Error(0)
}

// Open mocks the Open method
func (m *MockUploadStore) Open(ctx context.Context, filename string) (*service.UploadedFile, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadedFile), args.Error(1)
}
