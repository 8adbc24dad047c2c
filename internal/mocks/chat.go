package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/alchemorsel-chat/backend/internal/types"
)

// MockChatService is a mock implementation of the chat service
type MockChatService struct {
	mock.Mock
}

// Respond mocks the Respond method
func (m *MockChatService) Respond(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChatResponse), args.Error(1)
}
