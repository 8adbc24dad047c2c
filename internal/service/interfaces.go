package service

import (
	"context"
	"io"

	"github.com/pageza/alchemorsel-chat/backend/internal/model"
	"github.com/pageza/alchemorsel-chat/backend/internal/types"
)

// ICatalogService defines read-only access to the recipe and nutrition tables
type ICatalogService interface {
	GetRecipe(ctx context.Context, id int) (*model.Recipe, error)
	GetNutrition(ctx context.Context, recipeID int) (*model.NutritionInfo, error)
}

// IUploadStore defines the interface for storing and serving uploaded images.
// Filenames passed in must already be sanitized.
type IUploadStore interface {
	Save(ctx context.Context, filename string, content io.Reader, contentType string) error
	Open(ctx context.Context, filename string) (*UploadedFile, error)
}

// IChatService defines the interface for answering chat messages
type IChatService interface {
	Respond(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error)
}

// Responder picks the assistant's text for a message
type Responder interface {
	Reply(message, username string) Reply
}
