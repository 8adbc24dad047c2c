package types

import (
	"io"

	"github.com/pageza/alchemorsel-chat/backend/internal/model"
)

// AssistantName is the display name attached to every assistant reply.
const AssistantName = "AI 요리사"

// ImageUpload is an image attached to a chat message.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// ChatRequest is one incoming chat message. It only lives for the duration of a request.
type ChatRequest struct {
	Message  string
	Username string
	Image    *ImageUpload
}

// ChatResponse is the assistant's reply. ImageURL is serialized as null when nothing was uploaded.
type ChatResponse struct {
	Username string        `json:"username"`
	Message  string        `json:"message"`
	RecipeID *int          `json:"recipeId,omitempty"`
	Recipe   *model.Recipe `json:"recipe,omitempty"`
	ImageURL *string       `json:"imageUrl"`
}

// UserInfoResponse acknowledges a user-info submission.
type UserInfoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
