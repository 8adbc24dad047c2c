package api

import (
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/internal/service"
	"github.com/pageza/alchemorsel-chat/backend/internal/types"
)

// ChatHandler handles chat messages
type ChatHandler struct {
	chat           service.IChatService
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewChatHandler creates a new chat handler. Request bodies larger than maxUploadBytes are rejected.
func NewChatHandler(chat service.IChatService, logger *slog.Logger, maxUploadBytes int64) *ChatHandler {
	return &ChatHandler{
		chat:           chat,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// chatJSONBody is the JSON form of a chat message; nil fields were absent
type chatJSONBody struct {
	Message  *string `json:"message"`
	Username *string `json:"username"`
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", h.Chat)
}

// Chat answers a chat message sent as JSON or as a (multipart) form with an optional image
func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.InfoContext(ctx, "chat API called", "contentType", c.ContentType())

	req, cleanup, err := h.parseRequest(c)
	defer cleanup()
	if err != nil {
		respondError(c, h.logger, "failed to parse chat request", err)
		return
	}

	resp, err := h.chat.Respond(ctx, req)
	if err != nil {
		respondError(c, h.logger, "failed to handle chat message", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) parseRequest(c *gin.Context) (*types.ChatRequest, func(), error) {
	cleanup := func() {}
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	if isJSONRequest(c) {
		var body chatJSONBody
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, cleanup, err
		}
		req := &types.ChatRequest{Message: "", Username: "user"}
		if body.Message != nil {
			req.Message = *body.Message
		}
		if body.Username != nil {
			req.Username = *body.Username
		}
		h.logger.DebugContext(c.Request.Context(), "JSON chat request", "message", req.Message, "username", req.Username)
		return req, cleanup, nil
	}

	if err := parseForm(c.Request); err != nil {
		return nil, cleanup, err
	}
	form := c.Request.PostForm
	req := &types.ChatRequest{
		Message:  formValue(form, "message", ""),
		Username: formValue(form, "username", "user"),
	}
	h.logger.DebugContext(c.Request.Context(), "form chat request", "form", form)

	mf := c.Request.MultipartForm
	if mf == nil {
		return req, cleanup, nil
	}
	cleanup = func() { _ = mf.RemoveAll() }

	files := mf.File["image"]
	if len(files) == 0 || files[0].Filename == "" {
		return req, cleanup, nil
	}

	f, err := files[0].Open()
	if err != nil {
		return nil, cleanup, err
	}
	cleanup = func() {
		_ = f.Close()
		_ = mf.RemoveAll()
	}
	req.Image = &types.ImageUpload{
		Filename:    rawFilename(files[0]),
		ContentType: files[0].Header.Get("Content-Type"),
		Content:     f,
	}
	return req, cleanup, nil
}

// rawFilename returns the filename exactly as the client sent it. The
// multipart reader strips directories from FileHeader.Filename, which would
// hide them from SanitizeFilename.
func rawFilename(fh *multipart.FileHeader) string {
	if _, params, err := mime.ParseMediaType(fh.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}
	return fh.Filename
}
