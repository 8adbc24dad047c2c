package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/internal/types"
)

// UserInfoSavedMessage is returned for every accepted user-info submission
const UserInfoSavedMessage = "사용자 정보가 성공적으로 저장되었습니다"

// UserInfoHandler accepts user-info payloads. Nothing is persisted; the payload is only logged.
type UserInfoHandler struct {
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewUserInfoHandler creates a new user-info handler. Request bodies larger than maxBodyBytes are rejected.
func NewUserInfoHandler(logger *slog.Logger, maxBodyBytes int64) *UserInfoHandler {
	return &UserInfoHandler{logger: logger, maxBodyBytes: maxBodyBytes}
}

// RegisterRoutes registers the user-info routes
func (h *UserInfoHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/user-info", h.SaveUserInfo)
}

// SaveUserInfo logs an arbitrary JSON or form payload and acknowledges it
func (h *UserInfoHandler) SaveUserInfo(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.InfoContext(ctx, "user-info API called")
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	if isJSONRequest(c) {
		var payload interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, h.logger, "failed to parse user info", err)
			return
		}
		h.logger.DebugContext(ctx, "user info received", "payload", payload)
	} else {
		h.logger.WarnContext(ctx, "user info request is not JSON", "contentType", c.ContentType())
		if err := parseForm(c.Request); err != nil {
			respondError(c, h.logger, "failed to parse user info", err)
			return
		}
		if mf := c.Request.MultipartForm; mf != nil {
			defer func() { _ = mf.RemoveAll() }()
		}
		h.logger.DebugContext(ctx, "user info form received", "form", c.Request.PostForm)
	}

	c.JSON(http.StatusOK, types.UserInfoResponse{
		Status:  "success",
		Message: UserInfoSavedMessage,
	})
}
