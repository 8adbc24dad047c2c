package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// UploadHandler serves previously uploaded images by filename
type UploadHandler struct {
	store  service.IUploadStore
	logger *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store service.IUploadStore, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

// RegisterRoutes registers the upload routes on the engine root
func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/uploads/:filename", h.ServeUpload)
}

// ServeUpload streams the named upload. Names that could leave the upload
// directory are treated as missing. Seekable uploads also answer range and
// conditional requests.
func (h *UploadHandler) ServeUpload(c *gin.Context) {
	ctx := c.Request.Context()
	filename := c.Param("filename")
	h.logger.DebugContext(ctx, "file requested", "filename", filename)

	if !service.IsSafeFilename(filename) {
		h.logger.WarnContext(ctx, "rejected unsafe upload filename", "filename", filename)
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	file, err := h.store.Open(ctx, filename)
	if errors.Is(err, service.ErrUploadNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	if err != nil {
		respondError(c, h.logger, "failed to open upload", err)
		return
	}
	defer file.Body.Close()

	c.Header("X-Content-Type-Options", "nosniff")
	if rs, ok := file.Body.(io.ReadSeeker); ok {
		c.Header("Content-Type", file.ContentType)
		http.ServeContent(c.Writer, c.Request, filename, file.ModTime, rs)
		return
	}

	if !file.ModTime.IsZero() {
		c.Header("Last-Modified", file.ModTime.UTC().Format(http.TimeFormat))
	}
	size := file.Size
	if size <= 0 {
		size = -1
	}
	c.DataFromReader(http.StatusOK, size, file.ContentType, file.Body, nil)
}
