package api

import (
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/alchemorsel-chat/backend/internal/middleware"
)

// defaultMultipartMemory is how much of a multipart body is held in memory before spilling to temp files
const defaultMultipartMemory = 32 << 20

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// RegisterOperationalRoutes registers the health and metrics endpoints
func RegisterOperationalRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// mediaType returns the lowercased media type of the request body without parameters
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// isJSONRequest mirrors the usual JSON mimetype check: application/json or application/*+json
func isJSONRequest(c *gin.Context) bool {
	mt := mediaType(c.Request)
	return mt == "application/json" || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}

// parseForm parses an urlencoded or multipart body into r.PostForm
func parseForm(r *http.Request) error {
	if mediaType(r) == "multipart/form-data" {
		return r.ParseMultipartForm(defaultMultipartMemory)
	}
	return r.ParseForm()
}

// formValue returns the first value for key, or fallback when the field is absent
func formValue(form map[string][]string, key, fallback string) string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return fallback
	}
	return values[0]
}

// respondError logs err with its context and replies 500 with the raw error message
func respondError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.ErrorContext(c.Request.Context(), msg,
		"error", err,
		"requestID", middleware.RequestID(c),
		"path", c.Request.URL.Path,
	)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
