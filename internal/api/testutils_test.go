package api

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
	"github.com/pageza/alchemorsel-chat/backend/internal/middleware"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// testMaxUploadBytes keeps the upload limit small enough to exceed in tests
const testMaxUploadBytes = 1 << 20

// TestEnv holds a router wired to an in-memory catalog and a temporary upload directory
type TestEnv struct {
	Router  *gin.Engine
	Uploads *service.LocalUploadStore
}

// SetupTestEnv builds the API routes the same way the router package does
func SetupTestEnv(t *testing.T, responder service.Responder) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploads, err := service.NewLocalUploadStore(t.TempDir())
	require.NoError(t, err)

	logger := logging.Discard()
	catalog := service.NewStaticCatalog()
	chat := service.NewChatService(responder, catalog, uploads, logger)

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger), middleware.CORS())
	router.NoRoute(middleware.NotFound())
	RegisterOperationalRoutes(router)

	group := router.Group("/api")
	NewChatHandler(chat, logger, testMaxUploadBytes).RegisterRoutes(group)
	NewUserInfoHandler(logger, testMaxUploadBytes).RegisterRoutes(group)
	NewRecipeHandler(catalog, logger).RegisterRoutes(group)
	NewNutritionHandler(catalog, logger).RegisterRoutes(group)
	NewUploadHandler(uploads, logger).RegisterRoutes(&router.RouterGroup)

	return &TestEnv{Router: router, Uploads: uploads}
}

// testFile is a file part for multipartBody
type testFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// multipartBody encodes fields and an optional file as multipart/form-data
func multipartBody(t *testing.T, fields map[string]string, file *testFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+file.Field+`"; filename="`+file.Filename+`"`)
		if file.ContentType != "" {
			h.Set("Content-Type", file.ContentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// newTestContext returns a gin context for a POST with the given content type
func newTestContext(contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", nil)
	if contentType != "" {
		c.Request.Header.Set("Content-Type", contentType)
	}
	return c, w
}
