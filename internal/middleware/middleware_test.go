package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logging.Discard()))
	router.GET("/", func(c *gin.Context) {
		panic("Test error")
	})

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}
	router.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusInternalServerError)
	}
	assert.JSONEq(t, `{"error":"Test error"}`, rr.Body.String())
}

func TestNotFound(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFound())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/api/recipe/1", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/api/recipe/1", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest("OPTIONS", "/api/recipe/1", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	preflight.Header.Set("Access-Control-Request-Method", "GET")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, preflight)

	assert.Less(t, rr.Code, 300)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	generated := rr.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, rr.Body.String())

	supplied := uuid.New().String()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, supplied)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, supplied, rr.Header().Get(RequestIDHeader))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.NotEqual(t, "not-a-uuid", rr.Header().Get(RequestIDHeader))
}

func TestIntParam(t *testing.T) {
	router := gin.New()
	reached := 0
	router.GET("/items/:id", IntParam("id"), func(c *gin.Context) {
		reached++
		c.JSON(http.StatusOK, gin.H{"id": c.GetInt("id")})
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/items/1", status: http.StatusOK, body: `{"id":1}`},
		{path: "/items/007", status: http.StatusOK, body: `{"id":7}`},
		{path: "/items/abc", status: http.StatusNotFound, body: `{"error":"Not found"}`},
		{path: "/items/-1", status: http.StatusNotFound, body: `{"error":"Not found"}`},
		{path: "/items/1.5", status: http.StatusNotFound, body: `{"error":"Not found"}`},
		{path: "/items/99999999999999999999999", status: http.StatusNotFound, body: `{"error":"Not found"}`},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", tt.path, nil))
		assert.Equal(t, tt.status, rr.Code, tt.path)
		assert.JSONEq(t, tt.body, rr.Body.String(), tt.path)
	}
	assert.Equal(t, 2, reached)
}

func TestMetricsCountsByRoute(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/metrics-test/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics-test/:id", "200"))
	for _, id := range []string{"1", "2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/metrics-test/"+id, nil))
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics-test/:id", "200"))

	assert.Equal(t, before+2, after)
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware(), RequestLogger(logging.Discard()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
