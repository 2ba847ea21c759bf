package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddlewareGenerates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, seen, "handler should see a request id")
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestIDMiddlewarePropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-42", w.Header().Get(RequestIDHeader))
}

func TestLogRequestCapturesFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := &mockLogger{}

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.Use(LogRequest(logger))
	r.GET("/v1/languages", func(c *gin.Context) {
		c.String(http.StatusOK, "en,es,ar")
	})

	req := httptest.NewRequest("GET", "/v1/languages?verbose=1", strings.NewReader("body"))
	req.Header.Set("X-Trace-ID", "trace-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.True(t, logger.called)
	assert.Equal(t, "GET", logger.lastInfo.Method)
	assert.Equal(t, "/v1/languages", logger.lastInfo.Path)
	assert.Equal(t, http.StatusOK, logger.lastInfo.StatusCode)
	assert.Equal(t, "verbose=1", logger.lastInfo.Query)
	assert.Equal(t, "trace-7", logger.lastInfo.TraceID)
	assert.NotEmpty(t, logger.lastInfo.RequestID)
	assert.Equal(t, int64(len("en,es,ar")), logger.lastInfo.ResponseSize)
}

func TestLogHarbourAdapter(t *testing.T) {
	var buf bytes.Buffer
	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	lh := logharbour.NewLogger(lctx, "sankhya-test", &buf)

	adapter := NewLogHarbourAdapter(lh)
	adapter.Log(RequestInfo{
		Method:     "POST",
		Path:       "/v1/convert",
		ClientIP:   "10.0.0.1",
		StatusCode: 200,
		RequestID:  "req-1",
	})

	out := buf.String()
	assert.Contains(t, out, "HTTP request completed")
	assert.Contains(t, out, "/v1/convert")
	assert.Contains(t, out, "req-1")
}
