package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cindyhont/jobly-backend/config"
	"github.com/stretchr/testify/assert"
)

func TestUnknownRouteIsJSON404(t *testing.T) {
	h := Handler(&config.Config{AllowedOrigins: []string{"*"}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"not found","status":404}}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSHeaders(t *testing.T) {
	h := Handler(&config.Config{AllowedOrigins: []string{"http://app.test"}})

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
