package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.AuthToken = "static-token"
	cfg.HTTP.JWTSecret = "jwt-secret"
	cfg.HTTP.JWTAudience = "soar-mcp"
	h := newTestServer(t, cfg, Backend{}).Handler()

	t.Run("missing token", func(t *testing.T) {
		w := rpc(t, h, "/mcp", "ping", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
		assert.Equal(t, "missing bearer token", decode(t, w)["error_description"])
	})

	t.Run("wrong token", func(t *testing.T) {
		w := rpc(t, h, "/mcp", "ping", nil, map[string]string{"Authorization": "Bearer nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("static token", func(t *testing.T) {
		w := rpc(t, h, "/mcp", "ping", nil, map[string]string{"Authorization": "Bearer static-token"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("jwt", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "analyst",
			Audience:  jwt.ClaimStrings{"soar-mcp"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("jwt-secret"))
		require.NoError(t, err)

		w := rpc(t, h, "/mcp/wiz", "ping", nil, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health stays open", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.HTTP.AuthToken = "static-token"
	cfg.HTTP.RateLimitPerMinute = 2
	cfg.Redis.URL = "redis://" + mr.Addr()
	s := newTestServer(t, cfg, Backend{})
	h := s.Handler()

	headers := map[string]string{"Authorization": "Bearer static-token"}
	for i := 0; i < 2; i++ {
		w := rpc(t, h, "/mcp", "ping", nil, headers)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := rpc(t, h, "/mcp", "ping", nil, headers)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decode(t, w)["error"])

	// Probes are never limited
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Readiness includes Redis when it is in use
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	checks := decode(t, w)["checks"].(map[string]interface{})
	assert.Equal(t, true, checks["redis"])
}

func TestRateLimitMiddleware_LocalFallback(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimitPerMinute = 1
	s := newTestServer(t, cfg, Backend{})
	h := s.Handler()

	first := map[string]string{"X-Forwarded-For": "203.0.113.7"}
	w := rpc(t, h, "/mcp", "ping", nil, first)
	require.Equal(t, http.StatusOK, w.Code)

	w = rpc(t, h, "/mcp", "ping", nil, first)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Anonymous callers are limited per client IP
	w = rpc(t, h, "/mcp", "ping", nil, map[string]string{"X-Forwarded-For": "198.51.100.2"})
	assert.Equal(t, http.StatusOK, w.Code)

	// No Redis, so readiness has nothing extra to check
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	checks := decode(t, w)["checks"].(map[string]interface{})
	_, hasRedis := checks["redis"]
	assert.False(t, hasRedis)
}

func TestBodySizeLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.MaxBodyBytes = 64
	h := newTestServer(t, cfg, Backend{}).Handler()

	body := `{"jsonrpc":"2.0","id":1,"method":"ping","params":{"pad":"` + strings.Repeat("x", 200) + `"}}`
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewReader([]byte(body))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t, testConfig(), Backend{}).Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36, "generated IDs are UUIDs")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "caller-supplied", w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestPanicRecovery(t *testing.T) {
	h := PanicRecovery(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_server_error", decode(t, w)["error"])
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", getClientIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.3")
	assert.Equal(t, "203.0.113.9", getClientIP(req))
}
