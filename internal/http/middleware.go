package http

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/secopslabs/soar-mcp-go/internal/auth"
	"github.com/secopslabs/soar-mcp-go/internal/ratelimit"
)

const (
	headerRequestID = "X-Request-ID"

	// Inbound request IDs longer than this are replaced
	maxRequestIDLength = 128

	defaultMaxBodyBytes = 10 * 1024 * 1024
)

// withMiddleware wraps the handler with the middleware chain, outermost last
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	handler := next

	handler = s.rateLimitMiddleware(handler)
	handler = s.authMiddleware(handler)
	handler = s.bodySizeLimitMiddleware(handler)
	handler = RequestLogger(s.logger)(handler)
	handler = RequestID()(handler)
	handler = PanicRecovery(s.logger)(handler)

	return handler
}

// bodySizeLimitMiddleware limits request body size to prevent memory exhaustion
func (s *Server) bodySizeLimitMiddleware(next http.Handler) http.Handler {
	limit := s.config.HTTP.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

// authMiddleware verifies the bearer token on MCP paths and stores the
// principal in the request context. Health probes stay open.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isMCPPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token := auth.ExtractBearer(r.Header.Get("Authorization"))
		principal, err := auth.VerifyBearer(token, s.bearer)
		if err != nil {
			s.logger.Info("Rejected request",
				"request_id", auth.GetRequestID(r.Context()),
				"path", r.URL.Path,
				"error", err)

			description := "invalid bearer token"
			if errors.Is(err, auth.ErrMissingToken) {
				description = "missing bearer token"
			}
			w.Header().Set("WWW-Authenticate", `Bearer realm="soar-mcp"`)
			NewResponseWriter(w, s.logger).WriteError(http.StatusUnauthorized, "unauthorized", description)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

// rateLimitMiddleware applies the per-principal request budget on MCP paths
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rateLimiter == nil || !isMCPPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Anonymous callers share one principal, so they are told apart by IP
		principal := auth.FromContext(r.Context())
		key := principal.Key()
		if principal == nil || principal.Method == auth.MethodNone {
			key = "ip:" + getClientIP(r)
		}

		cfg := ratelimit.PerMinute(s.config.HTTP.RateLimitPerMinute)
		allowed, err := s.rateLimiter.Allow(r.Context(), key, cfg)
		if err != nil {
			s.logger.Warn("Rate limit check error", "error", err)
		}

		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(cfg.Window/time.Second)))
			NewResponseWriter(w, s.logger).WriteError(http.StatusTooManyRequests,
				"rate_limit_exceeded", "Too many requests. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RequestLogger returns middleware that logs all HTTP requests with structured fields
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			logger.Info("HTTP request completed",
				"request_id", auth.GetRequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"user_agent", r.UserAgent(),
				"remote_addr", getClientIP(r))
		})
	}
}

// PanicRecovery returns middleware that recovers from panics and logs them
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered in HTTP handler",
						"error", err,
						"request_id", auth.GetRequestID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", getClientIP(r))

					NewResponseWriter(w, logger).WriteError(http.StatusInternalServerError,
						"internal_server_error", "An internal error occurred")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RequestID returns middleware that tags each request with an ID, reusing a
// sane inbound X-Request-ID and generating a UUID otherwise
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(headerRequestID)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.NewString()
			}

			w.Header().Set(headerRequestID, requestID)
			next.ServeHTTP(w, r.WithContext(auth.WithRequestID(r.Context(), requestID)))
		})
	}
}
