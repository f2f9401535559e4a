// Package ratelimit implements per-caller rate limits, shared through Redis
// or kept in process memory.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/secopslabs/soar-mcp-go/internal/redis"
)

// Limiter implements Redis-based fixed window rate limiting
type Limiter struct {
	redis  *redis.Client
	logger *slog.Logger
	now    func() time.Time
}

// Config holds rate limit configuration for an endpoint
type Config struct {
	MaxRequests int           // Maximum requests allowed
	Window      time.Duration // Time window for the limit
}

// PerMinute returns a Config allowing n requests per minute
func PerMinute(n int) Config {
	return Config{MaxRequests: n, Window: time.Minute}
}

// NewLimiter creates a new rate limiter
func NewLimiter(redisClient *redis.Client, logger *slog.Logger) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Limiter{
		redis:  redisClient,
		logger: logger,
		now:    time.Now,
	}
}

func (l *Limiter) bucketKey(key string, window time.Duration) string {
	seconds := int64(window / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	return fmt.Sprintf("ratelimit:%s:%d", key, l.now().Unix()/seconds)
}

// Allow reports whether a request for key fits in the current window.
// Redis failures allow the request (fail open) and return the error so the
// caller can log it.
func (l *Limiter) Allow(ctx context.Context, key string, cfg Config) (bool, error) {
	if cfg.MaxRequests <= 0 {
		return true, nil
	}

	bucketKey := l.bucketKey(key, cfg.Window)

	count, err := l.redis.Incr(ctx, bucketKey)
	if err != nil {
		l.logger.Warn("Rate limit check failed, allowing request", "key", key, "error", err)
		return true, err
	}

	// The first hit of a window owns its expiry
	if count == 1 {
		if err := l.redis.Expire(ctx, bucketKey, cfg.Window); err != nil {
			l.logger.Warn("Failed to set rate limit expiration", "key", key, "error", err)
		}
	}

	allowed := count <= int64(cfg.MaxRequests)
	if !allowed {
		l.logger.Info("Rate limit exceeded", "key", key, "count", count, "limit", cfg.MaxRequests)
	}

	return allowed, nil
}

// Reset clears every window of a key
func (l *Limiter) Reset(ctx context.Context, key string) error {
	_, err := l.redis.DeleteMatching(ctx, fmt.Sprintf("ratelimit:%s:*", key))
	return err
}
