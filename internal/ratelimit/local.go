package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// DefaultLocalKeys bounds how many callers a LocalLimiter tracks at once
const DefaultLocalKeys = 10000

// Allower is implemented by both the Redis and the in-process limiter
type Allower interface {
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
}

// LocalLimiter keeps a token bucket per key in process memory. Limits apply
// per replica, so it is only used when no Redis is configured. The least
// recently seen keys are dropped once maxKeys is reached.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	logger   *slog.Logger
}

// NewLocalLimiter creates an in-process limiter tracking at most maxKeys keys
func NewLocalLimiter(maxKeys int, logger *slog.Logger) (*LocalLimiter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if maxKeys <= 0 {
		maxKeys = DefaultLocalKeys
	}
	cache, err := lru.New[string, *rate.Limiter](maxKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to create limiter cache: %w", err)
	}
	return &LocalLimiter{limiters: cache, logger: logger}, nil
}

func (l *LocalLimiter) limiterFor(key string, cfg Config) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters.Get(key); ok {
		return lim
	}

	window := cfg.Window
	if window <= 0 {
		window = time.Second
	}
	// Refill evenly over the window with a full window's worth of burst
	lim := rate.NewLimiter(rate.Every(window/time.Duration(cfg.MaxRequests)), cfg.MaxRequests)
	l.limiters.Add(key, lim)
	return lim
}

// Allow reports whether a request for key fits in its bucket. It never fails.
func (l *LocalLimiter) Allow(_ context.Context, key string, cfg Config) (bool, error) {
	if cfg.MaxRequests <= 0 {
		return true, nil
	}

	allowed := l.limiterFor(key, cfg).Allow()
	if !allowed {
		l.logger.Info("Rate limit exceeded", "key", key, "limit", cfg.MaxRequests)
	}
	return allowed, nil
}

// Reset forgets the bucket of a key
func (l *LocalLimiter) Reset(_ context.Context, key string) error {
	l.limiters.Remove(key)
	return nil
}

// Len returns the number of tracked keys
func (l *LocalLimiter) Len() int {
	return l.limiters.Len()
}
