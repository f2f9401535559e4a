package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/secopslabs/soar-mcp-go/internal/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create test logger
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Helper to setup test limiter with miniredis and a fixed clock
func setupTestLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis, *time.Time) {
	t.Helper()

	mr := miniredis.RunT(t)

	redisClient, err := redis.New(&redis.Config{URL: "redis://" + mr.Addr()}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { redisClient.Close() })

	limiter := NewLimiter(redisClient, testLogger())
	now := time.Unix(1_700_000_000, 0)
	limiter.now = func() time.Time { return now }

	return limiter, mr, &now
}

func TestAllow_BasicRateLimiting(t *testing.T) {
	limiter, _, _ := setupTestLimiter(t)
	ctx := context.Background()
	cfg := Config{MaxRequests: 3, Window: time.Minute}

	for i := 1; i <= 3; i++ {
		allowed, err := limiter.Allow(ctx, "analyst", cfg)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i)
	}

	allowed, err := limiter.Allow(ctx, "analyst", cfg)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request should be blocked")

	allowed, err = limiter.Allow(ctx, "someone-else", cfg)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are limited independently")
}

func TestAllow_WindowRollover(t *testing.T) {
	limiter, _, now := setupTestLimiter(t)
	ctx := context.Background()
	cfg := Config{MaxRequests: 1, Window: time.Minute}

	allowed, _ := limiter.Allow(ctx, "k", cfg)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "k", cfg)
	assert.False(t, allowed)

	*now = now.Add(time.Minute)
	allowed, err := limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.True(t, allowed, "a new window starts from zero")
}

func TestAllow_SetsExpiry(t *testing.T) {
	limiter, mr, _ := setupTestLimiter(t)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "k", PerMinute(10))
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))
}

func TestAllow_ZeroLimitDisables(t *testing.T) {
	limiter, mr, _ := setupTestLimiter(t)

	allowed, err := limiter.Allow(context.Background(), "k", Config{})
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Empty(t, mr.Keys())
}

func TestAllow_FailOpen(t *testing.T) {
	limiter, mr, _ := setupTestLimiter(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	allowed, err := limiter.Allow(ctx, "k", PerMinute(1))
	assert.Error(t, err)
	assert.True(t, allowed, "Redis failures must not block requests")
}

func TestReset(t *testing.T) {
	limiter, _, _ := setupTestLimiter(t)
	ctx := context.Background()
	cfg := Config{MaxRequests: 1, Window: time.Minute}

	limiter.Allow(ctx, "k", cfg)
	allowed, _ := limiter.Allow(ctx, "k", cfg)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))

	allowed, err := limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_Concurrent(t *testing.T) {
	limiter, _, _ := setupTestLimiter(t)
	ctx := context.Background()
	cfg := Config{MaxRequests: 10, Window: time.Minute}

	var (
		wg      sync.WaitGroup
		allowed int32
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := limiter.Allow(ctx, "burst", cfg)
			assert.NoError(t, err)
			if ok {
				atomic.AddInt32(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), allowed)
}
