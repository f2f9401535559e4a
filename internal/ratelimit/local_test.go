package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter_Allow(t *testing.T) {
	limiter, err := NewLocalLimiter(0, testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	cfg := PerMinute(5)

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "user:1", cfg)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "user:1", cfg)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other keys have their own bucket
	allowed, err = limiter.Allow(ctx, "user:2", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLocalLimiter_ZeroLimit(t *testing.T) {
	limiter, err := NewLocalLimiter(0, testLogger())
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(context.Background(), "user:1", Config{})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	assert.Equal(t, 0, limiter.Len())
}

func TestLocalLimiter_Reset(t *testing.T) {
	limiter, err := NewLocalLimiter(0, testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	cfg := PerMinute(1)

	allowed, _ := limiter.Allow(ctx, "user:1", cfg)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "user:1", cfg)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "user:1"))

	allowed, _ = limiter.Allow(ctx, "user:1", cfg)
	assert.True(t, allowed)
}

func TestLocalLimiter_EvictsLeastRecentKeys(t *testing.T) {
	limiter, err := NewLocalLimiter(2, testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	cfg := PerMinute(1)

	for _, key := range []string{"a", "b", "c"} {
		allowed, err := limiter.Allow(ctx, key, cfg)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	assert.Equal(t, 2, limiter.Len())

	// "a" was evicted and starts with a fresh bucket
	allowed, _ := limiter.Allow(ctx, "a", cfg)
	assert.True(t, allowed)
}

func TestLocalLimiter_Concurrent(t *testing.T) {
	limiter, err := NewLocalLimiter(0, testLogger())
	require.NoError(t, err)
	cfg := PerMinute(10)

	var (
		wg      sync.WaitGroup
		granted atomic.Int64
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow(context.Background(), "shared", cfg); allowed {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), granted.Load())
}

func TestLimiters_ImplementAllower(t *testing.T) {
	var _ Allower = (*Limiter)(nil)
	var _ Allower = (*LocalLimiter)(nil)
}
