package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterAllowsUpToLimit(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(3)
	limiter.clock = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(1)
	limiter.clock = func() time.Time { return now }

	ctx := context.Background()
	allowed, _ := limiter.Allow(ctx, "1.1.1.1")
	assert.True(t, allowed)

	allowed, _ = limiter.Allow(ctx, "1.1.1.1")
	assert.False(t, allowed)

	// Другой клиент лимитом первого не задет
	allowed, _ = limiter.Allow(ctx, "2.2.2.2")
	assert.True(t, allowed)
}

func TestMemoryLimiterEvictsIdleKeys(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(5)
	limiter.clock = func() time.Time { return now }

	ctx := context.Background()
	limiter.Allow(ctx, "1.1.1.1")
	limiter.Allow(ctx, "2.2.2.2")
	require.Len(t, limiter.history, 2)

	// Замолчавший клиент не должен занимать память вечно
	now = now.Add(Window + time.Second)
	limiter.Allow(ctx, "1.1.1.1")

	limiter.mu.Lock()
	_, stale := limiter.history["2.2.2.2"]
	keys := len(limiter.history)
	limiter.mu.Unlock()

	assert.False(t, stale)
	assert.Equal(t, 1, keys)
}

func TestMemoryLimiterWindowSlides(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(2)
	limiter.clock = func() time.Time { return now }

	ctx := context.Background()
	limiter.Allow(ctx, "k")
	limiter.Allow(ctx, "k")

	allowed, _ := limiter.Allow(ctx, "k")
	assert.False(t, allowed)

	// Спустя полминуты окно все еще заполнено
	now = now.Add(30 * time.Second)
	allowed, _ = limiter.Allow(ctx, "k")
	assert.False(t, allowed)

	// Первые запросы выпали из окна
	now = now.Add(31 * time.Second)
	allowed, _ = limiter.Allow(ctx, "k")
	assert.True(t, allowed)
}
