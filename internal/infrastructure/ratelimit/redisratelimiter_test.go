package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "reports:1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "reports:1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "reports:5.6.7.8", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are independent")

	require.NoError(t, limiter.Reset(ctx, "reports:1.2.3.4"))
	allowed, err = limiter.Allow(ctx, "reports:1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_WindowExpires(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "chat:ip", 1, 200*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "chat:ip", 1, 200*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(300 * time.Millisecond)
	allowed, err = limiter.Allow(ctx, "chat:ip", 1, 200*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_ZeroLimitAlwaysAllows(t *testing.T) {
	limiter := NewRedisRateLimiter(nil)
	allowed, err := limiter.Allow(context.Background(), "k", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
