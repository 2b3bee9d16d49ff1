package ratelimit

import (
	"context"
	"time"
)

// RateLimiter admits at most limit requests per key in a sliding window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}
