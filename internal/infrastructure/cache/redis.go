package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sharedConfig "github.com/scamguard-vn/scamguard/internal/shared/config"
)

const pingTimeout = 3 * time.Second

// NewRedisClient connects and pings. Callers treat an error as "run without redis".
func NewRedisClient(ctx context.Context, cfg sharedConfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	return client, nil
}
