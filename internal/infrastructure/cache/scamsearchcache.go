package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
)

const scamSearchPrefix = "scamguard:search:"

// ScamSearchCache keeps upstream search envelopes for a short TTL.
type ScamSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScamSearchCache(client *redis.Client, ttl time.Duration) *ScamSearchCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ScamSearchCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a miss.
func (c *ScamSearchCache) Get(ctx context.Context, keyword, searchType string) (*scamclient.SearchResponse, error) {
	data, err := c.client.Get(ctx, c.key(keyword, searchType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read search cache: %w", err)
	}

	var resp scamclient.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode cached search: %w", err)
	}
	return &resp, nil
}

func (c *ScamSearchCache) Set(ctx context.Context, keyword, searchType string, resp *scamclient.SearchResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode search result: %w", err)
	}
	if err := c.client.Set(ctx, c.key(keyword, searchType), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write search cache: %w", err)
	}
	return nil
}

// Clear deletes cached searches and returns how many keys were removed.
func (c *ScamSearchCache) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	iter := c.client.Scan(ctx, 0, scamSearchPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
		deleted += n
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to scan keys: %w", err)
	}
	return deleted, nil
}

func (c *ScamSearchCache) key(keyword, searchType string) string {
	if searchType == "" {
		searchType = scamclient.SourceAll
	}
	return scamSearchPrefix + searchType + ":" + strings.ToLower(strings.TrimSpace(keyword))
}
