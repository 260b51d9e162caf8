package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stacygol/bloglist/internal/model"
)

// StatsCacheKey holds the JSON encoded blog stats snapshot.
const StatsCacheKey = "bloglist:blog_stats"

// StatsCache stores the blog stats snapshot in Redis. A nil client makes
// every read a miss and every write a no-op.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached snapshot, or nil without an error on a miss.
func (c *StatsCache) Get(ctx context.Context) (*model.BlogStats, error) {
	if c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, StatsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read blog stats cache: %w", err)
	}

	var stats model.BlogStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode blog stats cache: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *model.BlogStats, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode blog stats: %w", err)
	}

	if err := c.client.Set(ctx, StatsCacheKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("write blog stats cache: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot so the next read recomputes it.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, StatsCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate blog stats cache: %w", err)
	}
	return nil
}
