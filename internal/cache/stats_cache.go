// Package cache holds the optional Redis layer. Everything here degrades to
// a no-op when Redis is not configured, so the API works without it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bearworld/internal/http-api/dto"

	"github.com/redis/go-redis/v9"
)

const statsKey = "bearworld:stats"

type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache connects to Redis and verifies the connection. addr empty
// returns a nil cache, which every method treats as a miss.
func NewStatsCache(addr, password string, ttl time.Duration) (*StatsCache, error) {
	if addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &StatsCache{client: rdb, ttl: ttl}, nil
}

// GetStats returns the cached site stats, or (nil, nil) on a miss.
func (c *StatsCache) GetStats(ctx context.Context) (*dto.SiteStats, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, statsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats dto.SiteStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) SetStats(ctx context.Context, stats *dto.SiteStats) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}

// Invalidate drops the cached stats; called after writes that change counts.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, statsKey).Err()
}

func (c *StatsCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
