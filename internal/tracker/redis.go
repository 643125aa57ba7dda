package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	termsKey       = "jobs:search:terms"
	historyKeyFmt  = "jobs:search:history:%d"
	historyMaxSize = 100
)

// RedisTracker keeps a global term-frequency sorted set plus a bounded
// per-user history list.
type RedisTracker struct {
	client *redis.Client
}

// NewRedisTracker parses redisURL and verifies connectivity.
func NewRedisTracker(ctx context.Context, redisURL string) (*RedisTracker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisTracker{client: client}, nil
}

func (t *RedisTracker) Record(ctx context.Context, userID uint, term string) error {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	historyKey := fmt.Sprintf(historyKeyFmt, userID)
	pipe := t.client.Pipeline()
	pipe.ZIncrBy(ctx, termsKey, 1, term)
	pipe.LPush(ctx, historyKey, term)
	pipe.LTrim(ctx, historyKey, 0, historyMaxSize-1)
	_, err := pipe.Exec(ctx)
	return err
}

func (t *RedisTracker) Close() error {
	return t.client.Close()
}
