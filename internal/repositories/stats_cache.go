package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookclubhq/bookclub-server/internal/logger"
)

// StatsCache caches serialized stats payloads in Redis so repeated global
// and trending queries skip the aggregation pipelines.
type StatsCache struct {
	rdb *redis.Client
}

func NewStatsCache(rdb *redis.Client) *StatsCache {
	return &StatsCache{rdb: rdb}
}

// Get unmarshals the cached value into dest. Reports false on a miss.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("stats cache get failed", "key", key, "err", err)
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the value under key with the given TTL.
func (c *StatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.Errorw("stats cache set failed", "key", key, "err", err)
		return err
	}
	return nil
}
