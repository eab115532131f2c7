package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"media-portal/domain/model"
	"media-portal/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "youtube:search:"

// RedisSearchCache shares search results between instances through Redis.
// Expiry is delegated to Redis TTLs; the entry-count bound of SearchCache does not apply.
type RedisSearchCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSearchCache(client redis.Cmdable, ttl time.Duration) *RedisSearchCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisSearchCache{client: client, ttl: ttl}
}

// Get treats any Redis or decoding failure as a miss.
func (c *RedisSearchCache) Get(ctx context.Context, key string) (*model.SearchResult, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().WithField("error", err).Warn("redis search cache get failed")
		}
		return nil, false
	}
	var result model.SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.GetLogger().WithField("error", err).Warn("redis search cache entry undecodable")
		return nil, false
	}
	return &result, true
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, result *model.SearchResult) {
	if c.client == nil || result == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("redis search cache encode failed")
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("redis search cache set failed")
	}
}
