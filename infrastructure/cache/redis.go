package cache

import (
	"context"
	"fmt"
	"time"

	"media-portal/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a go-redis client and checks connectivity with a ping.
// The client is returned even when the ping fails so callers can decide to fall back.
func NewRedisClient(ctx context.Context, addr, username, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     username,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.GetLogger().WithField("addr", addr).WithField("error", err).Warn("Redis ping failed")
		return client, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	logger.GetLogger().WithField("addr", addr).Info("Redis client initialized")
	return client, nil
}
