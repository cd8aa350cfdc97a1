// Package cache holds the optional Redis connection. The site keeps no page cache;
// Redis only backs middleware state (CSRF tokens, rate-limit counters) so that
// several instances can share it.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/gradsite/modteam/internal/pkg/env"
)

var client *redis.Client

// SetupCache connects to Redis when CACHE_HOST is configured. Without it the
// middleware falls back to in-process memory storage.
func SetupCache() *redis.Client {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		log.Info("[Cache] CACHE_HOST not set, using in-memory middleware storage")
		return nil
	}
	port := env.GetEnv("CACHE_PORT", "6379")

	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	pong, err := c.Ping(ctx).Result()
	if err != nil {
		log.Warnf("[Cache] Could not connect to Redis at %s: %v", c.Options().Addr, err)
		_ = c.Close()
		return nil
	}
	log.Infof("[Cache] Connected to Redis: %s", pong)

	client = c
	return client
}

// GetClient returns the Redis client or nil when Redis is not configured.
func GetClient() *redis.Client {
	return client
}

// Ping reports the Redis health; a missing client counts as healthy.
func Ping(ctx context.Context, c *redis.Client) error {
	if c == nil {
		return nil
	}
	return c.Ping(ctx).Err()
}
