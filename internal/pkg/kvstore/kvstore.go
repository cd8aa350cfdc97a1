// Package kvstore provides the shared fiber.Storage used by the CSRF and limiter
// middleware.
package kvstore

import (
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	fiberredis "github.com/gofiber/storage/redis"
	"github.com/redis/go-redis/v9"
)

// Databases used on the Redis server, one per middleware.
const (
	CSRFDatabase    = 1
	LimiterDatabase = 2
)

// New returns Redis backed storage reusing the address and credentials of the
// cache client. A nil client yields nil, which makes the middleware fall back to
// its built-in memory storage.
func New(c *redis.Client, database int) fiber.Storage {
	if c == nil {
		return nil
	}

	host, port := splitAddr(c.Options().Addr)
	return fiberredis.New(fiberredis.Config{
		Host:     host,
		Port:     port,
		Password: c.Options().Password,
		Database: database,
		Reset:    false,
	})
}

func splitAddr(addr string) (string, int) {
	host, port := "localhost", 6379
	if h, p, err := net.SplitHostPort(addr); err == nil {
		if h != "" {
			host = h
		}
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}
	return host, port
}
