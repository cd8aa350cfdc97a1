package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/internal/pkg/cache"
	"github.com/gradsite/modteam/internal/pkg/database"
)

const healthTimeout = 2 * time.Second

// HealthController reports whether the backing services answer.
type HealthController struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthController takes the optional Redis client; nil means Redis is not used.
func NewHealthController(db *gorm.DB, redisClient *redis.Client) *HealthController {
	return &HealthController{db: db, redis: redisClient}
}

// HandleHealth answers 200 when every configured dependency is reachable, 503 otherwise.
func (hc *HealthController) HandleHealth(c *fiber.Ctx) error {
	status := fiber.StatusOK
	result := fiber.Map{"status": "ok", "database": "ok", "cache": "disabled"}

	if err := database.Ping(hc.db); err != nil {
		log.Errorf("[Health] Database check failed: %v", err)
		status = fiber.StatusServiceUnavailable
		result["status"], result["database"] = "error", err.Error()
	}

	if hc.redis != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := cache.Ping(ctx, hc.redis); err != nil {
			log.Errorf("[Health] Cache check failed: %v", err)
			status = fiber.StatusServiceUnavailable
			result["status"], result["cache"] = "error", err.Error()
		} else {
			result["cache"] = "ok"
		}
	}

	return c.Status(status).JSON(result)
}
