package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/media"
	"github.com/gradsite/modteam/internal/pkg/middleware"
)

// Router installs a group of routes on the app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// Deps is everything the handlers need.
type Deps struct {
	DB       *gorm.DB
	Repos    *repository.Repositories
	Media    media.Store
	Uploader *media.Uploader
	// Redis is optional; without it the middleware keeps its state in memory.
	Redis *redis.Client
	Admin middleware.AdminCredentials
}

func InstallRouter(app *fiber.App, deps Deps) {
	setup(app, NewHttpRouter(deps), NewApiRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
