package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/gradsite/modteam/internal/api/v1"
	"github.com/gradsite/modteam/internal/pkg/constants"
	"github.com/gradsite/modteam/internal/pkg/kvstore"
)

// API rate limit per client IP.
const (
	apiRateLimit  = 60
	apiRateWindow = time.Minute
)

type ApiRouter struct {
	deps Deps
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, cors.New(cors.Config{AllowMethods: "GET,HEAD,OPTIONS"}), limiter.New(limiter.Config{
		Max:        apiRateLimit,
		Expiration: apiRateWindow,
		Storage:    kvstore.New(h.deps.Redis, kvstore.LimiterDatabase),
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer(h.deps.Repos, h.deps.Media)
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter(deps Deps) *ApiRouter {
	return &ApiRouter{deps: deps}
}
