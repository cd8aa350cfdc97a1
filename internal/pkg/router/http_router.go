package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gradsite/modteam/app/controllers"
	"github.com/gradsite/modteam/internal/pkg/constants"
	"github.com/gradsite/modteam/internal/pkg/metrics"
	"github.com/gradsite/modteam/internal/pkg/middleware"
)

type HttpRouter struct {
	deps Deps
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	metrics.Install(app, constants.PrometheusRoute, middleware.RequireAdmin(h.deps.Admin))
	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter(deps Deps) *HttpRouter {
	return &HttpRouter{deps: deps}
}

func (h HttpRouter) siteController() *controllers.SiteController {
	return controllers.NewSiteController(h.deps.Repos, h.deps.Media)
}
