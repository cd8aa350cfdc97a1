package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gradsite/modteam/app/controllers"
	"github.com/gradsite/modteam/internal/pkg/constants"
	"github.com/gradsite/modteam/internal/pkg/media"
)

// mediaMaxAge is the browser cache lifetime of uploaded files, in seconds.
const mediaMaxAge = 604800

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	site := h.siteController()

	// Trailing slashes are optional (StrictRouting is off)
	app.Get(constants.PublicRoute, site.HandleIndex)
	app.Get(constants.NewsRoute, site.HandleNewsList)
	app.Get(constants.NewsRoute+"/:slug", site.HandleNewsDetail)
	app.Get(constants.AboutRoute, site.HandleAbout)

	health := controllers.NewHealthController(h.deps.DB, h.deps.Redis)
	app.Get(constants.HealthRoute, health.HandleHealth)

	// uploads kept on local disk; the s3 backend serves its own URLs
	if local, ok := h.deps.Media.(*media.LocalStore); ok && strings.HasPrefix(local.BaseURL, "/") {
		app.Static(local.BaseURL, local.Root, fiber.Static{
			Compress: false,
			MaxAge:   mediaMaxAge,
		})
	}
}
