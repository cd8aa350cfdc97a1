package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// (GET /news)
	GetNews(c *fiber.Ctx) error
	// (GET /news/{slug})
	GetNewsBySlug(c *fiber.Ctx, slug string) error
	// (GET /team)
	GetTeam(c *fiber.Ctx) error
	// (GET /about)
	GetAbout(c *fiber.Ctx) error
}

// RegisterHandlers creates the API routes on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/ping", si.GetPing)
	router.Get("/news", si.GetNews)
	router.Get("/news/:slug", func(c *fiber.Ctx) error {
		return si.GetNewsBySlug(c, c.Params("slug"))
	})
	router.Get("/team", si.GetTeam)
	router.Get("/about", si.GetAbout)
}
