package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/gradsite/modteam/app/controllers"
	"github.com/gradsite/modteam/internal/pkg/constants"
	"github.com/gradsite/modteam/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	requireAdmin := middleware.RequireAdmin(h.deps.Admin)

	// fiber metrics
	app.Get(constants.MetricsRoute, requireAdmin, monitor.New(monitor.Config{Title: "Metrics"}))

	adminGroup := app.Group(constants.AdminRoute, requireAdmin, h.csrfMiddleware())

	admin := controllers.NewAdminController(h.deps.Repos)
	adminGroup.Get("/", admin.HandleDashboard)

	// News management
	news := controllers.NewAdminNewsController(h.deps.Repos.News, h.deps.Uploader)
	adminGroup.Get("/news", news.HandleAdminNews)
	adminGroup.Post("/news/bulk", news.HandleAdminNewsBulk)
	adminGroup.Get("/news/create", news.HandleAdminNewsCreate)
	adminGroup.Post("/news/store", news.HandleAdminNewsStore)
	adminGroup.Get("/news/edit/:id", news.HandleAdminNewsEdit)
	adminGroup.Post("/news/update/:id", news.HandleAdminNewsUpdate)
	adminGroup.Get("/news/delete/:id", news.HandleAdminNewsDeleteConfirm)
	adminGroup.Post("/news/delete/:id", news.HandleAdminNewsDelete)

	// Team roster
	team := controllers.NewAdminTeamController(h.deps.Repos.Team, h.deps.Uploader)
	adminGroup.Get("/team", team.HandleAdminTeam)
	adminGroup.Post("/team/bulk", team.HandleAdminTeamBulk)
	adminGroup.Get("/team/create", team.HandleAdminTeamCreate)
	adminGroup.Post("/team/store", team.HandleAdminTeamStore)
	adminGroup.Get("/team/edit/:id", team.HandleAdminTeamEdit)
	adminGroup.Post("/team/update/:id", team.HandleAdminTeamUpdate)
	adminGroup.Get("/team/delete/:id", team.HandleAdminTeamDeleteConfirm)
	adminGroup.Post("/team/delete/:id", team.HandleAdminTeamDelete)

	// About page
	about := controllers.NewAdminAboutController(h.deps.Repos.About, h.deps.Uploader)
	adminGroup.Get("/about", about.HandleAdminAbout)
	adminGroup.Get("/about/create", about.HandleAdminAboutCreate)
	adminGroup.Post("/about/store", about.HandleAdminAboutStore)
	adminGroup.Get("/about/edit/:id", about.HandleAdminAboutEdit)
	adminGroup.Post("/about/update/:id", about.HandleAdminAboutUpdate)
	adminGroup.Get("/about/delete/:id", about.HandleAdminAboutDeleteConfirm)
	adminGroup.Post("/about/delete/:id", about.HandleAdminAboutDelete)
}
