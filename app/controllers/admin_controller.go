package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gradsite/modteam/app/repository"
)

// AdminController renders the back office start page.
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repository dependencies
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		repos: repos,
	}
}

// HandleDashboard shows the record counts of every section.
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	newsCount, err := ac.repos.News.Count()
	if err != nil {
		return err
	}
	teamCount, err := ac.repos.Team.Count()
	if err != nil {
		return err
	}
	aboutCount, err := ac.repos.About.Count()
	if err != nil {
		return err
	}

	return renderAdmin(c, "admin/dashboard", fiber.Map{
		"title":       "Панель управления",
		"news_count":  newsCount,
		"team_count":  teamCount,
		"about_count": aboutCount,
	})
}
