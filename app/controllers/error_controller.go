package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/gradsite/modteam/internal/pkg/constants"
	"github.com/gradsite/modteam/views"
)

// ErrorHandler renders the error pages. API requests get JSON instead.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Errorf("[HTTP] %s %s: %v", c.Method(), c.Path(), err)
	}

	if strings.HasPrefix(c.Path(), constants.APIRoute+"/") {
		message := statusMessage(code)
		if fe != nil && code < fiber.StatusInternalServerError {
			message = fe.Message
		}
		return c.Status(code).JSON(fiber.Map{"error": message})
	}

	page := "errors/500"
	if code == fiber.StatusNotFound {
		page = "errors/404"
	} else if code < fiber.StatusInternalServerError {
		// other client errors only need the status line
		return c.Status(code).SendString(err.Error())
	}

	c.Status(code)
	if renderErr := c.Render(page, fiber.Map{"title": statusMessage(code)}, views.LayoutMain); renderErr != nil {
		log.Errorf("[HTTP] Failed to render error page: %v", renderErr)
		return c.Status(code).SendString(statusMessage(code))
	}
	return nil
}

func statusMessage(code int) string {
	if msg := utils.StatusMessage(code); msg != "" {
		return msg
	}
	return "Error"
}
