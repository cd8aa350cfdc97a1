package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/media"
)

const adminAboutURL = "/admin/about"

// AdminAboutController handles the about page rows
type AdminAboutController struct {
	aboutRepo repository.AboutRepository
	uploader  *media.Uploader
}

func NewAdminAboutController(aboutRepo repository.AboutRepository, uploader *media.Uploader) *AdminAboutController {
	return &AdminAboutController{aboutRepo: aboutRepo, uploader: uploader}
}

// HandleAdminAbout lists the about page rows
func (aac *AdminAboutController) HandleAdminAbout(c *fiber.Ctx) error {
	pages, err := aac.aboutRepo.GetAll()
	if err != nil {
		return err
	}
	return renderAdmin(c, "admin/about_list", fiber.Map{
		"title": "Страница «О команде»",
		"pages": pages,
	})
}

// HandleAdminAboutCreate renders an empty about form
func (aac *AdminAboutController) HandleAdminAboutCreate(c *fiber.Ctx) error {
	return aac.renderForm(c, models.NewAboutPage(), adminAboutURL+"/store")
}

// HandleAdminAboutStore creates an about page row
func (aac *AdminAboutController) HandleAdminAboutStore(c *fiber.Ctx) error {
	createURL := adminAboutURL + "/create"
	page := models.NewAboutPage()
	if err := bindAboutForm(c, page); err != nil {
		return redirectWithError(c, createURL, err.Error())
	}
	if err := page.Validate(); err != nil {
		return redirectWithError(c, createURL, validationMessage(err))
	}

	changes := newMediaChanges(aac.uploader)
	if err := changes.replace(c, "logo", "logo_clear", media.DirAbout, &page.Logo); err != nil {
		return redirectWithError(c, createURL, "Логотип: "+err.Error())
	}
	if err := aac.aboutRepo.Create(page); err != nil {
		changes.rollback(c)
		return redirectWithError(c, createURL, "Не удалось сохранить страницу: "+err.Error())
	}
	changes.commit(c)

	editURL := fmt.Sprintf("%s/edit/%d", adminAboutURL, page.ID)
	return redirectWithSuccess(c, afterSave(c, adminAboutURL, editURL, ""),
		fmt.Sprintf("Страница «%s» добавлена", page.TeamName))
}

// HandleAdminAboutEdit renders the change form of an about row
func (aac *AdminAboutController) HandleAdminAboutEdit(c *fiber.Ctx) error {
	page, err := aac.findPage(c)
	if err != nil {
		return missingRecord(c, adminAboutURL, "Страница не найдена", err)
	}
	return aac.renderForm(c, page, fmt.Sprintf("%s/update/%d", adminAboutURL, page.ID))
}

// HandleAdminAboutUpdate saves an about row
func (aac *AdminAboutController) HandleAdminAboutUpdate(c *fiber.Ctx) error {
	page, err := aac.findPage(c)
	if err != nil {
		return missingRecord(c, adminAboutURL, "Страница не найдена", err)
	}
	editURL := fmt.Sprintf("%s/edit/%d", adminAboutURL, page.ID)

	if err := bindAboutForm(c, page); err != nil {
		return redirectWithError(c, editURL, err.Error())
	}
	if err := page.Validate(); err != nil {
		return redirectWithError(c, editURL, validationMessage(err))
	}

	changes := newMediaChanges(aac.uploader)
	if err := changes.replace(c, "logo", "logo_clear", media.DirAbout, &page.Logo); err != nil {
		return redirectWithError(c, editURL, "Логотип: "+err.Error())
	}
	if err := aac.aboutRepo.Update(page); err != nil {
		changes.rollback(c)
		return redirectWithError(c, editURL, "Не удалось сохранить страницу: "+err.Error())
	}
	changes.commit(c)

	return redirectWithSuccess(c, afterSave(c, adminAboutURL, editURL, ""),
		fmt.Sprintf("Страница «%s» изменена", page.TeamName))
}

// HandleAdminAboutDeleteConfirm asks before an about row is deleted
func (aac *AdminAboutController) HandleAdminAboutDeleteConfirm(c *fiber.Ctx) error {
	page, err := aac.findPage(c)
	if err != nil {
		return missingRecord(c, adminAboutURL, "Страница не найдена", err)
	}
	return renderAdmin(c, "admin/confirm_delete", fiber.Map{
		"title":  "Удалить страницу",
		"object": page.String(),
		"action": fmt.Sprintf("%s/delete/%d", adminAboutURL, page.ID),
		"cancel": fmt.Sprintf("%s/edit/%d", adminAboutURL, page.ID),
	})
}

// HandleAdminAboutDelete deletes an about row
func (aac *AdminAboutController) HandleAdminAboutDelete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(adminAboutURL)
	}
	page, err := aac.aboutRepo.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return redirectWithError(c, adminAboutURL, "Страница не найдена")
	}
	if err != nil {
		return redirectWithError(c, adminAboutURL, "Не удалось удалить страницу: "+err.Error())
	}
	aac.uploader.Remove(c.UserContext(), page.Logo)
	return redirectWithSuccess(c, adminAboutURL, fmt.Sprintf("Страница «%s» удалена", page.TeamName))
}

func (aac *AdminAboutController) findPage(c *fiber.Ctx) (*models.AboutPage, error) {
	id, ok := paramID(c)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return aac.aboutRepo.GetByID(uint(id))
}

func (aac *AdminAboutController) renderForm(c *fiber.Ctx, page *models.AboutPage, action string) error {
	title := "Добавить страницу «О команде»"
	if page.ID != 0 {
		title = page.TeamName
	}
	return renderAdmin(c, "admin/about_form", fiber.Map{
		"title":  title,
		"page":   page,
		"action": action,
	})
}

func bindAboutForm(c *fiber.Ctx, page *models.AboutPage) error {
	page.TeamName = strings.TrimSpace(c.FormValue("team_name"))
	page.Tagline = strings.TrimSpace(c.FormValue("tagline"))
	page.Description = strings.TrimSpace(c.FormValue("description"))
	page.VKGroup = strings.TrimSpace(c.FormValue("vk_group"))
	page.DiscordServer = strings.TrimSpace(c.FormValue("discord_server"))
	page.GithubOrg = strings.TrimSpace(c.FormValue("github_org"))

	page.FoundedYear = nil
	if raw := strings.TrimSpace(c.FormValue("founded_year")); raw != "" {
		year, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("Некорректный год основания: %q", raw)
		}
		y := uint(year)
		page.FoundedYear = &y
	}

	mods, err := formUint(c, "mods_count")
	if err != nil {
		return errors.New("Количество модов должно быть неотрицательным числом")
	}
	members, err := formUint(c, "members_count")
	if err != nil {
		return errors.New("Количество участников должно быть неотрицательным числом")
	}
	page.ModsCount, page.MembersCount = mods, members
	return nil
}
