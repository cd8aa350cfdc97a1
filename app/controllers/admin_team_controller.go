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
	"github.com/gradsite/modteam/internal/pkg/paginator"
	"github.com/gradsite/modteam/internal/pkg/viewmodel"
)

const adminTeamURL = "/admin/team"

var teamColumns = []viewmodel.Column{
	{Field: "name", Label: "Имя / ник"},
	{Field: "role", Label: "Роль"},
	{Field: "order", Label: "Порядок"},
}

// AdminTeamController handles the roster section of the back office
type AdminTeamController struct {
	teamRepo repository.TeamRepository
	uploader *media.Uploader
}

func NewAdminTeamController(teamRepo repository.TeamRepository, uploader *media.Uploader) *AdminTeamController {
	return &AdminTeamController{teamRepo: teamRepo, uploader: uploader}
}

// HandleAdminTeam renders the roster changelist
func (atc *AdminTeamController) HandleAdminTeam(c *fiber.Ctx) error {
	params := requestQuery(c)
	query := repository.TeamListQuery{Search: strings.TrimSpace(params.Get(viewmodel.ParamSearch))}
	query.OrderBy, query.Desc = viewmodel.ParseOrder(params.Get(viewmodel.ParamOrder))

	n := viewmodel.ParsePage(params.Get(viewmodel.ParamPage))
	query.Offset, query.Limit = (n-1)*AdminPerPage, AdminPerPage
	members, total, err := atc.teamRepo.AdminList(query)
	if err != nil {
		return err
	}

	page := paginator.New(total, AdminPerPage).Page(n)
	if page.Number != n {
		query.Offset = page.Offset()
		if members, _, err = atc.teamRepo.AdminList(query); err != nil {
			return err
		}
	}

	return renderAdmin(c, "admin/team_list", fiber.Map{
		"title":   "Участники команды",
		"members": members,
		"cl":      viewmodel.NewChangelist(adminTeamURL, params, page, teamColumns),
	})
}

// HandleAdminTeamBulk saves the order column of the changelist
func (atc *AdminTeamController) HandleAdminTeamBulk(c *fiber.Ctx) error {
	values := formValues(c)
	back := backToList(c, adminTeamURL)

	orders := make(map[uint64]uint)
	for _, id := range listIDs(values) {
		raw := strings.TrimSpace(at(values[fmt.Sprintf("order_%d", id)], 0))
		if raw == "" {
			continue
		}
		order, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return redirectWithError(c, back, fmt.Sprintf("Некорректный порядок: %q", raw))
		}
		orders[id] = uint(order)
	}

	if err := atc.teamRepo.SetOrder(orders); err != nil {
		return redirectWithError(c, back, "Не удалось сохранить изменения: "+err.Error())
	}
	return redirectWithSuccess(c, back, fmt.Sprintf("Изменено участников: %d", len(orders)))
}

// HandleAdminTeamCreate renders an empty member form
func (atc *AdminTeamController) HandleAdminTeamCreate(c *fiber.Ctx) error {
	return atc.renderForm(c, &models.TeamMember{Role: models.RoleOther}, adminTeamURL+"/store")
}

// HandleAdminTeamStore creates a team member
func (atc *AdminTeamController) HandleAdminTeamStore(c *fiber.Ctx) error {
	createURL := adminTeamURL + "/create"
	member := &models.TeamMember{}
	if err := bindMemberForm(c, member); err != nil {
		return redirectWithError(c, createURL, err.Error())
	}
	if err := member.Validate(); err != nil {
		return redirectWithError(c, createURL, validationMessage(err))
	}

	changes := newMediaChanges(atc.uploader)
	if err := changes.replace(c, "avatar", "avatar_clear", media.DirTeamAvatars, &member.Avatar); err != nil {
		return redirectWithError(c, createURL, "Аватар: "+err.Error())
	}
	if err := atc.teamRepo.Create(member); err != nil {
		changes.rollback(c)
		return redirectWithError(c, createURL, "Не удалось сохранить участника: "+err.Error())
	}
	changes.commit(c)

	editURL := fmt.Sprintf("%s/edit/%d", adminTeamURL, member.ID)
	return redirectWithSuccess(c, afterSave(c, adminTeamURL, editURL, createURL),
		fmt.Sprintf("Участник «%s» добавлен", member.Name))
}

// HandleAdminTeamEdit renders the member change form
func (atc *AdminTeamController) HandleAdminTeamEdit(c *fiber.Ctx) error {
	member, err := atc.findMember(c)
	if err != nil {
		return missingRecord(c, adminTeamURL, "Участник не найден", err)
	}
	return atc.renderForm(c, member, fmt.Sprintf("%s/update/%d", adminTeamURL, member.ID))
}

// HandleAdminTeamUpdate saves a team member
func (atc *AdminTeamController) HandleAdminTeamUpdate(c *fiber.Ctx) error {
	member, err := atc.findMember(c)
	if err != nil {
		return missingRecord(c, adminTeamURL, "Участник не найден", err)
	}
	editURL := fmt.Sprintf("%s/edit/%d", adminTeamURL, member.ID)

	if err := bindMemberForm(c, member); err != nil {
		return redirectWithError(c, editURL, err.Error())
	}
	if err := member.Validate(); err != nil {
		return redirectWithError(c, editURL, validationMessage(err))
	}

	changes := newMediaChanges(atc.uploader)
	if err := changes.replace(c, "avatar", "avatar_clear", media.DirTeamAvatars, &member.Avatar); err != nil {
		return redirectWithError(c, editURL, "Аватар: "+err.Error())
	}
	if err := atc.teamRepo.Update(member); err != nil {
		changes.rollback(c)
		return redirectWithError(c, editURL, "Не удалось сохранить участника: "+err.Error())
	}
	changes.commit(c)

	return redirectWithSuccess(c, afterSave(c, adminTeamURL, editURL, ""),
		fmt.Sprintf("Участник «%s» изменён", member.Name))
}

// HandleAdminTeamDeleteConfirm asks before a member is deleted
func (atc *AdminTeamController) HandleAdminTeamDeleteConfirm(c *fiber.Ctx) error {
	member, err := atc.findMember(c)
	if err != nil {
		return missingRecord(c, adminTeamURL, "Участник не найден", err)
	}
	return renderAdmin(c, "admin/confirm_delete", fiber.Map{
		"title":  "Удалить участника",
		"object": member.String(),
		"action": fmt.Sprintf("%s/delete/%d", adminTeamURL, member.ID),
		"cancel": fmt.Sprintf("%s/edit/%d", adminTeamURL, member.ID),
	})
}

// HandleAdminTeamDelete deletes a team member
func (atc *AdminTeamController) HandleAdminTeamDelete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(adminTeamURL)
	}
	member, err := atc.teamRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return redirectWithError(c, adminTeamURL, "Участник не найден")
	}
	if err != nil {
		return redirectWithError(c, adminTeamURL, "Не удалось удалить участника: "+err.Error())
	}
	atc.uploader.Remove(c.UserContext(), member.Avatar)
	return redirectWithSuccess(c, adminTeamURL, fmt.Sprintf("Участник «%s» удалён", member.Name))
}

func (atc *AdminTeamController) findMember(c *fiber.Ctx) (*models.TeamMember, error) {
	id, ok := paramID(c)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return atc.teamRepo.GetByID(id)
}

func (atc *AdminTeamController) renderForm(c *fiber.Ctx, member *models.TeamMember, action string) error {
	title := "Добавить участника"
	if member.ID != 0 {
		title = member.Name
	}
	return renderAdmin(c, "admin/team_form", fiber.Map{
		"title":  title,
		"member": member,
		"roles":  models.Roles,
		"action": action,
	})
}

func bindMemberForm(c *fiber.Ctx, member *models.TeamMember) error {
	member.Name = strings.TrimSpace(c.FormValue("name"))
	member.Role = models.ParseRole(c.FormValue("role"))
	member.CustomRole = strings.TrimSpace(c.FormValue("custom_role"))
	member.Bio = strings.TrimSpace(c.FormValue("bio"))
	member.VKURL = strings.TrimSpace(c.FormValue("vk_url"))
	member.Discord = strings.TrimSpace(c.FormValue("discord"))
	member.GithubURL = strings.TrimSpace(c.FormValue("github_url"))

	order, err := formUint(c, "order")
	if err != nil {
		return errors.New("Порядок должен быть неотрицательным числом")
	}
	member.Order = order
	return nil
}
