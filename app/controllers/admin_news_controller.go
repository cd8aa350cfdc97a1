package controllers

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/media"
	"github.com/gradsite/modteam/internal/pkg/paginator"
	"github.com/gradsite/modteam/internal/pkg/viewmodel"
)

const adminNewsURL = "/admin/news"

var newsColumns = []viewmodel.Column{
	{Field: "title", Label: "Заголовок"},
	{Field: "created_at", Label: "Дата публикации"},
	{Field: "is_published", Label: "Опубликовано"},
}

var publishedOptions = []viewmodel.Option{
	{Value: "", Label: "Все"},
	{Value: "1", Label: "Да"},
	{Value: "0", Label: "Нет"},
}

var dateOptions = []viewmodel.Option{
	{Value: "", Label: "Любая дата"},
	{Value: "today", Label: "Сегодня"},
	{Value: "week", Label: "Последние 7 дней"},
	{Value: "month", Label: "Этот месяц"},
	{Value: "year", Label: "Этот год"},
}

// AdminNewsController handles the news section of the back office
type AdminNewsController struct {
	newsRepo repository.NewsRepository
	uploader *media.Uploader
}

// NewAdminNewsController creates a new admin news controller with repository
func NewAdminNewsController(newsRepo repository.NewsRepository, uploader *media.Uploader) *AdminNewsController {
	return &AdminNewsController{
		newsRepo: newsRepo,
		uploader: uploader,
	}
}

// dateFilterSince maps the date filter onto the earliest publish time it keeps.
func dateFilterSince(value string, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch value {
	case "today":
		return today
	case "week":
		return today.AddDate(0, 0, -7)
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

func newsListQuery(params url.Values, now time.Time) repository.NewsListQuery {
	query := repository.NewsListQuery{
		Search: strings.TrimSpace(params.Get(viewmodel.ParamSearch)),
		Since:  dateFilterSince(params.Get("date"), now),
	}
	switch params.Get("published") {
	case "1":
		published := true
		query.Published = &published
	case "0":
		published := false
		query.Published = &published
	}
	query.OrderBy, query.Desc = viewmodel.ParseOrder(params.Get(viewmodel.ParamOrder))
	return query
}

func requestQuery(c *fiber.Ctx) url.Values {
	params, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return params
}

// HandleAdminNews renders the news changelist
func (anc *AdminNewsController) HandleAdminNews(c *fiber.Ctx) error {
	params := requestQuery(c)
	query := newsListQuery(params, time.Now())

	n := viewmodel.ParsePage(params.Get(viewmodel.ParamPage))
	query.Offset, query.Limit = (n-1)*AdminPerPage, AdminPerPage
	posts, total, err := anc.newsRepo.AdminList(query)
	if err != nil {
		return err
	}

	page := paginator.New(total, AdminPerPage).Page(n)
	if page.Number != n {
		query.Offset = page.Offset()
		if posts, _, err = anc.newsRepo.AdminList(query); err != nil {
			return err
		}
	}

	cl := viewmodel.NewChangelist(adminNewsURL, params, page, newsColumns)
	cl.AddFilter("По статусу", params, "published", publishedOptions)
	cl.AddFilter("По дате публикации", params, "date", dateOptions)

	return renderAdmin(c, "admin/news_list", fiber.Map{
		"title": "Новости",
		"posts": posts,
		"cl":    cl,
	})
}

// HandleAdminNewsBulk saves the publish checkboxes of the changelist
func (anc *AdminNewsController) HandleAdminNewsBulk(c *fiber.Ctx) error {
	values := formValues(c)
	flags := make(map[uint64]bool)
	for _, id := range listIDs(values) {
		flags[id] = len(values[fmt.Sprintf("published_%d", id)]) > 0
	}

	back := backToList(c, adminNewsURL)
	if err := anc.newsRepo.SetPublished(flags); err != nil {
		return redirectWithError(c, back, "Не удалось сохранить изменения: "+err.Error())
	}
	return redirectWithSuccess(c, back, fmt.Sprintf("Изменено новостей: %d", len(flags)))
}

// HandleAdminNewsCreate renders an empty change form
func (anc *AdminNewsController) HandleAdminNewsCreate(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/news_form", fiber.Map{
		"title":  "Добавить новость",
		"post":   models.NewNewsPost(),
		"action": adminNewsURL + "/store",
	})
}

// HandleAdminNewsStore creates a post with its images and links
func (anc *AdminNewsController) HandleAdminNewsStore(c *fiber.Ctx) error {
	createURL := adminNewsURL + "/create"
	values := formValues(c)

	post := models.NewNewsPost()
	if err := bindNewsForm(c, post); err != nil {
		return redirectWithError(c, createURL, err.Error())
	}
	if err := post.Validate(); err != nil {
		return redirectWithError(c, createURL, validationMessage(err))
	}
	links, err := newLinks(values)
	if err != nil {
		return redirectWithError(c, createURL, err.Error())
	}
	post.Links = links

	changes := newMediaChanges(anc.uploader)
	if err := changes.replace(c, "cover", "cover_clear", media.DirNewsCovers, &post.CoverImage); err != nil {
		return redirectWithError(c, createURL, "Обложка: "+err.Error())
	}
	images, err := newImages(c, values, changes)
	if err != nil {
		changes.rollback(c)
		return redirectWithError(c, createURL, "Фотография: "+err.Error())
	}
	post.Images = images

	if err := anc.newsRepo.Create(post); err != nil {
		changes.rollback(c)
		return redirectWithError(c, createURL, saveNewsMessage(post, err))
	}
	changes.commit(c)

	log.Infof("[Admin] Created news post %d (%s)", post.ID, post.Slug)
	editURL := fmt.Sprintf("%s/edit/%d", adminNewsURL, post.ID)
	return redirectWithSuccess(c, afterSave(c, adminNewsURL, editURL, createURL),
		fmt.Sprintf("Новость «%s» добавлена", post.Title))
}

// HandleAdminNewsEdit renders the change form of a post
func (anc *AdminNewsController) HandleAdminNewsEdit(c *fiber.Ctx) error {
	post, err := anc.findPost(c)
	if err != nil {
		return missingRecord(c, adminNewsURL, "Новость не найдена", err)
	}
	return renderAdmin(c, "admin/news_form", fiber.Map{
		"title":  post.Title,
		"post":   post,
		"action": fmt.Sprintf("%s/update/%d", adminNewsURL, post.ID),
	})
}

// HandleAdminNewsUpdate saves a post and the edits of its inline images and links
func (anc *AdminNewsController) HandleAdminNewsUpdate(c *fiber.Ctx) error {
	post, err := anc.findPost(c)
	if err != nil {
		return missingRecord(c, adminNewsURL, "Новость не найдена", err)
	}
	editURL := fmt.Sprintf("%s/edit/%d", adminNewsURL, post.ID)
	values := formValues(c)

	if err := bindNewsForm(c, post); err != nil {
		return redirectWithError(c, editURL, err.Error())
	}
	if err := post.Validate(); err != nil {
		return redirectWithError(c, editURL, validationMessage(err))
	}
	inline, err := inlineChanges(values, post)
	if err != nil {
		return redirectWithError(c, editURL, err.Error())
	}

	changes := newMediaChanges(anc.uploader)
	if err := changes.replace(c, "cover", "cover_clear", media.DirNewsCovers, &post.CoverImage); err != nil {
		return redirectWithError(c, editURL, "Обложка: "+err.Error())
	}
	if inline.NewImages, err = newImages(c, values, changes); err != nil {
		changes.rollback(c)
		return redirectWithError(c, editURL, "Фотография: "+err.Error())
	}
	for _, img := range post.Images {
		if containsID(inline.DeleteImageIDs, img.ID) {
			changes.discard(img.Image)
		}
	}

	if err := anc.newsRepo.Update(post, inline); err != nil {
		changes.rollback(c)
		return redirectWithError(c, editURL, saveNewsMessage(post, err))
	}
	changes.commit(c)

	return redirectWithSuccess(c, afterSave(c, adminNewsURL, editURL, adminNewsURL+"/create"),
		fmt.Sprintf("Новость «%s» изменена", post.Title))
}

// HandleAdminNewsDeleteConfirm asks before a post is deleted
func (anc *AdminNewsController) HandleAdminNewsDeleteConfirm(c *fiber.Ctx) error {
	post, err := anc.findPost(c)
	if err != nil {
		return missingRecord(c, adminNewsURL, "Новость не найдена", err)
	}
	var related []string
	for i := range post.Images {
		related = append(related, post.Images[i].String())
	}
	for i := range post.Links {
		related = append(related, "Ссылка: "+post.Links[i].String())
	}
	return renderAdmin(c, "admin/confirm_delete", fiber.Map{
		"title":   "Удалить новость",
		"object":  post.String(),
		"related": related,
		"action":  fmt.Sprintf("%s/delete/%d", adminNewsURL, post.ID),
		"cancel":  fmt.Sprintf("%s/edit/%d", adminNewsURL, post.ID),
	})
}

// HandleAdminNewsDelete deletes a post with its images and links
func (anc *AdminNewsController) HandleAdminNewsDelete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(adminNewsURL)
	}
	post, err := anc.newsRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return redirectWithError(c, adminNewsURL, "Новость не найдена")
	}
	if err != nil {
		return redirectWithError(c, adminNewsURL, "Не удалось удалить новость: "+err.Error())
	}

	keys := []string{post.CoverImage}
	for _, img := range post.Images {
		keys = append(keys, img.Image)
	}
	anc.uploader.Remove(c.UserContext(), keys...)

	log.Infof("[Admin] Deleted news post %d (%s)", post.ID, post.Slug)
	return redirectWithSuccess(c, adminNewsURL, fmt.Sprintf("Новость «%s» удалена", post.Title))
}

// findPost loads the post named by the id parameter. Malformed ids are reported
// as gorm.ErrRecordNotFound.
func (anc *AdminNewsController) findPost(c *fiber.Ctx) (*models.NewsPost, error) {
	id, ok := paramID(c)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return anc.newsRepo.GetByID(id)
}

// bindNewsForm copies the scalar fields of the change form into post. A blank slug
// is left empty so the repository derives it from the title.
func bindNewsForm(c *fiber.Ctx, post *models.NewsPost) error {
	post.Title = strings.TrimSpace(c.FormValue("title"))
	post.Content = strings.TrimSpace(c.FormValue("content"))
	post.IsPublished = formBool(c, "is_published")

	post.Slug = ""
	if raw := strings.TrimSpace(c.FormValue("slug")); raw != "" {
		post.Slug = models.NormalizeSlug(raw)
		if post.Slug == "" {
			return fmt.Errorf("Некорректный адрес (slug): %q", raw)
		}
	}

	createdAt, err := formTime(c, "created_at", post.CreatedAt)
	if err != nil {
		return errors.New("Некорректная дата публикации")
	}
	post.CreatedAt = createdAt
	return nil
}

// newLinks reads the blank link rows. Rows left completely empty are skipped.
func newLinks(values map[string][]string) ([]models.NewsLink, error) {
	labels, urls := values["new_link_label"], values["new_link_url"]
	n := len(labels)
	if len(urls) > n {
		n = len(urls)
	}

	var links []models.NewsLink
	for i := 0; i < n; i++ {
		link := models.NewsLink{Label: strings.TrimSpace(at(labels, i)), URL: strings.TrimSpace(at(urls, i))}
		if link.Label == "" && link.URL == "" {
			continue
		}
		if err := link.Validate(); err != nil {
			return nil, fmt.Errorf("Ссылка «%s»: %s", link.Label, validationMessage(err))
		}
		links = append(links, link)
	}
	return links, nil
}

// newImages uploads the files of the blank image rows.
func newImages(c *fiber.Ctx, values map[string][]string, changes *mediaChanges) ([]models.NewsImage, error) {
	keys, err := changes.upload(c, "new_image", media.DirNewsGallery)
	if err != nil {
		return nil, err
	}
	captions := values["new_image_caption"]
	images := make([]models.NewsImage, 0, len(keys))
	for i, key := range keys {
		images = append(images, models.NewsImage{Image: key, Caption: strings.TrimSpace(at(captions, i))})
	}
	return images, nil
}

// inlineChanges collects the edits of the existing image and link rows of post.
func inlineChanges(values map[string][]string, post *models.NewsPost) (repository.InlineChanges, error) {
	inline := repository.InlineChanges{ImageCaptions: make(map[uint64]string)}

	deleteImages := formIDs(values, "image_delete_")
	captions := formIDs(values, "image_caption_")
	for _, img := range post.Images {
		if _, ok := deleteImages[img.ID]; ok {
			inline.DeleteImageIDs = append(inline.DeleteImageIDs, img.ID)
			continue
		}
		if caption, ok := captions[img.ID]; ok && strings.TrimSpace(caption) != img.Caption {
			inline.ImageCaptions[img.ID] = strings.TrimSpace(caption)
		}
	}

	deleteLinks := formIDs(values, "link_delete_")
	labels := formIDs(values, "link_label_")
	urls := formIDs(values, "link_url_")
	for _, link := range post.Links {
		if _, ok := deleteLinks[link.ID]; ok {
			inline.DeleteLinkIDs = append(inline.DeleteLinkIDs, link.ID)
			continue
		}
		label, hasLabel := labels[link.ID]
		u, hasURL := urls[link.ID]
		if !hasLabel && !hasURL {
			continue
		}
		updated := link
		if hasLabel {
			updated.Label = strings.TrimSpace(label)
		}
		if hasURL {
			updated.URL = strings.TrimSpace(u)
		}
		if updated.Label == link.Label && updated.URL == link.URL {
			continue
		}
		if err := updated.Validate(); err != nil {
			return inline, fmt.Errorf("Ссылка «%s»: %s", link.Label, validationMessage(err))
		}
		inline.UpdatedLinks = append(inline.UpdatedLinks, updated)
	}

	links, err := newLinks(values)
	if err != nil {
		return inline, err
	}
	inline.NewLinks = links
	return inline, nil
}

func saveNewsMessage(post *models.NewsPost, err error) string {
	if errors.Is(err, repository.ErrSlugTaken) {
		return fmt.Sprintf("Новость с адресом «%s» уже существует", post.Slug)
	}
	return "Не удалось сохранить новость: " + err.Error()
}

func containsID(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
