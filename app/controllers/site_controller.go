package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/paginator"
	"github.com/gradsite/modteam/internal/pkg/utils"
	"github.com/gradsite/modteam/internal/pkg/viewmodel"
	"github.com/gradsite/modteam/views"
)

const (
	// NewsPerPage is the page size of the public news list.
	NewsPerPage = 9
	// LatestNewsCount is the number of posts on the start page.
	LatestNewsCount = 6
)

// SiteController serves the public pages. It only reads.
type SiteController struct {
	repos *repository.Repositories
	media views.URLResolver
}

func NewSiteController(repos *repository.Repositories, media views.URLResolver) *SiteController {
	return &SiteController{repos: repos, media: media}
}

// aboutPage loads the about row shown in the layout of every page. A failure is
// logged and the page renders without it.
func (sc *SiteController) aboutPage() *models.AboutPage {
	about, err := sc.repos.About.First()
	if err != nil {
		log.Errorf("[Site] Failed to load about page: %v", err)
		return nil
	}
	return about
}

func (sc *SiteController) openGraph(c *fiber.Ctx, title, description, image string) *viewmodel.OpenGraph {
	og := &viewmodel.OpenGraph{
		Title:       title,
		Description: description,
		URL:         c.BaseURL() + c.Path(),
	}
	if image != "" {
		og.Image = sc.media.URL(image)
	}
	return og
}

// HandleIndex renders the start page with the latest published posts.
func (sc *SiteController) HandleIndex(c *fiber.Ctx) error {
	latest, err := sc.repos.News.GetLatestPublished(LatestNewsCount)
	if err != nil {
		return err
	}
	about := sc.aboutPage()

	og := sc.openGraph(c, "Mod Team", "", "")
	if about != nil {
		og = sc.openGraph(c, about.TeamName, about.Tagline, about.Logo)
	}
	return c.Render("site/index", fiber.Map{
		"latest_news": latest,
		"about":       about,
		"og":          og,
	}, views.LayoutMain)
}

// HandleNewsList renders one page of published posts, NewsPerPage per page.
func (sc *SiteController) HandleNewsList(c *fiber.Ctx) error {
	total, err := sc.repos.News.CountPublished()
	if err != nil {
		return err
	}
	page := paginator.New(total, NewsPerPage).GetPage(c.Query("page"))

	posts, err := sc.repos.News.GetPublished(page.Offset(), page.Limit())
	if err != nil {
		return err
	}
	return c.Render("site/news_list", fiber.Map{
		"title":    "Новости",
		"page_obj": page,
		"posts":    posts,
		"about":    sc.aboutPage(),
	}, views.LayoutMain)
}

// HandleNewsDetail renders a published post. Unknown and unpublished slugs are 404.
func (sc *SiteController) HandleNewsDetail(c *fiber.Ctx) error {
	post, err := sc.repos.News.GetPublishedBySlug(c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	return c.Render("site/news_detail", fiber.Map{
		"title": post.Title,
		"post":  post,
		"about": sc.aboutPage(),
		"og":    sc.openGraph(c, post.Title, utils.StripAndTruncate(post.Content, 150), post.CoverImage),
	}, views.LayoutMain)
}

// HandleAbout renders the team description and the roster.
func (sc *SiteController) HandleAbout(c *fiber.Ctx) error {
	members, err := sc.repos.Team.GetAll()
	if err != nil {
		return err
	}
	return c.Render("site/about", fiber.Map{
		"title":   "О команде",
		"about":   sc.aboutPage(),
		"members": members,
	}, views.LayoutMain)
}
