package apiv1

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/controllers"
	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/paginator"
	"github.com/gradsite/modteam/internal/pkg/utils"
)

const excerptLength = 200

// URLResolver turns stored media keys into public URLs.
type URLResolver interface {
	URL(key string) string
}

// APIServer implements the ServerInterface
type APIServer struct {
	repos *repository.Repositories
	media URLResolver
}

// NewAPIServer creates a new API server instance
func NewAPIServer(repos *repository.Repositories, media URLResolver) *APIServer {
	return &APIServer{repos: repos, media: media}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetNews returns one page of published posts, paginated like the news page.
func (s *APIServer) GetNews(c *fiber.Ctx) error {
	total, err := s.repos.News.CountPublished()
	if err != nil {
		return err
	}
	page := paginator.New(total, controllers.NewsPerPage).GetPage(c.Query("page"))
	posts, err := s.repos.News.GetPublished(page.Offset(), page.Limit())
	if err != nil {
		return err
	}

	items := make([]NewsSummary, 0, len(posts))
	for i := range posts {
		items = append(items, s.summary(&posts[i]))
	}
	return c.JSON(NewsPage{
		Items:       items,
		Page:        page.Number,
		NumPages:    page.NumPages,
		Count:       page.Count,
		PerPage:     page.PerPage,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	})
}

// GetNewsBySlug returns a published post with its images and links.
func (s *APIServer) GetNewsBySlug(c *fiber.Ctx, slug string) error {
	post, err := s.repos.News.GetPublishedBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(Error{Error: "news post not found"})
	}
	if err != nil {
		return err
	}

	detail := NewsDetail{
		NewsSummary: s.summary(post),
		Content:     post.Content,
		Images:      make([]NewsImage, 0, len(post.Images)),
		Links:       make([]NewsLink, 0, len(post.Links)),
	}
	for _, img := range post.Images {
		detail.Images = append(detail.Images, NewsImage{URL: s.mediaURL(img.Image), Caption: img.Caption})
	}
	for _, link := range post.Links {
		detail.Links = append(detail.Links, NewsLink{Label: link.Label, URL: link.URL})
	}
	return c.JSON(detail)
}

// GetTeam returns the roster in display order.
func (s *APIServer) GetTeam(c *fiber.Ctx) error {
	members, err := s.repos.Team.GetAll()
	if err != nil {
		return err
	}
	out := make([]TeamMember, 0, len(members))
	for i := range members {
		m := &members[i]
		out = append(out, TeamMember{
			Name:      m.Name,
			Role:      string(m.Role),
			RoleLabel: m.DisplayRole(),
			Avatar:    s.mediaURL(m.Avatar),
			Bio:       m.Bio,
			VKURL:     m.VKURL,
			Discord:   m.Discord,
			GithubURL: m.GithubURL,
		})
	}
	return c.JSON(out)
}

// GetAbout returns the about page, 404 while none exists.
func (s *APIServer) GetAbout(c *fiber.Ctx) error {
	about, err := s.repos.About.First()
	if err != nil {
		return err
	}
	if about == nil {
		return c.Status(fiber.StatusNotFound).JSON(Error{Error: "about page not configured"})
	}
	return c.JSON(About{
		TeamName:      about.TeamName,
		Tagline:       about.Tagline,
		Description:   about.Description,
		Logo:          s.mediaURL(about.Logo),
		FoundedYear:   about.FoundedYear,
		ModsCount:     about.ModsCount,
		MembersCount:  about.MembersCount,
		VKGroup:       about.VKGroup,
		DiscordServer: about.DiscordServer,
		GithubOrg:     about.GithubOrg,
	})
}

func (s *APIServer) summary(post *models.NewsPost) NewsSummary {
	return NewsSummary{
		Title:      post.Title,
		Slug:       post.Slug,
		URL:        post.URL(),
		CoverImage: s.mediaURL(post.CoverImage),
		Excerpt:    utils.StripAndTruncate(post.Content, excerptLength),
		CreatedAt:  post.CreatedAt,
	}
}

func (s *APIServer) mediaURL(key string) string {
	if key == "" {
		return ""
	}
	return s.media.URL(key)
}
