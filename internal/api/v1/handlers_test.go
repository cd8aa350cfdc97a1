package apiv1

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/media"
	"github.com/gradsite/modteam/internal/pkg/testdb"
)

func newTestAPI(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(testdb.Open(t))
	app := fiber.New()
	RegisterHandlers(app.Group("/api/v1"), NewAPIServer(repos, media.NewLocalStore(t.TempDir(), "/media")))
	return app, repos
}

func getJSON(t *testing.T, app *fiber.App, target string, out interface{}) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestGetPing(t *testing.T) {
	app, _ := newTestAPI(t)
	var pong Pong
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/v1/ping", &pong))
	assert.Equal(t, "pong", pong.Ping)
}

func TestGetNewsPages(t *testing.T) {
	app, repos := newTestAPI(t)
	base := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	for i := 1; i <= 11; i++ {
		require.NoError(t, repos.News.Create(&models.NewsPost{
			Title: fmt.Sprintf("Post %d", i), Content: "text", CreatedAt: base.Add(time.Duration(i) * time.Hour), IsPublished: true,
		}))
	}
	require.NoError(t, repos.News.Create(&models.NewsPost{Title: "Draft", Content: "text", CreatedAt: base, IsPublished: false}))

	var page NewsPage
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/v1/news", &page))
	assert.Len(t, page.Items, 9)
	assert.EqualValues(t, 11, page.Count)
	assert.Equal(t, 2, page.NumPages)
	assert.True(t, page.HasNext)
	assert.Equal(t, "Post 11", page.Items[0].Title)
	assert.Equal(t, "/news/post-11/", page.Items[0].URL)

	page = NewsPage{}
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/v1/news?page=7", &page))
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasPrevious)
}

func TestGetNewsBySlug(t *testing.T) {
	app, repos := newTestAPI(t)
	require.NoError(t, repos.News.Create(&models.NewsPost{
		Title: "Patch 1.0", Content: "Notes", CreatedAt: time.Now(), IsPublished: true,
		Images: []models.NewsImage{{Image: "news/gallery/a.jpg", Caption: "Карта"}},
		Links:  []models.NewsLink{{Label: "Скачать", URL: "https://example.com/dl"}},
	}))

	var detail NewsDetail
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/v1/news/patch-1-0", &detail))
	assert.Equal(t, "Notes", detail.Content)
	assert.Empty(t, detail.CoverImage)
	require.Len(t, detail.Images, 1)
	assert.Equal(t, "/media/news/gallery/a.jpg", detail.Images[0].URL)
	require.Len(t, detail.Links, 1)
	assert.Equal(t, "Скачать", detail.Links[0].Label)

	var apiErr Error
	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/api/v1/news/missing", &apiErr))
	assert.NotEmpty(t, apiErr.Error)
}

func TestGetTeamAndAbout(t *testing.T) {
	app, repos := newTestAPI(t)

	var apiErr Error
	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/api/v1/about", &apiErr))

	require.NoError(t, repos.Team.Create(&models.TeamMember{Name: "Bob", Role: models.RoleOther, CustomRole: "Композитор", Order: 2}))
	require.NoError(t, repos.Team.Create(&models.TeamMember{Name: "Anna", Role: models.RoleLeader, Order: 1, Avatar: "team/avatars/a.png"}))
	require.NoError(t, repos.About.Create(&models.AboutPage{TeamName: "Gradient", Description: "Мы делаем моды."}))

	var team []TeamMember
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/v1/team", &team))
	require.Len(t, team, 2)
	assert.Equal(t, "Anna", team[0].Name)
	assert.Equal(t, "Руководитель", team[0].RoleLabel)
	assert.Equal(t, "/media/team/avatars/a.png", team[0].Avatar)
	assert.Equal(t, "other", team[1].Role)
	assert.Equal(t, "Композитор", team[1].RoleLabel)

	var about About
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/v1/about", &about))
	assert.Equal(t, "Gradient", about.TeamName)
	assert.Nil(t, about.FoundedYear)
}
