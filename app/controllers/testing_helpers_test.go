package controllers

import (
	"bytes"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/imageprocessor"
	"github.com/gradsite/modteam/internal/pkg/media"
	"github.com/gradsite/modteam/internal/pkg/testdb"
	"github.com/gradsite/modteam/internal/pkg/upload"
	"github.com/gradsite/modteam/views"
)

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	repos *repository.Repositories
	store *media.LocalStore
}

// newTestEnv wires the controllers on a fresh database and media directory. The
// admin routes are mounted without the auth and csrf middleware.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testdb.Open(t)
	repos := repository.NewRepositories(db)
	store := media.NewLocalStore(t.TempDir(), "/media")
	uploader := &media.Uploader{Store: store, MaxDimension: 200, MaxUploadBytes: upload.DefaultMaxUploadBytes}

	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(store),
		ErrorHandler: ErrorHandler,
	})

	site := NewSiteController(repos, store)
	app.Get("/", site.HandleIndex)
	app.Get("/news", site.HandleNewsList)
	app.Get("/news/:slug", site.HandleNewsDetail)
	app.Get("/about", site.HandleAbout)

	admin := NewAdminController(repos)
	app.Get("/admin", admin.HandleDashboard)

	news := NewAdminNewsController(repos.News, uploader)
	app.Get("/admin/news", news.HandleAdminNews)
	app.Post("/admin/news/bulk", news.HandleAdminNewsBulk)
	app.Get("/admin/news/create", news.HandleAdminNewsCreate)
	app.Post("/admin/news/store", news.HandleAdminNewsStore)
	app.Get("/admin/news/edit/:id", news.HandleAdminNewsEdit)
	app.Post("/admin/news/update/:id", news.HandleAdminNewsUpdate)
	app.Get("/admin/news/delete/:id", news.HandleAdminNewsDeleteConfirm)
	app.Post("/admin/news/delete/:id", news.HandleAdminNewsDelete)

	team := NewAdminTeamController(repos.Team, uploader)
	app.Get("/admin/team", team.HandleAdminTeam)
	app.Post("/admin/team/bulk", team.HandleAdminTeamBulk)
	app.Get("/admin/team/create", team.HandleAdminTeamCreate)
	app.Post("/admin/team/store", team.HandleAdminTeamStore)
	app.Get("/admin/team/edit/:id", team.HandleAdminTeamEdit)
	app.Post("/admin/team/update/:id", team.HandleAdminTeamUpdate)
	app.Get("/admin/team/delete/:id", team.HandleAdminTeamDeleteConfirm)
	app.Post("/admin/team/delete/:id", team.HandleAdminTeamDelete)

	about := NewAdminAboutController(repos.About, uploader)
	app.Get("/admin/about", about.HandleAdminAbout)
	app.Get("/admin/about/create", about.HandleAdminAboutCreate)
	app.Post("/admin/about/store", about.HandleAdminAboutStore)
	app.Get("/admin/about/edit/:id", about.HandleAdminAboutEdit)
	app.Post("/admin/about/update/:id", about.HandleAdminAboutUpdate)
	app.Get("/admin/about/delete/:id", about.HandleAdminAboutDeleteConfirm)
	app.Post("/admin/about/delete/:id", about.HandleAdminAboutDelete)

	app.Get("/boom", func(c *fiber.Ctx) error { return io.ErrUnexpectedEOF })
	app.Get("/api/v1/boom", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	return &testEnv{app: app, db: db, repos: repos, store: store}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *testEnv) get(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	return e.do(t, httptest.NewRequest(fiber.MethodGet, target, nil))
}

func (e *testEnv) postForm(t *testing.T, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, _ := e.do(t, req)
	return resp
}

type fileUpload struct {
	field    string
	filename string
	data     []byte
}

func (e *testEnv) postMultipart(t *testing.T, target string, form url.Values, files ...fileUpload) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, vals := range form {
		for _, v := range vals {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, _ := e.do(t, req)
	return resp
}

// storedFiles lists the keys of every file in the media directory.
func (e *testEnv) storedFiles(t *testing.T) []string {
	t.Helper()
	var keys []string
	err := filepath.Walk(e.store.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(e.store.Root, path)
			keys = append(keys, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return keys
}

// withThumbnails adds the generated WebP variants to the given media keys.
func withThumbnails(keys ...string) []string {
	all := append([]string(nil), keys...)
	for _, key := range keys {
		for _, v := range imageprocessor.Variants {
			if thumbKey, ok := imageprocessor.ThumbnailKey(key, v); ok {
				all = append(all, thumbKey)
			}
		}
	}
	return all
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(w, h, color.NRGBA{G: 120, B: 200, A: 255}), imaging.PNG))
	return buf.Bytes()
}
