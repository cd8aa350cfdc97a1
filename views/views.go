// Package views holds the page templates, rendered through the gofiber html engine.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"

	"github.com/gradsite/modteam/internal/pkg/imageprocessor"
	"github.com/gradsite/modteam/internal/pkg/utils"
	"github.com/gradsite/modteam/views/components"
)

//go:embed layouts partials site errors admin
var FS embed.FS

// Layouts passed to fiber.Ctx.Render.
const (
	LayoutMain  = "layouts/main"
	LayoutAdmin = "layouts/admin"
)

// URLResolver turns a stored media key into a public URL.
type URLResolver interface {
	URL(key string) string
}

// NewEngine creates the template engine with the helpers every page relies on.
func NewEngine(media URLResolver) *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFuncMap(Funcs(media))
	return engine
}

// Funcs returns the template helpers.
func Funcs(media URLResolver) template.FuncMap {
	mediaURL := func(key string) string {
		if key == "" {
			return ""
		}
		return media.URL(key)
	}
	// images uploaded as AVIF have no variants and fall back to the original
	thumbURL := func(key string, v imageprocessor.Variant) string {
		if thumbKey, ok := imageprocessor.ThumbnailKey(key, v); ok {
			return mediaURL(thumbKey)
		}
		return mediaURL(key)
	}
	return template.FuncMap{
		"media": mediaURL,
		"thumb": func(key string) string {
			return thumbURL(key, imageprocessor.MediumThumbnail)
		},
		"smallthumb": func(key string) string {
			return thumbURL(key, imageprocessor.SmallThumbnail)
		},
		"linebreaks": utils.FormatBody,
		"excerpt":    utils.StripAndTruncate,
		"date": func(t time.Time) string {
			return t.Format("02.01.2006")
		},
		"datetime": func(t time.Time) string {
			return t.Format("02.01.2006 15:04")
		},
		"iso": func(t time.Time) string {
			return t.Format(time.RFC3339)
		},
		"inputtime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(components.InputTimeLayout)
		},
		"coverthumb": func(key, alt string) template.HTML {
			return components.ThumbnailHTML(thumbURL(key, imageprocessor.SmallThumbnail), alt, components.CoverPreview)
		},
		"avatarthumb": func(key, alt string) template.HTML {
			return components.ThumbnailHTML(thumbURL(key, imageprocessor.SmallThumbnail), alt, components.AvatarPreview)
		},
		"year": func() int {
			return time.Now().Year()
		},
	}
}
