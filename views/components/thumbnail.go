// Package components contains small templ components shared by the admin pages.
package components

import (
	"context"
	"fmt"
	"html/template"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2/log"
)

// InputTimeLayout is the value format of <input type="datetime-local">.
const InputTimeLayout = "2006-01-02T15:04"

// Placeholder is shown in list columns for records without an image.
const Placeholder = "—"

// Size describes a preview box.
type Size struct {
	Width  int
	Height int
	Round  bool
}

var (
	CoverPreview  = Size{Width: 80, Height: 50}
	AvatarPreview = Size{Width: 40, Height: 40, Round: true}
)

func (s Size) style() string {
	radius := "4px"
	if s.Round {
		radius = "50%"
	}
	return fmt.Sprintf("width:%dpx;height:%dpx;object-fit:cover;border-radius:%s", s.Width, s.Height, radius)
}

// ThumbnailHTML renders Thumbnail for use inside html/template pages.
func ThumbnailHTML(src, alt string, size Size) template.HTML {
	out, err := templ.ToGoHTML(context.Background(), Thumbnail(src, alt, size))
	if err != nil {
		log.Errorf("[Views] Failed to render thumbnail %s: %v", src, err)
		return template.HTML(Placeholder)
	}
	return out
}
