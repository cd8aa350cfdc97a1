package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNewsPostDefaults(t *testing.T) {
	p := NewNewsPost()
	assert.True(t, p.IsPublished)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewsPostURL(t *testing.T) {
	p := &NewsPost{Slug: "patch-1-0"}
	assert.Equal(t, "/news/patch-1-0/", p.URL())
}

func TestNewsPostValidate(t *testing.T) {
	p := &NewsPost{Title: "Patch 1.0", Content: "notes"}
	require.NoError(t, p.Validate())

	p.Content = ""
	assert.Error(t, p.Validate())
}

func TestNewsImageString(t *testing.T) {
	img := &NewsImage{PostID: 7, Image: "news/gallery/a.png"}
	assert.Equal(t, "Фото к новости #7", img.String())

	post := &NewsPost{Title: "Patch 1.0", Images: []NewsImage{*img}}
	require.NoError(t, post.AfterFind(nil))
	assert.Equal(t, "Фото к «Patch 1.0»", post.Images[0].String())
	require.NoError(t, post.Images[0].Validate())
}

func TestNewsLinkValidate(t *testing.T) {
	l := &NewsLink{Label: "Download", URL: "https://example.com/mod.zip"}
	require.NoError(t, l.Validate())

	l.URL = "example"
	assert.Error(t, l.Validate())

	l.URL = "https://example.com"
	l.Label = ""
	assert.Error(t, l.Validate())
}

func TestAboutPageValidate(t *testing.T) {
	a := NewAboutPage()
	a.Description = "We make mods."
	require.NoError(t, a.Validate())

	year := uint(1800)
	a.FoundedYear = &year
	assert.Error(t, a.Validate())

	a.FoundedYear = nil
	a.VKGroup = "vk"
	assert.Error(t, a.Validate())
}
