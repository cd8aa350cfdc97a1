package controllers

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsite/modteam/app/models"
)

func TestAdminAboutLifecycle(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, adminAboutURL+"/create")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, models.DefaultTeamName)

	resp = env.postMultipart(t, adminAboutURL+"/store", url.Values{
		"team_name":    {"Gradient"},
		"description":  {"Мы делаем моды."},
		"founded_year": {"2019"},
		"mods_count":   {"12"},
		"vk_group":     {"https://vk.com/gradient"},
	}, fileUpload{field: "logo", filename: "logo.png", data: pngImage(t, 120, 120)})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, adminAboutURL, resp.Header.Get(fiber.HeaderLocation))

	page, err := env.repos.About.First()
	require.NoError(t, err)
	require.NotNil(t, page)
	require.NotNil(t, page.FoundedYear)
	assert.EqualValues(t, 2019, *page.FoundedYear)
	assert.EqualValues(t, 12, page.ModsCount)
	assert.NotEmpty(t, page.Logo)
	assert.ElementsMatch(t, withThumbnails(page.Logo), env.storedFiles(t))

	resp = env.postForm(t, fmt.Sprintf("%s/update/%d", adminAboutURL, page.ID), url.Values{
		"team_name":   {"Gradient Team"},
		"description": {"Обновлено."},
		"logo_clear":  {"1"},
	})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	page, err = env.repos.About.GetByID(page.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gradient Team", page.TeamName)
	assert.Nil(t, page.FoundedYear)
	assert.Empty(t, page.Logo)
	assert.Empty(t, env.storedFiles(t))

	_, body = env.get(t, "/")
	assert.Contains(t, body, "<title>Gradient Team</title>")

	resp = env.postForm(t, fmt.Sprintf("%s/delete/%d", adminAboutURL, page.ID), url.Values{})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	count, err := env.repos.About.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAdminAboutStoreValidation(t *testing.T) {
	env := newTestEnv(t)
	for name, form := range map[string]url.Values{
		"missing description": {"team_name": {"Gradient"}},
		"bad year":            {"team_name": {"Gradient"}, "description": {"x"}, "founded_year": {"1800"}},
		"year not a number":   {"team_name": {"Gradient"}, "description": {"x"}, "founded_year": {"MMXIX"}},
		"bad discord url":     {"team_name": {"Gradient"}, "description": {"x"}, "discord_server": {"gradient"}},
	} {
		resp := env.postForm(t, adminAboutURL+"/store", form)
		require.Equal(t, fiber.StatusFound, resp.StatusCode, name)
		assert.Equal(t, adminAboutURL+"/create", resp.Header.Get(fiber.HeaderLocation), name)
	}
	count, err := env.repos.About.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
