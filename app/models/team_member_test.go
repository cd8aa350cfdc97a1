package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMemberDisplayRole(t *testing.T) {
	m := &TeamMember{Name: "kirill", Role: RoleDeveloper}
	assert.Equal(t, "Разработчик", m.DisplayRole())

	m.CustomRole = "Звукорежиссёр"
	assert.Equal(t, "Звукорежиссёр", m.DisplayRole())

	m.CustomRole = "   "
	assert.Equal(t, "Разработчик", m.DisplayRole())
}

func TestRoleLabels(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.IsValid())
		assert.NotEqual(t, string(r), r.Label())
	}
	assert.Equal(t, "mystery", Role("mystery").Label())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleArtist, ParseRole("artist"))
	assert.Equal(t, RoleTester, ParseRole(" tester "))
	assert.Equal(t, RoleOther, ParseRole(""))
	assert.Equal(t, RoleOther, ParseRole("boss"))
}

func TestTeamMemberValidate(t *testing.T) {
	m := &TeamMember{Name: "anna", Role: RoleWriter, GithubURL: "https://github.com/anna"}
	require.NoError(t, m.Validate())

	m.GithubURL = "not a url"
	assert.Error(t, m.Validate())

	m.GithubURL = ""
	m.Role = "boss"
	assert.Error(t, m.Validate())
}
