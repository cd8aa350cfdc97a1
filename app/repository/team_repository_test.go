package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/internal/pkg/testdb"
)

func TestTeamGetAllOrdersByOrderThenName(t *testing.T) {
	repo := NewTeamRepository(testdb.Open(t))

	for _, m := range []models.TeamMember{
		{Name: "Zoe", Role: models.RoleArtist, Order: 1},
		{Name: "Bob", Role: models.RoleDeveloper, Order: 2},
		{Name: "Anna", Role: models.RoleLeader, Order: 1},
		{Name: "Max", Role: models.RoleTester, Order: 0},
	} {
		m := m
		require.NoError(t, repo.Create(&m))
	}

	members, err := repo.GetAll()
	require.NoError(t, err)
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"Max", "Anna", "Zoe", "Bob"}, names)
}

func TestTeamCreateDefaultsRole(t *testing.T) {
	repo := NewTeamRepository(testdb.Open(t))

	m := &models.TeamMember{Name: "Nobody"}
	require.NoError(t, repo.Create(m))

	got, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOther, got.Role)
	assert.Equal(t, "Другое", got.DisplayRole())
}

func TestTeamAdminListAndSetOrder(t *testing.T) {
	repo := NewTeamRepository(testdb.Open(t))

	a := &models.TeamMember{Name: "Alice", Role: models.RoleWriter}
	b := &models.TeamMember{Name: "Bruno", Role: models.RoleArtist}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	members, total, err := repo.AdminList(TeamListQuery{Search: "bru"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Bruno", members[0].Name)

	require.NoError(t, repo.SetOrder(map[uint64]uint{a.ID: 5, b.ID: 1}))
	members, err = repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "Bruno", members[0].Name)

	members, _, err = repo.AdminList(TeamListQuery{OrderBy: "name", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, "Bruno", members[0].Name)
}

func TestTeamDelete(t *testing.T) {
	repo := NewTeamRepository(testdb.Open(t))

	m := &models.TeamMember{Name: "Gone", Avatar: "team/avatars/x.png"}
	require.NoError(t, repo.Create(m))

	deleted, err := repo.Delete(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "team/avatars/x.png", deleted.Avatar)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
