package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/internal/pkg/testdb"
)

func TestRunCreatesContent(t *testing.T) {
	db := testdb.Open(t)
	s := NewSeeder(db, 42)

	require.NoError(t, s.Run(Options{Posts: 15, Members: 5, MaxDays: 30}))

	var posts []models.NewsPost
	require.NoError(t, db.Find(&posts).Error)
	assert.Len(t, posts, 15)
	slugs := map[string]bool{}
	for _, p := range posts {
		assert.NotEmpty(t, p.Slug)
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		slugs[p.Slug] = true
		assert.WithinDuration(t, time.Now(), p.CreatedAt, 31*24*time.Hour)
	}

	var members []models.TeamMember
	require.NoError(t, db.Order("sort_order").Find(&members).Error)
	require.Len(t, members, 5)
	for i, m := range members {
		assert.Equal(t, uint(i), m.Order)
		assert.True(t, m.Role.IsValid())
	}

	var about []models.AboutPage
	require.NoError(t, db.Find(&about).Error)
	require.Len(t, about, 1)
	assert.Equal(t, uint(5), about[0].MembersCount)
}

func TestRunKeepsExistingAboutPage(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, db.Create(&models.AboutPage{TeamName: "Ours", Description: "Kept"}).Error)

	require.NoError(t, NewSeeder(db, 1).Run(Options{Posts: 1}))

	var about []models.AboutPage
	require.NoError(t, db.Find(&about).Error)
	require.Len(t, about, 1)
	assert.Equal(t, "Ours", about[0].TeamName)
}

func TestCleanEmptiesTables(t *testing.T) {
	db := testdb.Open(t)
	s := NewSeeder(db, 7)
	require.NoError(t, s.Run(Options{Posts: 4, Members: 2}))
	require.NoError(t, s.Run(Options{Posts: 3, Members: 1, Clean: true}))

	var posts, members, pages int64
	require.NoError(t, db.Model(&models.NewsPost{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.TeamMember{}).Count(&members).Error)
	require.NoError(t, db.Model(&models.AboutPage{}).Count(&pages).Error)
	assert.Equal(t, int64(3), posts)
	assert.Equal(t, int64(1), members)
	assert.Equal(t, int64(1), pages)
}

func TestSameSeedBuildsSamePost(t *testing.T) {
	db := testdb.Open(t)
	a := NewSeeder(db, 99).BuildPost(10)
	b := NewSeeder(db, 99).BuildPost(10)
	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, a.Content, b.Content)
	assert.Len(t, b.Links, len(a.Links))
}
