// Package seed fills a database with demo content for local development.
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/models"
	"github.com/gradsite/modteam/app/repository"
)

// Options controls how much content a run creates.
type Options struct {
	Posts   int
	Members int
	// MaxDays spreads the creation dates of the posts over this many days.
	MaxDays int
	Clean   bool
}

// Seeder writes generated rows through the repositories, so slugs and
// validation behave exactly as for content entered in the admin.
type Seeder struct {
	db    *gorm.DB
	repos *repository.Repositories
	faker *gofakeit.Faker
	now   time.Time
}

// NewSeeder binds a seeder to db. Equal seeds produce equal content.
func NewSeeder(db *gorm.DB, seed int64) *Seeder {
	return &Seeder{
		db:    db,
		repos: repository.NewRepositories(db),
		faker: gofakeit.New(seed),
		now:   time.Now(),
	}
}

// Run creates the about page, the roster and the news posts.
func (s *Seeder) Run(opts Options) error {
	if opts.Clean {
		if err := s.Clean(); err != nil {
			return err
		}
	}
	if err := s.seedAbout(opts.Members); err != nil {
		return fmt.Errorf("about page: %w", err)
	}
	for i := 0; i < opts.Members; i++ {
		member := s.BuildMember(uint(i))
		if err := member.Validate(); err != nil {
			return fmt.Errorf("team member %d: %w", i+1, err)
		}
		if err := s.repos.Team.Create(member); err != nil {
			return fmt.Errorf("team member %d: %w", i+1, err)
		}
	}
	for i := 0; i < opts.Posts; i++ {
		post := s.BuildPost(opts.MaxDays)
		if err := post.Validate(); err != nil {
			return fmt.Errorf("news post %d: %w", i+1, err)
		}
		if err := s.repos.News.Create(post); err != nil {
			return fmt.Errorf("news post %d: %w", i+1, err)
		}
	}
	log.Infof("[Seed] created %d posts and %d team members", opts.Posts, opts.Members)
	return nil
}

// Clean removes every content row, children first.
func (s *Seeder) Clean() error {
	for _, model := range []interface{}{
		&models.NewsLink{},
		&models.NewsImage{},
		&models.NewsPost{},
		&models.TeamMember{},
		&models.AboutPage{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clean %T: %w", model, err)
		}
	}
	log.Info("[Seed] content tables cleared")
	return nil
}

// BuildPost returns an unsaved post dated within the last maxDays days.
// Roughly one post in ten stays a draft.
func (s *Seeder) BuildPost(maxDays int) *models.NewsPost {
	if maxDays <= 0 {
		maxDays = 90
	}
	f := s.faker
	post := &models.NewsPost{
		Title:       strings.TrimSuffix(f.Sentence(5), "."),
		Content:     f.Paragraph(3, 4, 10, "\n\n"),
		IsPublished: f.Number(0, 9) > 0,
		CreatedAt: s.now.Add(-time.Duration(f.Number(0, maxDays-1))*24*time.Hour -
			time.Duration(f.Number(0, 23))*time.Hour -
			time.Duration(f.Number(0, 59))*time.Minute),
	}
	for i, n := 0, f.Number(0, 2); i < n; i++ {
		post.Links = append(post.Links, models.NewsLink{
			Label: f.Word(),
			URL:   f.URL(),
		})
	}
	return post
}

// BuildMember returns an unsaved roster entry at the given position.
func (s *Seeder) BuildMember(order uint) *models.TeamMember {
	f := s.faker
	username := f.Username()
	member := &models.TeamMember{
		Name:      username,
		Role:      models.Roles[f.Number(0, len(models.Roles)-1)],
		Bio:       f.Sentence(12),
		Discord:   strings.ToLower(username),
		GithubURL: "https://github.com/" + username,
		Order:     order,
	}
	if member.Role == models.RoleOther {
		member.CustomRole = f.JobTitle()
	}
	return member
}

func (s *Seeder) seedAbout(members int) error {
	count, err := s.repos.About.Count()
	if err != nil || count > 0 {
		return err
	}
	f := s.faker
	founded := uint(f.Number(2008, 2020))
	page := &models.AboutPage{
		TeamName:     f.Company(),
		Tagline:      strings.TrimSuffix(f.Sentence(6), "."),
		Description:  f.Paragraph(2, 4, 12, "\n\n"),
		FoundedYear:  &founded,
		ModsCount:    uint(f.Number(1, 30)),
		MembersCount: uint(members),
		GithubOrg:    f.URL(),
	}
	if err := page.Validate(); err != nil {
		return err
	}
	return s.repos.About.Create(page)
}
