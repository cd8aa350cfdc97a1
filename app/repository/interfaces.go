package repository

import (
	"errors"
	"time"

	"github.com/gradsite/modteam/app/models"
	"gorm.io/gorm"
)

// ErrSlugTaken is returned when an explicitly chosen slug is already used by another post.
var ErrSlugTaken = errors.New("slug already in use")

// NewsRepository defines the interface for news-related operations
type NewsRepository interface {
	Create(post *models.NewsPost) error
	GetByID(id uint64) (*models.NewsPost, error)
	GetPublishedBySlug(slug string) (*models.NewsPost, error)
	GetLatestPublished(limit int) ([]models.NewsPost, error)
	GetPublished(offset, limit int) ([]models.NewsPost, error)
	CountPublished() (int64, error)
	AdminList(query NewsListQuery) ([]models.NewsPost, int64, error)
	Update(post *models.NewsPost, inline InlineChanges) error
	SetPublished(flags map[uint64]bool) error
	Delete(id uint64) (*models.NewsPost, error)
	Count() (int64, error)
}

// TeamRepository defines the interface for roster operations
type TeamRepository interface {
	Create(member *models.TeamMember) error
	GetByID(id uint64) (*models.TeamMember, error)
	GetAll() ([]models.TeamMember, error)
	AdminList(query TeamListQuery) ([]models.TeamMember, int64, error)
	Update(member *models.TeamMember) error
	SetOrder(orders map[uint64]uint) error
	Delete(id uint64) (*models.TeamMember, error)
	Count() (int64, error)
}

// AboutRepository defines the interface for the about page rows
type AboutRepository interface {
	Create(page *models.AboutPage) error
	GetByID(id uint) (*models.AboutPage, error)
	First() (*models.AboutPage, error)
	GetAll() ([]models.AboutPage, error)
	Update(page *models.AboutPage) error
	Delete(id uint) (*models.AboutPage, error)
	Count() (int64, error)
}

// NewsListQuery carries the changelist state of the news admin.
type NewsListQuery struct {
	Search    string
	Published *bool
	Since     time.Time
	OrderBy   string
	Desc      bool
	Offset    int
	Limit     int
}

// TeamListQuery carries the changelist state of the team admin.
type TeamListQuery struct {
	Search  string
	OrderBy string
	Desc    bool
	Offset  int
	Limit   int
}

// InlineChanges collects the edits made to a post's images and links on the change form.
type InlineChanges struct {
	NewImages      []models.NewsImage
	ImageCaptions  map[uint64]string
	DeleteImageIDs []uint64
	NewLinks       []models.NewsLink
	UpdatedLinks   []models.NewsLink
	DeleteLinkIDs  []uint64
}

// Repositories struct holds all repository instances
type Repositories struct {
	News  NewsRepository
	Team  TeamRepository
	About AboutRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		News:  NewNewsRepository(db),
		Team:  NewTeamRepository(db),
		About: NewAboutRepository(db),
	}
}
