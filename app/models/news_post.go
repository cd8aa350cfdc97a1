package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// NewsPost is a single entry of the news feed. Images and links are owned by the
// post and are removed together with it.
type NewsPost struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Slug        string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"omitempty,max=255"`
	CoverImage  string      `gorm:"type:varchar(255)" json:"cover_image,omitempty" validate:"max=255"`
	Content     string      `gorm:"type:text;not null" json:"content" validate:"required"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
	IsPublished bool        `gorm:"index" json:"is_published"`
	Images      []NewsImage `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Links       []NewsLink  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
}

// TableName specifies the table name for the NewsPost model
func (NewsPost) TableName() string {
	return "news_posts"
}

// NewNewsPost returns a post with the form defaults applied: published, dated now.
func NewNewsPost() *NewsPost {
	return &NewsPost{
		IsPublished: true,
		CreatedAt:   time.Now(),
	}
}

func (p *NewsPost) String() string {
	return p.Title
}

// URL returns the public address of the post.
func (p *NewsPost) URL() string {
	return "/news/" + p.Slug + "/"
}

// AfterFind points the preloaded images back at their post.
func (p *NewsPost) AfterFind(_ *gorm.DB) error {
	for i := range p.Images {
		p.Images[i].Post = p
	}
	return nil
}

func (p *NewsPost) Validate() error {
	return validate.Struct(p)
}

// NewsImage is a gallery image attached to a news post.
type NewsImage struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	PostID  uint64 `gorm:"index;not null" json:"post_id"`
	Image   string `gorm:"type:varchar(255);not null" json:"image" validate:"required,max=255"`
	Caption string `gorm:"type:varchar(255)" json:"caption" validate:"max=255"`
	// Post is set when the image is loaded together with its post.
	Post *NewsPost `gorm:"-" json:"-" validate:"-"`
}

func (NewsImage) TableName() string {
	return "news_images"
}

func (i *NewsImage) String() string {
	if i.Post != nil {
		return "Фото к «" + i.Post.Title + "»"
	}
	return fmt.Sprintf("Фото к новости #%d", i.PostID)
}

func (i *NewsImage) Validate() error {
	return validate.Struct(i)
}

// NewsLink is an external link attached to a news post.
type NewsLink struct {
	ID     uint64 `gorm:"primaryKey" json:"id"`
	PostID uint64 `gorm:"index;not null" json:"post_id"`
	Label  string `gorm:"type:varchar(255);not null" json:"label" validate:"required,max=255"`
	URL    string `gorm:"column:url;type:varchar(200);not null" json:"url" validate:"required,url,max=200"`
}

func (NewsLink) TableName() string {
	return "news_links"
}

func (l *NewsLink) String() string {
	return l.Label
}

func (l *NewsLink) Validate() error {
	return validate.Struct(l)
}
