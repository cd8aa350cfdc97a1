package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gradsite/modteam/app/models"
)

// MaxSlugAttempts bounds the insert-or-retry loop used to find a free slug.
const MaxSlugAttempts = 50

const newsDefaultOrder = "created_at DESC, id DESC"

var newsSortColumns = map[string]string{
	"title":        "title",
	"created_at":   "created_at",
	"is_published": "is_published",
}

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create inserts a post together with its images and links.
//
// A blank slug is derived from the title. The unique index on the slug column is
// the arbiter: a candidate that loses against a concurrent writer makes the insert
// fail with a duplicate key error and the next counter is tried.
func (r *newsRepository) Create(post *models.NewsPost) error {
	return r.saveWithSlug(post, func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
}

// GetByID retrieves a post with its images and links, published or not
func (r *newsRepository) GetByID(id uint64) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.withChildren(r.db).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug resolves a public post; unpublished rows are reported as not found
func (r *newsRepository) GetPublishedBySlug(slug string) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.withChildren(r.db).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetLatestPublished returns up to limit published posts, newest first
func (r *newsRepository) GetLatestPublished(limit int) ([]models.NewsPost, error) {
	return r.GetPublished(0, limit)
}

// GetPublished retrieves published posts with pagination
func (r *newsRepository) GetPublished(offset, limit int) ([]models.NewsPost, error) {
	var posts []models.NewsPost
	err := r.db.Where("is_published = ?", true).
		Order(newsDefaultOrder).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountPublished returns the number of published posts
func (r *newsRepository) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsPost{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}

// AdminList returns one changelist page and the total number of matching rows
func (r *newsRepository) AdminList(query NewsListQuery) ([]models.NewsPost, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(query.Search); s != "" {
			like := "%" + s + "%"
			db = db.Where("title LIKE ? OR content LIKE ?", like, like)
		}
		if query.Published != nil {
			db = db.Where("is_published = ?", *query.Published)
		}
		if !query.Since.IsZero() {
			db = db.Where("created_at >= ?", query.Since)
		}
		return db
	}

	var total int64
	if err := r.db.Model(&models.NewsPost{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count news posts: %w", err)
	}

	q := r.db.Scopes(filter)
	if column, ok := newsSortColumns[query.OrderBy]; ok {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: query.Desc}).Order("id DESC")
	} else {
		q = q.Order(newsDefaultOrder)
	}
	if query.Limit > 0 {
		q = q.Offset(query.Offset).Limit(query.Limit)
	}

	var posts []models.NewsPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("list news posts: %w", err)
	}
	return posts, total, nil
}

// Update saves the post fields and applies the inline image/link edits atomically
func (r *newsRepository) Update(post *models.NewsPost, inline InlineChanges) error {
	return r.saveWithSlug(post, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		return applyInline(tx, post.ID, inline)
	})
}

// SetPublished stores the list-editable publish flags of the changelist
func (r *newsRepository) SetPublished(flags map[uint64]bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id, published := range flags {
			err := tx.Model(&models.NewsPost{}).Where("id = ?", id).Update("is_published", published).Error
			if err != nil {
				return fmt.Errorf("update post %d: %w", id, err)
			}
		}
		return nil
	})
}

// Delete removes a post, its images and its links. The deleted post (with children)
// is returned so the caller can release the stored media.
func (r *newsRepository) Delete(id uint64) (*models.NewsPost, error) {
	var post models.NewsPost
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.withChildren(tx).First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.NewsImage{}).Error; err != nil {
			return fmt.Errorf("delete images: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.NewsLink{}).Error; err != nil {
			return fmt.Errorf("delete links: %w", err)
		}
		return tx.Delete(&models.NewsPost{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Count returns the total number of posts
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsPost{}).Count(&count).Error
	return count, err
}

func (r *newsRepository) withChildren(db *gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }
	return db.Preload("Images", byID).Preload("Links", byID)
}

// saveWithSlug runs save in a transaction. Posts with an explicit slug are saved once
// and a collision is reported as ErrSlugTaken; blank slugs are derived from the
// title and retried with the next counter whenever the unique index rejects them.
func (r *newsRepository) saveWithSlug(post *models.NewsPost, save func(tx *gorm.DB) error) error {
	if post.Slug != "" {
		err := r.db.Transaction(save)
		if isDuplicateKey(err) {
			return ErrSlugTaken
		}
		return err
	}

	base := models.Slugify(post.Title)
	next, err := r.firstFreeCounter(base, post.ID)
	if err != nil {
		return err
	}

	for attempt := 0; attempt < MaxSlugAttempts; attempt++ {
		post.Slug = models.SlugCandidate(base, next+attempt)
		err = r.db.Transaction(save)
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			post.Slug = ""
			return err
		}
		log.Debugf("[NewsRepository] Slug %q is taken, retrying", post.Slug)
	}

	post.Slug = ""
	return fmt.Errorf("no free slug for %q after %d attempts: %w", base, MaxSlugAttempts, ErrSlugTaken)
}

// firstFreeCounter inspects the slugs already derived from base and returns the
// lowest unused counter. It is only a starting point for the insert-or-retry loop.
func (r *newsRepository) firstFreeCounter(base string, exceptID uint64) (int, error) {
	var taken []string
	err := r.db.Model(&models.NewsPost{}).
		Where("(slug = ? OR slug LIKE ?) AND id <> ?", base, base+"-%", exceptID).
		Pluck("slug", &taken).Error
	if err != nil {
		return 0, fmt.Errorf("lookup slugs for %q: %w", base, err)
	}

	used := make(map[int]bool, len(taken))
	for _, s := range taken {
		if n, ok := models.SlugCounter(base, s); ok {
			used[n] = true
		}
	}
	n := 0
	for used[n] {
		n++
	}
	return n, nil
}

func applyInline(tx *gorm.DB, postID uint64, inline InlineChanges) error {
	if len(inline.DeleteImageIDs) > 0 {
		err := tx.Where("post_id = ? AND id IN ?", postID, inline.DeleteImageIDs).Delete(&models.NewsImage{}).Error
		if err != nil {
			return fmt.Errorf("delete images: %w", err)
		}
	}
	for id, caption := range inline.ImageCaptions {
		err := tx.Model(&models.NewsImage{}).Where("id = ? AND post_id = ?", id, postID).Update("caption", caption).Error
		if err != nil {
			return fmt.Errorf("update image %d: %w", id, err)
		}
	}
	if len(inline.NewImages) > 0 {
		images := make([]models.NewsImage, len(inline.NewImages))
		for i, img := range inline.NewImages {
			img.PostID = postID
			images[i] = img
		}
		if err := tx.Create(&images).Error; err != nil {
			return fmt.Errorf("add images: %w", err)
		}
	}

	if len(inline.DeleteLinkIDs) > 0 {
		err := tx.Where("post_id = ? AND id IN ?", postID, inline.DeleteLinkIDs).Delete(&models.NewsLink{}).Error
		if err != nil {
			return fmt.Errorf("delete links: %w", err)
		}
	}
	for _, link := range inline.UpdatedLinks {
		err := tx.Model(&models.NewsLink{}).Where("id = ? AND post_id = ?", link.ID, postID).
			Updates(map[string]interface{}{"label": link.Label, "url": link.URL}).Error
		if err != nil {
			return fmt.Errorf("update link %d: %w", link.ID, err)
		}
	}
	if len(inline.NewLinks) > 0 {
		links := make([]models.NewsLink, len(inline.NewLinks))
		for i, link := range inline.NewLinks {
			link.PostID = postID
			links[i] = link
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("add links: %w", err)
		}
	}
	return nil
}

// isDuplicateKey recognises unique constraint violations. TranslateError covers the
// configured dialects; the message check keeps it working on connections opened
// without it.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
