package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gradsite/modteam/app/models"
)

// aboutRepository implements the AboutRepository interface
type aboutRepository struct {
	db *gorm.DB
}

// NewAboutRepository creates a new about page repository instance
func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

// Create creates a new about page row
func (r *aboutRepository) Create(page *models.AboutPage) error {
	return r.db.Create(page).Error
}

// GetByID retrieves an about page row by its ID
func (r *aboutRepository) GetByID(id uint) (*models.AboutPage, error) {
	var page models.AboutPage
	err := r.db.First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// First returns the row that acts as the site's about page. A missing row is not an
// error: it yields nil, nil and the pages render without team information.
func (r *aboutRepository) First() (*models.AboutPage, error) {
	var page models.AboutPage
	err := r.db.Order("id ASC").First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAll retrieves all about page rows
func (r *aboutRepository) GetAll() ([]models.AboutPage, error) {
	var pages []models.AboutPage
	err := r.db.Order("id ASC").Find(&pages).Error
	return pages, err
}

// Update updates an existing about page row
func (r *aboutRepository) Update(page *models.AboutPage) error {
	return r.db.Save(page).Error
}

// Delete removes an about page row and returns it
func (r *aboutRepository) Delete(id uint) (*models.AboutPage, error) {
	page, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.AboutPage{}, id).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// Count returns the number of about page rows
func (r *aboutRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AboutPage{}).Count(&count).Error
	return count, err
}
