package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gradsite/modteam/app/models"
)

var teamSortColumns = map[string]string{
	"name":  "name",
	"order": "sort_order",
	"role":  "role",
}

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// Create creates a new team member in the database
func (r *teamRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a team member by its ID
func (r *teamRepository) GetByID(id uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll returns the full roster in display order
func (r *teamRepository) GetAll() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Order(models.TeamMemberOrder).Find(&members).Error
	return members, err
}

// AdminList returns one changelist page and the total number of matching rows
func (r *teamRepository) AdminList(query TeamListQuery) ([]models.TeamMember, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(query.Search); s != "" {
			db = db.Where("name LIKE ?", "%"+s+"%")
		}
		return db
	}

	var total int64
	if err := r.db.Model(&models.TeamMember{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count team members: %w", err)
	}

	q := r.db.Scopes(filter)
	if column, ok := teamSortColumns[query.OrderBy]; ok {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: query.Desc}).Order("name ASC")
	} else {
		q = q.Order(models.TeamMemberOrder)
	}
	if query.Limit > 0 {
		q = q.Offset(query.Offset).Limit(query.Limit)
	}

	var members []models.TeamMember
	if err := q.Find(&members).Error; err != nil {
		return nil, 0, fmt.Errorf("list team members: %w", err)
	}
	return members, total, nil
}

// Update updates an existing team member in the database
func (r *teamRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// SetOrder stores the list-editable order values of the changelist
func (r *teamRepository) SetOrder(orders map[uint64]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			err := tx.Model(&models.TeamMember{}).Where("id = ?", id).Update("sort_order", order).Error
			if err != nil {
				return fmt.Errorf("update member %d: %w", id, err)
			}
		}
		return nil
	})
}

// Delete removes a team member and returns the deleted row
func (r *teamRepository) Delete(id uint64) (*models.TeamMember, error) {
	member, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.TeamMember{}, id).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// Count returns the number of team members
func (r *teamRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Count(&count).Error
	return count, err
}
