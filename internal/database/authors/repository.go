// Package authors provides database operations for author management.
//
// Authors are always listed in (last_name, first_name) order.
package authors

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// DefaultOrder is the ordering applied to every author listing.
const DefaultOrder = "last_name ASC, first_name ASC, id ASC"

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new author.
func (r *Repository) Create(ctx context.Context, author *entities.Author) error {
	return r.db.WithContext(ctx).Omit("Books").Create(author).Error
}

// GetByID retrieves an author with their books ordered by title.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.WithContext(ctx).Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("title ASC, id ASC")
	}).First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List returns a window of authors in default order. A non-positive limit returns all.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]entities.Author, error) {
	var authors []entities.Author
	query := r.db.WithContext(ctx).Order(DefaultOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&authors).Error
	return authors, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Count(&count).Error
	return count, err
}

// Delete removes an author. Their books survive with the author reference cleared.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entities.Book{}).
			Where("author_id = ?", id).
			Update("author_id", nil).Error
		if err != nil {
			return err
		}
		result := tx.Delete(&entities.Author{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
