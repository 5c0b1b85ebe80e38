// Package genres provides database operations for genre management.
//
// # Usage
//
//	repo := genres.NewRepository(db)
//	genre, err := repo.Create(ctx, "Science Fiction")
package genres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new genre. Names are not required to be unique.
func (r *Repository) Create(ctx context.Context, name string) (*entities.Genre, error) {
	genre := &entities.Genre{Name: name}
	if err := r.db.WithContext(ctx).Create(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}

// GetByID retrieves a genre by its ID.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

// List returns all genres ordered by name.
func (r *Repository) List(ctx context.Context) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&genres).Error
	return genres, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Genre{}).Count(&count).Error
	return count, err
}

// Delete removes a genre and detaches it from every book. Books are kept.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM book_genres WHERE genre_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Genre{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
