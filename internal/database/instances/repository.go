// Package instances provides database operations for physical book copies.
//
// Copies are listed by due_back ascending unless stated otherwise.
package instances

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all book instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new instances repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new copy. The ID is generated when not set.
func (r *Repository) Create(ctx context.Context, instance *entities.BookInstance) error {
	return r.db.WithContext(ctx).Omit("Book").Create(instance).Error
}

// Update writes the mutable fields of a copy. The ID is never rewritten.
func (r *Repository) Update(ctx context.Context, instance *entities.BookInstance) error {
	result := r.db.WithContext(ctx).Model(instance).
		Select("BookID", "Imprint", "DueBack", "Status").
		Updates(instance)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves a copy together with its book.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	err := r.db.WithContext(ctx).Preload("Book").Where("id = ?", id).First(&instance).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// ListForBook returns every copy of a book.
func (r *Repository) ListForBook(ctx context.Context, bookID uint) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("due_back ASC").Find(&instances).Error
	return instances, err
}

// ListOverdue returns copies on loan whose due date is before asOf.
func (r *Repository) ListOverdue(ctx context.Context, asOf time.Time) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.WithContext(ctx).Preload("Book").
		Where("status = ? AND due_back IS NOT NULL AND due_back < ?", entities.LoanStatusOnLoan, asOf.UTC()).
		Order("due_back ASC").
		Find(&instances).Error
	return instances, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.BookInstance{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountByStatus(ctx context.Context, status entities.LoanStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.BookInstance{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
