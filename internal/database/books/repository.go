// Package books provides database operations for catalog books.
//
// Genres are loaded with an explicit join ordered by the join row's insertion
// order, so Book.Genres always reflects association order.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(ctx, 123)
package books

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a book and links it to the given genres, which must already exist.
func (r *Repository) Create(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Omit("Author", "Instances", "Genres.*").Create(book).Error
}

// AddGenres appends genres to a book's association, after any existing ones.
func (r *Repository) AddGenres(ctx context.Context, bookID uint, genres ...entities.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	book := entities.Book{ID: bookID}
	return r.db.WithContext(ctx).Model(&book).Omit("Genres.*").Association("Genres").Append(genres)
}

// GetByID retrieves a book with its author, genres and copies.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Preload("Author").Preload("Instances", func(db *gorm.DB) *gorm.DB {
		return db.Order("due_back ASC")
	}).First(&book, id).Error
	if err != nil {
		return nil, err
	}

	list := []entities.Book{book}
	if err := r.loadGenres(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// List returns a window of books in insertion order. A non-positive limit returns all.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]entities.Book, error) {
	var books []entities.Book
	query := r.db.WithContext(ctx).Preload("Author").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&books).Error; err != nil {
		return nil, err
	}
	if err := r.loadGenres(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// Delete removes a book. Its copies survive with the book reference cleared.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entities.BookInstance{}).
			Where("book_id = ?", id).
			Update("book_id", nil).Error
		if err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM book_genres WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

type bookGenreRow struct {
	BookID    uint
	GenreID   uint
	GenreName string
}

// loadGenres fills Genres on every book with a single query.
func (r *Repository) loadGenres(ctx context.Context, books []entities.Book) error {
	if len(books) == 0 {
		return nil
	}

	index := make(map[uint]int, len(books))
	ids := make([]uint, 0, len(books))
	for i, book := range books {
		index[book.ID] = i
		ids = append(ids, book.ID)
		books[i].Genres = nil
	}

	var rows []bookGenreRow
	// rowid follows insertion order of the join rows
	err := r.db.WithContext(ctx).
		Table("book_genres").
		Select("book_genres.book_id AS book_id, genres.id AS genre_id, genres.name AS genre_name").
		Joins("JOIN genres ON genres.id = book_genres.genre_id").
		Where("book_genres.book_id IN ?", ids).
		Order("book_genres.rowid ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		i := index[row.BookID]
		books[i].Genres = append(books[i].Genres, entities.Genre{ID: row.GenreID, Name: row.GenreName})
	}
	return nil
}
