package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/catalog/internal/entities"
)

// --- Genres ---

func (d *Database) CreateGenre(ctx context.Context, name string) (*entities.Genre, error) {
	return d.genres.Create(ctx, name)
}

func (d *Database) GetGenreByID(ctx context.Context, id uint) (*entities.Genre, error) {
	return d.genres.GetByID(ctx, id)
}

func (d *Database) ListGenres(ctx context.Context) ([]entities.Genre, error) {
	return d.genres.List(ctx)
}

// DeleteGenre removes a genre and detaches it from its books.
func (d *Database) DeleteGenre(ctx context.Context, id uint) error {
	return d.genres.Delete(ctx, id)
}

// --- Authors ---

func (d *Database) CreateAuthor(ctx context.Context, author *entities.Author) error {
	return d.authors.Create(ctx, author)
}

func (d *Database) GetAuthorByID(ctx context.Context, id uint) (*entities.Author, error) {
	return d.authors.GetByID(ctx, id)
}

func (d *Database) ListAuthors(ctx context.Context, limit, offset int) ([]entities.Author, error) {
	return d.authors.List(ctx, limit, offset)
}

func (d *Database) CountAuthors(ctx context.Context) (int64, error) {
	return d.authors.Count(ctx)
}

// DeleteAuthor removes an author; their books keep existing without an author.
func (d *Database) DeleteAuthor(ctx context.Context, id uint) error {
	return d.authors.Delete(ctx, id)
}

// --- Books ---

func (d *Database) CreateBook(ctx context.Context, book *entities.Book) error {
	return translateError(d.books.Create(ctx, book))
}

func (d *Database) AddGenresToBook(ctx context.Context, bookID uint, genres ...entities.Genre) error {
	return translateError(d.books.AddGenres(ctx, bookID, genres...))
}

func (d *Database) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	return d.books.GetByID(ctx, id)
}

func (d *Database) ListBooks(ctx context.Context, limit, offset int) ([]entities.Book, error) {
	return d.books.List(ctx, limit, offset)
}

func (d *Database) CountBooks(ctx context.Context) (int64, error) {
	return d.books.Count(ctx)
}

// DeleteBook removes a book; its copies keep existing without a book.
func (d *Database) DeleteBook(ctx context.Context, id uint) error {
	return d.books.Delete(ctx, id)
}

// --- Book instances ---

func (d *Database) CreateBookInstance(ctx context.Context, instance *entities.BookInstance) error {
	return translateError(d.instances.Create(ctx, instance))
}

func (d *Database) UpdateBookInstance(ctx context.Context, instance *entities.BookInstance) error {
	return translateError(d.instances.Update(ctx, instance))
}

func (d *Database) GetBookInstanceByID(ctx context.Context, id uuid.UUID) (*entities.BookInstance, error) {
	return d.instances.GetByID(ctx, id)
}

func (d *Database) ListInstancesForBook(ctx context.Context, bookID uint) ([]entities.BookInstance, error) {
	return d.instances.ListForBook(ctx, bookID)
}

func (d *Database) ListOverdueInstances(ctx context.Context, asOf time.Time) ([]entities.BookInstance, error) {
	return d.instances.ListOverdue(ctx, asOf)
}

func (d *Database) CountInstances(ctx context.Context) (int64, error) {
	return d.instances.Count(ctx)
}

func (d *Database) CountInstancesByStatus(ctx context.Context, status entities.LoanStatus) (int64, error) {
	return d.instances.CountByStatus(ctx, status)
}
