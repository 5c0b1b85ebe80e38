package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// DefaultPageSize is the number of records per listing page.
const DefaultPageSize = 10

// ErrNotFound is returned by detail lookups when no record matches the identifier.
var ErrNotFound = errors.New("not found")

// Dashboard holds the aggregate counts shown on the home page.
type Dashboard struct {
	NumBooks              int64 `json:"num_books"`
	NumInstances          int64 `json:"num_instances"`
	NumInstancesAvailable int64 `json:"num_instances_available"`
	NumAuthors            int64 `json:"num_authors"`
}

// Page describes one page of a listing. Page numbers start at 1.
type Page struct {
	Number     int   `json:"page"`
	Size       int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func (p Page) HasPrevious() bool { return p.Number > 1 }
func (p Page) HasNext() bool     { return p.Number < p.TotalPages }
func (p Page) Previous() int     { return p.Number - 1 }
func (p Page) Next() int         { return p.Number + 1 }

func (p Page) offset() int {
	return (p.Number - 1) * p.Size
}

// BookPage is a page of books.
type BookPage struct {
	Page
	Books []entities.Book `json:"books"`
}

// AuthorPage is a page of authors.
type AuthorPage struct {
	Page
	Authors []entities.Author `json:"authors"`
}

// CatalogService answers the read-only queries behind the catalog pages.
type CatalogService struct {
	store    CatalogStore
	pageSize int
}

// NewCatalogService creates a catalog service. A non-positive pageSize falls back to DefaultPageSize.
func NewCatalogService(store CatalogStore, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CatalogService{store: store, pageSize: pageSize}
}

func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// Dashboard counts books, copies, available copies and authors.
func (s *CatalogService) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	var err error

	if d.NumBooks, err = s.store.CountBooks(ctx); err != nil {
		return Dashboard{}, fmt.Errorf("count books: %w", err)
	}
	if d.NumInstances, err = s.store.CountInstances(ctx); err != nil {
		return Dashboard{}, fmt.Errorf("count book instances: %w", err)
	}
	if d.NumInstancesAvailable, err = s.store.CountInstancesByStatus(ctx, entities.LoanStatusAvailable); err != nil {
		return Dashboard{}, fmt.Errorf("count available book instances: %w", err)
	}
	if d.NumAuthors, err = s.store.CountAuthors(ctx); err != nil {
		return Dashboard{}, fmt.Errorf("count authors: %w", err)
	}
	return d, nil
}

// ListBooks returns the requested page of books. Pages past the end are empty.
func (s *CatalogService) ListBooks(ctx context.Context, page int) (BookPage, error) {
	total, err := s.store.CountBooks(ctx)
	if err != nil {
		return BookPage{}, fmt.Errorf("count books: %w", err)
	}

	p := s.newPage(page, total)
	books := []entities.Book{}
	if int64(p.offset()) < total {
		books, err = s.store.ListBooks(ctx, p.Size, p.offset())
		if err != nil {
			return BookPage{}, fmt.Errorf("list books: %w", err)
		}
	}
	return BookPage{Page: p, Books: books}, nil
}

// GetBook returns a single book or ErrNotFound.
func (s *CatalogService) GetBook(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := s.store.GetBookByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "book %d", id)
	}
	return book, nil
}

// ListAuthors returns the requested page of authors in (last_name, first_name) order.
func (s *CatalogService) ListAuthors(ctx context.Context, page int) (AuthorPage, error) {
	total, err := s.store.CountAuthors(ctx)
	if err != nil {
		return AuthorPage{}, fmt.Errorf("count authors: %w", err)
	}

	p := s.newPage(page, total)
	authors := []entities.Author{}
	if int64(p.offset()) < total {
		authors, err = s.store.ListAuthors(ctx, p.Size, p.offset())
		if err != nil {
			return AuthorPage{}, fmt.Errorf("list authors: %w", err)
		}
	}
	return AuthorPage{Page: p, Authors: authors}, nil
}

// GetAuthor returns a single author with their books or ErrNotFound.
func (s *CatalogService) GetAuthor(ctx context.Context, id uint) (*entities.Author, error) {
	author, err := s.store.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "author %d", id)
	}
	return author, nil
}

func (s *CatalogService) newPage(number int, total int64) Page {
	if number < 1 {
		number = 1
	}
	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	// every page past the last is equally empty; capping keeps offset and Next from overflowing
	if number > totalPages+1 {
		number = totalPages + 1
	}
	return Page{
		Number:     number,
		Size:       s.pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
	}
	return fmt.Errorf("get %s: %w", fmt.Sprintf(format, args...), err)
}
