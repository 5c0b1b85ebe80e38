package services

import (
	"context"

	"github.com/mrlokans/catalog/internal/entities"
)

// CatalogStore is the read access the catalog service needs from storage.
// Lookups of missing records return gorm.ErrRecordNotFound.
type CatalogStore interface {
	CountBooks(ctx context.Context) (int64, error)
	CountInstances(ctx context.Context) (int64, error)
	CountInstancesByStatus(ctx context.Context, status entities.LoanStatus) (int64, error)
	CountAuthors(ctx context.Context) (int64, error)

	ListBooks(ctx context.Context, limit, offset int) ([]entities.Book, error)
	GetBookByID(ctx context.Context, id uint) (*entities.Book, error)

	ListAuthors(ctx context.Context, limit, offset int) ([]entities.Author, error)
	GetAuthorByID(ctx context.Context, id uint) (*entities.Author, error)
}
