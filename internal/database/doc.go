// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, error translation
//	├── catalog.go       # Database methods delegating to the repositories
//	├── genres/          # Genre CRUD
//	├── authors/         # Author CRUD, (last_name, first_name) ordering
//	├── books/           # Book CRUD and ordered genre association
//	└── instances/       # Book copies, status counts, overdue queries
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./catalog.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.GetByID(ctx, 123)
//
// # Deletion
//
// Deleting an author or a book never cascades. Dependent rows are kept and
// their reference is cleared inside the same transaction:
//
//   - authors.Repository.Delete: books.author_id set to NULL
//   - books.Repository.Delete: book_instances.book_id set to NULL, genre links removed
//   - genres.Repository.Delete: genre links removed
//
// # Interface Implementations
//
// *Database implements services.CatalogStore, http.DeleteStore,
// importers.CatalogWriter and scheduler.OverdueStore.
package database
