// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - CatalogStore: Counts and listings behind the catalog pages (internal/services/interfaces.go)
//   - DeleteStore: Deletion operations (internal/http/delete.go)
//   - Pinger: Database health check (internal/http/health.go)
//
// ## Import & Reporting Interfaces
//
//   - CatalogWriter: Record creation for fixture imports (internal/importers/importer.go)
//   - OverdueStore: Overdue copy lookup (internal/scheduler/overdue_report.go)
//
// All of them are implemented by *database.Database, which delegates to one
// repository per entity (internal/database/{genres,authors,books,instances}).
//
// # Adding a New Page
//
//  1. Add the query to the entity repository and expose it on *database.Database:
//
//     func (d *Database) ListGenres(ctx context.Context) ([]entities.Genre, error) {
//         return d.genres.List(ctx)
//     }
//
//  2. Extend services.CatalogStore with the method and add a CatalogService
//     operation that wraps errors and applies pagination.
//
//  3. Add a UIController handler and a template defining the page:
//
//     {{define "genre_list"}}{{template "header" .}} ... {{template "footer" .}}{{end}}
//
//  4. Register the route in http.NewRouter under the /catalog group.
//
// # Adding a New Store Implementation
//
// Implement the interfaces above and add a compile-time check to checks.go:
//
//	var _ services.CatalogStore = (*mystore.Store)(nil)
//
// # Testing with Mocks
//
// Services accept interfaces, so tests can supply small fakes:
//
//	type failingStore struct{ services.CatalogStore }
//
//	func (failingStore) CountBooks(context.Context) (int64, error) {
//		return 0, errors.New("database is locked")
//	}
package interfaces
