package http

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/services"
)

// seededCatalog holds the identifiers of the records created by seedCatalog.
type seededCatalog struct {
	AuthorID uint
	BookID   uint
	GenreID  uint
	Copies   []*entities.BookInstance
}

// seedCatalog creates one author with one book in two genres and two copies,
// followed by `extraBooks` untitled filler books without author.
func seedCatalog(t *testing.T, db *database.Database, extraBooks int) seededCatalog {
	t.Helper()
	ctx := context.Background()

	scifi, err := db.CreateGenre(ctx, "Science Fiction")
	require.NoError(t, err)
	fantasy, err := db.CreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	born := time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC)
	died := time.Date(2018, 1, 22, 0, 0, 0, 0, time.UTC)
	author := &entities.Author{FirstName: "Ursula", LastName: "Le Guin", DateOfBirth: &born, DateOfDeath: &died}
	require.NoError(t, db.CreateAuthor(ctx, author))

	book := &entities.Book{
		Title:    "The Dispossessed",
		Summary:  "An ambiguous utopia.",
		ISBN:     "9780061054884",
		AuthorID: &author.ID,
		Genres:   []entities.Genre{*scifi, *fantasy},
	}
	require.NoError(t, db.CreateBook(ctx, book))

	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	onLoan := &entities.BookInstance{BookID: &book.ID, Imprint: "Harper Voyager, 1994", DueBack: &due, Status: entities.LoanStatusOnLoan}
	available := &entities.BookInstance{BookID: &book.ID, Imprint: "Gollancz, 2002", Status: entities.LoanStatusAvailable}
	require.NoError(t, db.CreateBookInstance(ctx, onLoan))
	require.NoError(t, db.CreateBookInstance(ctx, available))

	for i := 0; i < extraBooks; i++ {
		require.NoError(t, db.CreateBook(ctx, &entities.Book{Title: fmt.Sprintf("Filler %02d", i+1)}))
	}

	return seededCatalog{
		AuthorID: author.ID,
		BookID:   book.ID,
		GenreID:  scifi.ID,
		Copies:   []*entities.BookInstance{onLoan, available},
	}
}

// newTestRouter builds the full router against the repository templates.
func newTestRouter(t *testing.T, db *database.Database, corsOrigins ...string) *gin.Engine {
	t.Helper()
	return NewRouter(RouterConfig{
		Catalog:            services.NewCatalogService(db, services.DefaultPageSize),
		DeleteStore:        db,
		Health:             db,
		TemplatesPath:      "../../templates",
		StaticPath:         "../../static",
		CORSAllowedOrigins: corsOrigins,
		Version:            "test",
	})
}
