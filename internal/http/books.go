package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/services"
)

// BooksController serves the read-only JSON API.
type BooksController struct {
	catalog *services.CatalogService
}

func NewBooksController(catalog *services.CatalogService) *BooksController {
	return &BooksController{
		catalog: catalog,
	}
}

// GetStats returns the dashboard counts.
// GET /api/stats
func (controller *BooksController) GetStats(c *gin.Context) {
	dashboard, err := controller.catalog.Dashboard(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "dashboard")
		return
	}
	c.IndentedJSON(http.StatusOK, dashboard)
}

// ListBooks returns one page of books.
// GET /api/books?page=N
func (controller *BooksController) ListBooks(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondBadRequest(c, "invalid page")
		return
	}

	books, err := controller.catalog.ListBooks(c.Request.Context(), page)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, books)
}

// GetBook returns a single book.
// GET /api/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.catalog.GetBook(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"book":          book,
		"display_genre": book.DisplayGenre(),
		"url":           book.AbsoluteURL(),
	})
}

// ListAuthors returns one page of authors.
// GET /api/authors?page=N
func (controller *BooksController) ListAuthors(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondBadRequest(c, "invalid page")
		return
	}

	authors, err := controller.catalog.ListAuthors(c.Request.Context(), page)
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.IndentedJSON(http.StatusOK, authors)
}

// GetAuthor returns a single author with their books.
// GET /api/authors/:id
func (controller *BooksController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := controller.catalog.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, "author")
		return
	}
	c.IndentedJSON(http.StatusOK, author)
}
