package http

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/services"
)

// TemplateFuncs are the helpers available to every catalog template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02")
		},
	}
}

// UIController renders the HTML catalog pages.
type UIController struct {
	catalog *services.CatalogService
}

func NewUIController(catalog *services.CatalogService) *UIController {
	return &UIController{
		catalog: catalog,
	}
}

// IndexPage renders the home page dashboard.
// GET /catalog/
func (controller *UIController) IndexPage(c *gin.Context) {
	dashboard, err := controller.catalog.Dashboard(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading catalog: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"num_books":               dashboard.NumBooks,
		"num_instances":           dashboard.NumInstances,
		"num_instances_available": dashboard.NumInstancesAvailable,
		"num_authors":             dashboard.NumAuthors,
	})
}

// BookListPage renders one page of books.
// GET /catalog/books/?page=N
func (controller *UIController) BookListPage(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid page number")
		return
	}

	books, err := controller.catalog.ListBooks(c.Request.Context(), page)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"Books":        books.Books,
		"Page":         books.Page,
		"IsPaginated":  books.TotalPages > 1,
		"PaginatePath": "/catalog/books/",
	})
}

// BookDetailPage renders a single book.
// GET /catalog/book/:id
func (controller *UIController) BookDetailPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := controller.catalog.GetBook(c.Request.Context(), uint(id))
	if err != nil {
		if isNotFound(err) {
			c.HTML(http.StatusNotFound, "not_found", gin.H{"Message": "Book not found"})
			return
		}
		c.String(http.StatusInternalServerError, "Error loading book: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"Book": book,
	})
}

// AuthorListPage renders one page of authors.
// GET /catalog/authors/?page=N
func (controller *UIController) AuthorListPage(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid page number")
		return
	}

	authors, err := controller.catalog.ListAuthors(c.Request.Context(), page)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading authors: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"Authors":      authors.Authors,
		"Page":         authors.Page,
		"IsPaginated":  authors.TotalPages > 1,
		"PaginatePath": "/catalog/authors/",
	})
}

// AuthorDetailPage renders a single author with their books.
// GET /catalog/author/:id
func (controller *UIController) AuthorDetailPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid author ID")
		return
	}

	author, err := controller.catalog.GetAuthor(c.Request.Context(), uint(id))
	if err != nil {
		if isNotFound(err) {
			c.HTML(http.StatusNotFound, "not_found", gin.H{"Message": "Author not found"})
			return
		}
		c.String(http.StatusInternalServerError, "Error loading author: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"Author": author,
	})
}
