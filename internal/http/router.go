package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	// CORS runs on the engine so that preflight requests are answered before routing
	if corsMiddleware := CORSMiddleware(cfg.CORSAllowedOrigins); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.DemoMiddleware != nil {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	// Load HTML templates with custom functions
	tmpl := template.Must(template.New("").Funcs(TemplateFuncs()).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	health := NewHealthController(cfg.Health, cfg.Version)
	uiController := NewUIController(cfg.Catalog)
	booksController := NewBooksController(cfg.Catalog)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// UI routes
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog/")
	})
	catalog := router.Group("/catalog")
	{
		catalog.GET("/", uiController.IndexPage)
		catalog.GET("/books/", uiController.BookListPage)
		catalog.GET("/book/:id", uiController.BookDetailPage)
		catalog.GET("/authors/", uiController.AuthorListPage)
		catalog.GET("/author/:id", uiController.AuthorDetailPage)
	}

	// JSON API
	api := router.Group("/api")
	{
		api.GET("/stats", booksController.GetStats)
		api.GET("/books", booksController.ListBooks)
		api.GET("/books/:id", booksController.GetBook)
		api.GET("/authors", booksController.ListAuthors)
		api.GET("/authors/:id", booksController.GetAuthor)
	}

	// Delete endpoints
	if cfg.DeleteStore != nil {
		deleteController := NewDeleteController(cfg.DeleteStore)
		api.DELETE("/authors/:id", deleteController.DeleteAuthor)
		api.DELETE("/books/:id", deleteController.DeleteBook)
		api.DELETE("/genres/:id", deleteController.DeleteGenre)
	}

	return router
}
