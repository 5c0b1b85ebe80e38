package http

import (
	"github.com/mrlokans/catalog/internal/demo"
	"github.com/mrlokans/catalog/internal/services"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog     *services.CatalogService
	DeleteStore DeleteStore
	Health      Pinger

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Origins allowed to call the JSON API from a browser
	CORSAllowedOrigins []string

	// Blocks write requests when demo mode is enabled (optional)
	DemoMiddleware *demo.Middleware

	// Application info
	Version string
}
