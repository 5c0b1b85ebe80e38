package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./catalog.db"

	// DefaultPageSize is the number of books or authors shown per listing page
	DefaultPageSize = 10
)
