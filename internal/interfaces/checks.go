package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/importers"
	"github.com/mrlokans/catalog/internal/scheduler"
	"github.com/mrlokans/catalog/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// CatalogStore implementations
var _ services.CatalogStore = (*database.Database)(nil)

// DeleteStore implementations
var _ http.DeleteStore = (*database.Database)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Import & Reporting
// =============================================================================

// CatalogWriter implementations
var _ importers.CatalogWriter = (*database.Database)(nil)

// OverdueStore implementations
var _ scheduler.OverdueStore = (*database.Database)(nil)
