package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/catalog"
	"github.com/mrlokans/catalog/internal/database"
	auditRepo "github.com/mrlokans/catalog/internal/database/audit"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/scheduler"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store implementations
var _ catalog.Store = (*books.Repository)(nil)

// EventStore implementations
var _ audit.EventStore = (*auditRepo.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Services
// =============================================================================

// BookCatalog implementations
var _ http.BookCatalog = (*catalog.Service)(nil)

// AuditLogger implementations
var _ catalog.AuditLogger = (*audit.Service)(nil)

// AuditReader implementations
var _ http.AuditReader = (*audit.Service)(nil)

// EventPruner implementations
var _ scheduler.EventPruner = (*audit.Service)(nil)
