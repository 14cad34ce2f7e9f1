// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, driver selection, migrations
//	├── books/           # Book record store (uniqueness, transactions)
//	└── audit/           # Audit event persistence
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./books.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	auditRepo := audit.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.Get(ctx, 123)
//
// # Engines
//
// SQLite is the default engine. PostgreSQL is selected with
// Options.Driver = DriverPostgres. Both get the same schema through
// AutoMigrate: a books table with a unique index on (title, author).
//
// # Interface Implementations
//
//   - books.Repository: implements catalog.Store
//   - audit.Repository: implements audit.EventStore
package database
