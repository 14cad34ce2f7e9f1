package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog  BookCatalog
	Database Pinger

	// Audit log (optional)
	AuditReader AuditReader

	// Application info
	Version string
}
