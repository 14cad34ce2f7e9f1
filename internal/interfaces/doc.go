// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - catalog.Store: Durable book storage (internal/catalog/service.go)
//   - audit.EventStore: Audit event persistence (internal/audit/service.go)
//   - http.Pinger: Database liveness for /health (internal/http/health.go)
//
// ## Service Interfaces
//
//   - http.BookCatalog: Catalog operations exposed over HTTP (internal/http/books.go)
//   - catalog.AuditLogger: Mutation history, fire-and-forget (internal/catalog/service.go)
//   - http.AuditReader: Paginated audit log (internal/http/audit.go)
//   - scheduler.EventPruner: Retention cleanup (internal/scheduler/audit_cleanup.go)
//
// # Adding a New Storage Engine
//
// Book storage goes through gorm, so a new engine is a new dialector:
//
//  1. Add a driver constant and a case in database.newDialector.
//
//  2. Make sure the engine reports unique-index violations in a way gorm's
//     TranslateError maps to gorm.ErrDuplicatedKey, or extend
//     books.isUniqueViolation.
//
//  3. Search statements are rendered with goqu's default dialect and rebound
//     by gorm, so internal/query needs no change for engines that accept
//     LOWER(...) LIKE ... ESCAPE.
//
// # Adding a New Mutation Listener
//
// Anything that should observe successful writes implements AuditLogger:
//
//	type WebhookNotifier struct { client *http.Client }
//
//	func (n *WebhookNotifier) LogCreate(ctx context.Context, book entities.Book)
//	func (n *WebhookNotifier) LogUpdate(ctx context.Context, book entities.Book, fields []string)
//	func (n *WebhookNotifier) LogDelete(ctx context.Context, book entities.Book)
//
//	var _ catalog.AuditLogger = (*WebhookNotifier)(nil)
//
// and is passed with catalog.WithAudit in entrypoint.Build. Implementations
// must not block the request.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
