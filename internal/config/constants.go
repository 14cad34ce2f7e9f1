package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./books.db"

	// DefaultAuditCleanupSchedule runs retention cleanup daily at 03:00.
	DefaultAuditCleanupSchedule = "0 3 * * *"
)
