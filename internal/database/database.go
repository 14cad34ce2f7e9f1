package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/entities"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// WAL lets readers proceed during a write; the busy timeout makes
	// concurrent writers wait for the lock instead of failing immediately.
	sqliteParams = "_journal=WAL&_busy_timeout=5000&_foreign_keys=on"
)

// Options selects the engine and connection settings.
type Options struct {
	Driver       string // "sqlite" (default) or "postgres"
	Path         string // SQLite database file
	DSN          string // PostgreSQL connection string
	LogLevel     string // silent, error, warn or info
	MaxOpenConns int    // 0 leaves the pool unbounded
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a SQLite database at dbPath with default settings.
func NewDatabase(dbPath string) (*Database, error) {
	return Open(Options{Driver: DriverSQLite, Path: dbPath, LogLevel: "warn", MaxOpenConns: 1})
}

func Open(opts Options) (*Database, error) {
	dialector, err := newDialector(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(opts.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql database: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Book{},
		&entities.AuditEvent{},
	)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully (%s)", describe(opts))

	return &Database{DB: db}, nil
}

func newDialector(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case "", DriverSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("database path is not set")
		}
		return sqlite.Open(sqliteDSN(opts.Path)), nil
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("database DSN is not set")
		}
		return postgres.Open(opts.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqliteParams
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func describe(opts Options) string {
	if opts.Driver == DriverPostgres {
		return "postgres"
	}
	return "sqlite at " + opts.Path
}

// Ping verifies the connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
