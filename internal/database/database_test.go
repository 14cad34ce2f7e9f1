package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase(t *testing.T) {
	db := setupTestDB(t)

	assert.True(t, db.DB.Migrator().HasTable(&entities.Book{}))
	assert.True(t, db.DB.Migrator().HasTable(&entities.AuditEvent{}))
	assert.True(t, db.DB.Migrator().HasIndex(&entities.Book{}, "uix_title_author"))
	assert.NoError(t, db.Ping(context.Background()))
}

func TestDatabase_UniqueTitleAuthor(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.DB.Create(&entities.Book{Title: "Dune", Author: "Herbert"}).Error)

	err := db.DB.Create(&entities.Book{Title: "Dune", Author: "Herbert"}).Error
	assert.Error(t, err)

	// Binary collation: a case variant is a different pair.
	assert.NoError(t, db.DB.Create(&entities.Book{Title: "dune", Author: "herbert"}).Error)
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(Options{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = Open(Options{Driver: DriverSQLite})
	assert.ErrorContains(t, err, "database path is not set")

	_, err = Open(Options{Driver: DriverPostgres})
	assert.ErrorContains(t, err, "database DSN is not set")
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "./books.db?"+sqliteParams, sqliteDSN("./books.db"))
	assert.Equal(t, "file:test.db?cache=shared&"+sqliteParams, sqliteDSN("file:test.db?cache=shared"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}
