package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
)

func TestAuditCleanupCommand_ParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := NewAuditCleanupCommand()
		require.NoError(t, cmd.ParseFlags(nil))
		assert.Equal(t, config.DefaultDatabasePath, cmd.DatabasePath)
		assert.Equal(t, 30, cmd.RetentionDays)
	})

	t.Run("custom values", func(t *testing.T) {
		cmd := NewAuditCleanupCommand()
		require.NoError(t, cmd.ParseFlags([]string{"-db", "/tmp/x.db", "-retention-days", "3"}))
		assert.Equal(t, "/tmp/x.db", cmd.DatabasePath)
		assert.Equal(t, 3, cmd.RetentionDays)
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		cmd := NewAuditCleanupCommand()
		assert.Error(t, cmd.ParseFlags([]string{"-retention-days", "0"}))
	})
}

func TestAuditCleanupCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "books.db")
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	require.NoError(t, db.DB.Create(&entities.AuditEvent{
		EventType: entities.AuditEventCreate,
		Action:    "book_create",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: time.Now().Add(-10 * 24 * time.Hour),
	}).Error)
	require.NoError(t, db.DB.Create(&entities.AuditEvent{
		EventType: entities.AuditEventCreate,
		Action:    "book_create",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Close())

	cmd := &AuditCleanupCommand{DatabasePath: dbPath, RetentionDays: 5}
	require.NoError(t, cmd.Run())

	db, err = database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.WithContext(context.Background()).Model(&entities.AuditEvent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
