package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "HOST", "GIN_MODE", "SHUTDOWN_TIMEOUT_IN_SECONDS",
		"DATABASE_DRIVER", "DATABASE_PATH", "DATABASE_DSN", "DATABASE_LOG_LEVEL", "DATABASE_MAX_OPEN_CONNS",
		"AUDIT_ENABLED", "AUDIT_RETENTION_DAYS", "AUDIT_CLEANUP_SCHEDULE",
	} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, 30, cfg.Audit.RetentionDays)
	assert.Equal(t, DefaultAuditCleanupSchedule, cfg.Audit.CleanupSchedule)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=localhost user=books dbname=books")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "10")
	t.Setenv("AUDIT_ENABLED", "false")
	t.Setenv("AUDIT_RETENTION_DAYS", "7")

	cfg := NewConfig()

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=books dbname=books", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, 7, cfg.Audit.RetentionDays)
}
