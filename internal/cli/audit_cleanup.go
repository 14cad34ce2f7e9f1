package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	auditRepo "github.com/mrlokans/catalog/internal/database/audit"
)

// AuditCleanupCommand removes expired audit events once and exits
type AuditCleanupCommand struct {
	DatabasePath  string
	RetentionDays int
}

// NewAuditCleanupCommand creates a new AuditCleanupCommand
func NewAuditCleanupCommand() *AuditCleanupCommand {
	return &AuditCleanupCommand{}
}

// ParseFlags parses command line flags
func (cmd *AuditCleanupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("audit-cleanup", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.IntVar(&cmd.RetentionDays, "retention-days", 30, "Delete audit events older than this many days")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s audit-cleanup [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete audit events older than the retention period.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.RetentionDays < 1 {
		return fmt.Errorf("retention-days must be at least 1, got %d", cmd.RetentionDays)
	}
	return nil
}

// Run executes the cleanup
func (cmd *AuditCleanupCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	service := audit.NewService(auditRepo.NewRepository(db.DB))
	retention := time.Duration(cmd.RetentionDays) * 24 * time.Hour

	deleted, err := service.DeleteOldEvents(context.Background(), retention)
	if err != nil {
		return fmt.Errorf("failed to delete audit events: %w", err)
	}

	log.Printf("Deleted %d audit events older than %d days", deleted, cmd.RetentionDays)
	return nil
}
