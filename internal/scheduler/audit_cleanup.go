// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// EventPruner deletes audit events older than the retention period.
type EventPruner interface {
	DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a standard five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// AuditCleanupScheduler periodically removes expired audit events.
type AuditCleanupScheduler struct {
	pruner    EventPruner
	schedule  string
	retention time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAuditCleanupScheduler creates a new scheduler instance
func NewAuditCleanupScheduler(pruner EventPruner, schedule string, retentionDays int) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		pruner:    pruner,
		schedule:  schedule,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		cron:      cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler. A non-positive retention disables cleanup.
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.retention <= 0 {
		log.Printf("[SCHEDULER] Audit cleanup: disabled (retention not set)")
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule audit cleanup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("[SCHEDULER] Audit cleanup: started with schedule '%s', retention %v", s.schedule, s.retention)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	cancel := s.cancelFunc
	s.isRunning = false
	s.cancelFunc = nil
	if cancel != nil {
		cancel()
	}

	log.Printf("[SCHEDULER] Audit cleanup: stopped")
}

// RunNow triggers an immediate cleanup and returns the number of deleted events.
func (s *AuditCleanupScheduler) RunNow() (int64, error) {
	return s.cleanup()
}

// IsRunning returns whether the scheduler is active
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next cleanup will occur
func (s *AuditCleanupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *AuditCleanupScheduler) runCleanup() {
	if _, err := s.cleanup(); err != nil {
		log.Printf("[SCHEDULER] Audit cleanup failed: %v", err)
	}
}

func (s *AuditCleanupScheduler) cleanup() (int64, error) {
	start := time.Now()
	deleted, err := s.pruner.DeleteOldEvents(context.Background(), s.retention)
	if err != nil {
		return 0, err
	}
	log.Printf("[SCHEDULER] Audit cleanup: removed %d events older than %v in %v",
		deleted, s.retention, time.Since(start).Round(time.Millisecond))
	return deleted, nil
}
