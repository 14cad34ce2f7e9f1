package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	mu        sync.Mutex
	calls     int
	retention time.Duration
	deleted   int64
	err       error
}

func (f *fakePruner) DeleteOldEvents(_ context.Context, retention time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.retention = retention
	return f.deleted, f.err
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 3 * * *"))
	assert.NoError(t, ValidateCronSchedule("*/5 * * * *"))
	assert.Error(t, ValidateCronSchedule("every day"))
	assert.Error(t, ValidateCronSchedule("0 0 3 * * *"))
}

func TestAuditCleanupScheduler_StartStop(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakePruner{}, "0 3 * * *", 30)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())
	assert.Equal(t, 0, next.Minute())

	// Starting twice is a no-op.
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())

	// Stopping twice is safe.
	s.Stop()
}

func TestAuditCleanupScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakePruner{}, "0 3 * * *", 30)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestAuditCleanupScheduler_Disabled(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakePruner{}, "0 3 * * *", 0)

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestAuditCleanupScheduler_InvalidSchedule(t *testing.T) {
	s := NewAuditCleanupScheduler(&fakePruner{}, "not a schedule", 30)

	err := s.Start(context.Background())
	assert.ErrorContains(t, err, "invalid cron schedule")
	assert.False(t, s.IsRunning())
}

func TestAuditCleanupScheduler_RunNow(t *testing.T) {
	pruner := &fakePruner{deleted: 4}
	s := NewAuditCleanupScheduler(pruner, "0 3 * * *", 7)

	deleted, err := s.RunNow()
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.Equal(t, 1, pruner.calls)
	assert.Equal(t, 7*24*time.Hour, pruner.retention)

	pruner.err = errors.New("locked")
	_, err = s.RunNow()
	assert.ErrorContains(t, err, "locked")
}
