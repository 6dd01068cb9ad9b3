package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Foodgram_Go/internal/logger"
)

// CleanupJob prunes activity rows past the retention window. It is run by the
// worker pool on every scheduler tick.
type CleanupJob struct {
	service       Service
	retentionDays int
	now           func() time.Time
}

// NewCleanupJob binds a retention window to the event log service
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{service: service, retentionDays: retentionDays, now: time.Now}
}

// Process deletes expired rows once
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx).With(LogFieldRetentionDays, j.retentionDays)
	started := j.now()
	log.Debug(LogMsgCleanupJobStarting, LogFieldCutoff, started.AddDate(0, 0, -j.retentionDays))

	deleted, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	elapsed := j.now().Sub(started)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, elapsed)
		return fmt.Errorf("%s: %w", ErrMsgCleanupFailed, err)
	}

	if deleted > 0 {
		log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, deleted, LogFieldDuration, elapsed)
	}
	return nil
}
