package bootstrap

import (
	"log/slog"

	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/eventlog"
	"github.com/osse101/Foodgram_Go/internal/scheduler"
	"github.com/osse101/Foodgram_Go/internal/worker"
)

// BackgroundJobs owns the worker pool and the scheduler feeding it
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs starts the worker pool and schedules event log retention.
// A non-positive retention or interval disables the cleanup job.
func StartBackgroundJobs(cfg *config.Config, services *Services) *BackgroundJobs {
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, cfg.WorkerJobTimeout)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.EventLogRetentionDays > 0 && cfg.EventLogCleanupInterval > 0 {
		sched.Schedule(JobNameEventLogCleanup, cfg.EventLogCleanupInterval,
			eventlog.NewCleanupJob(services.EventLog, cfg.EventLogRetentionDays))
	}

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", cfg.WorkerCount,
		"cleanup_interval", cfg.EventLogCleanupInterval,
		"retention_days", cfg.EventLogRetentionDays)

	return &BackgroundJobs{Pool: pool, Scheduler: sched}
}

// Stop halts scheduling first, then drains the pool
func (b *BackgroundJobs) Stop() {
	if b == nil {
		return
	}
	b.Scheduler.Stop()
	b.Pool.Stop()
}
