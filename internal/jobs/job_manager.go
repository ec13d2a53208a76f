package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	sessionSweepJob *SessionSweepJob
	demoResetJob    *DemoResetJob
}

// NewJobManager creates the manager. The session sweep always runs; an empty
// demoResetSchedule disables the demo reset job.
func NewJobManager(
	evictHandler commands.EvictIdleSessionsCommandHandler,
	sessionIdleTimeout time.Duration,
	resetHandler commands.ResetDashboardCommandHandler,
	demoResetSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		sessionSweepJob: NewSessionSweepJob(evictHandler, sessionIdleTimeout, logger),
	}
	if demoResetSchedule != "" {
		jm.demoResetJob = NewDemoResetJob(resetHandler, demoResetSchedule, logger)
	}
	return jm
}

// StartAll starts every configured job.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}
	if jm.demoResetJob == nil {
		return nil
	}
	if err := jm.demoResetJob.Start(); err != nil {
		jm.sessionSweepJob.Stop()
		return fmt.Errorf("failed to start demo reset job: %w", err)
	}
	return nil
}

// StopAll stops the running jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionSweepJob.Stop()
	if jm.demoResetJob != nil {
		jm.demoResetJob.Stop()
	}
}
