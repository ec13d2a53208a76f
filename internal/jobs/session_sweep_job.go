package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionSweepSchedule runs the sweep at the top of every minute.
const SessionSweepSchedule = "0 * * * * *"

// SessionSweepJob forgets the dashboards of sessions that have been idle for
// longer than idleTimeout. It always runs; without it every cookieless request
// would leave a dashboard behind for good.
type SessionSweepJob struct {
	handler     commands.EvictIdleSessionsCommandHandler
	idleTimeout time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewSessionSweepJob creates the job.
func NewSessionSweepJob(
	handler commands.EvictIdleSessionsCommandHandler,
	idleTimeout time.Duration,
	logger *slog.Logger,
) *SessionSweepJob {
	return &SessionSweepJob{
		handler:     handler,
		idleTimeout: idleTimeout,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "session_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *SessionSweepJob) Start() error {
	if _, err := commands.NewEvictIdleSessionsCommand(j.idleTimeout); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(SessionSweepSchedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started",
		"schedule", SessionSweepSchedule, "idle_timeout", j.idleTimeout)
	return nil
}

// Run evicts the idle sessions once.
func (j *SessionSweepJob) Run(ctx context.Context) {
	cmd, err := commands.NewEvictIdleSessionsCommand(j.idleTimeout)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep job failed", "error", err)
		return
	}

	evicted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep job failed", "error", err)
		return
	}
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Idle sessions evicted", "count", evicted)
	}
}

// Stop waits for a running sweep to finish.
func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
