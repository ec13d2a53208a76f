package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DemoResetJob periodically drops every session's dashboard so that a shared
// demo instance returns to the seed data.
type DemoResetJob struct {
	handler  commands.ResetDashboardCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDemoResetJob creates the job. schedule is a six-field cron expression
// (seconds first), e.g. "0 0 * * * *" for hourly.
func NewDemoResetJob(
	handler commands.ResetDashboardCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DemoResetJob {
	return &DemoResetJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "demo_reset_job"),
	}
}

// Start schedules the reset.
func (j *DemoResetJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Demo reset job started", "schedule", j.schedule)
	return nil
}

// Run resets every session once.
func (j *DemoResetJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewResetAllDashboardsCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Demo reset job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Demo data reset")
}

// Stop waits for a running reset to finish.
func (j *DemoResetJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Demo reset job stopped")
}
