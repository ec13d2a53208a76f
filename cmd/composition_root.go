package cmd

import (
	"log/slog"
	"time"

	"marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/callbacks"
	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/seed"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
)

// CompositionRoot builds the handlers, server and jobs from one Config.
type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	store       ports.DashboardStore
	evictor     ports.SessionEvictor
	idleTimeout time.Duration
	callbacks   *callbacks.Logging
}

// NewCompositionRoot validates config and creates the shared session store.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return CompositionRoot{}, err
	}

	role, err := config.Role()
	if err != nil {
		return CompositionRoot{}, err
	}
	dataset, err := seed.NewMockDataset(role)
	if err != nil {
		return CompositionRoot{}, err
	}
	limit, err := config.SessionLimit()
	if err != nil {
		return CompositionRoot{}, err
	}
	idleTimeout, err := config.IdleTimeout()
	if err != nil {
		return CompositionRoot{}, err
	}
	store, err := memory.NewDashboardStore(dataset, limit)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:      config,
		logger:      logger,
		store:       store,
		evictor:     store,
		idleTimeout: idleTimeout,
		callbacks:   callbacks.NewLogging(logger),
	}, nil
}

// CreateApplyOrderActionCommandHandler wires the order action use case to the store and callbacks.
func (c *CompositionRoot) CreateApplyOrderActionCommandHandler() commands.ApplyOrderActionCommandHandler {
	return commands.NewApplyOrderActionCommandHandler(c.store, c.callbacks)
}

// CreateNotificationActionCommandHandler wires the notification action use case.
func (c *CompositionRoot) CreateNotificationActionCommandHandler() commands.NotificationActionCommandHandler {
	return commands.NewNotificationActionCommandHandler(c.store, c.callbacks)
}

// CreatePanelCommandHandler wires the notification panel operations.
func (c *CompositionRoot) CreatePanelCommandHandler() commands.PanelCommandHandler {
	return commands.NewPanelCommandHandler(c.store)
}

// CreateSelectRoleCommandHandler wires tab switching.
func (c *CompositionRoot) CreateSelectRoleCommandHandler() commands.SelectRoleCommandHandler {
	return commands.NewSelectRoleCommandHandler(c.store)
}

// CreateResetDashboardCommandHandler wires the per-session and demo-wide reset.
func (c *CompositionRoot) CreateResetDashboardCommandHandler() commands.ResetDashboardCommandHandler {
	return commands.NewResetDashboardCommandHandler(c.store)
}

// CreateEvictIdleSessionsCommandHandler wires idle session eviction to the store.
func (c *CompositionRoot) CreateEvictIdleSessionsCommandHandler() commands.EvictIdleSessionsCommandHandler {
	return commands.NewEvictIdleSessionsCommandHandler(c.evictor)
}

// CreateGetDashboardQueryHandler wires the dashboard page query with its presenters.
func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(
		c.store,
		services.NewOrderCardPresenter(),
		services.NewNotificationPanelPresenter(),
	)
}

// CreateGetActionConfirmationQueryHandler wires the confirmation dialog query.
func (c *CompositionRoot) CreateGetActionConfirmationQueryHandler() queries.GetActionConfirmationQueryHandler {
	return queries.NewGetActionConfirmationQueryHandler(c.store)
}

// CreateServer builds the HTTP adapter with every use case handler.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateApplyOrderActionCommandHandler(),
		c.CreateNotificationActionCommandHandler(),
		c.CreatePanelCommandHandler(),
		c.CreateSelectRoleCommandHandler(),
		c.CreateResetDashboardCommandHandler(),
		c.CreateGetDashboardQueryHandler(),
		c.CreateGetActionConfirmationQueryHandler(),
		c.logger,
	)
}

// CreateJobManager builds the session sweep and the optional demo reset job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateEvictIdleSessionsCommandHandler(),
		c.idleTimeout,
		c.CreateResetDashboardCommandHandler(),
		c.config.DemoResetSchedule,
		c.logger,
	)
}
