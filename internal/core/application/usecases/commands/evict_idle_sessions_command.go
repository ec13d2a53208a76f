package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrEvictIdleSessionsCommandIsNotConstructed = errors.New(
	"EvictIdleSessionsCommand must be created via NewEvictIdleSessionsCommand constructor",
)

// EvictIdleSessionsCommand forgets the dashboards of sessions that have been
// idle for longer than the timeout.
type EvictIdleSessionsCommand struct {
	idleTimeout time.Duration

	guard guard.ConstructorGuard
}

// NewEvictIdleSessionsCommand creates the command. idleTimeout must be positive.
func NewEvictIdleSessionsCommand(idleTimeout time.Duration) (EvictIdleSessionsCommand, error) {
	if idleTimeout <= 0 {
		return EvictIdleSessionsCommand{}, errs.NewValueIsOutOfRangeError(
			"idleTimeout", idleTimeout, "1ns", "unbounded",
		)
	}
	return EvictIdleSessionsCommand{
		idleTimeout: idleTimeout,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by its constructor.
func (c EvictIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrEvictIdleSessionsCommandIsNotConstructed)
}

// IdleTimeout returns how long a session may go unused before it is evicted.
func (c EvictIdleSessionsCommand) IdleTimeout() time.Duration {
	return c.idleTimeout
}

// EvictIdleSessionsCommandHandler runs EvictIdleSessionsCommand against a SessionEvictor.
type EvictIdleSessionsCommandHandler struct {
	evictor ports.SessionEvictor
	now     func() time.Time
}

// NewEvictIdleSessionsCommandHandler creates the handler.
func NewEvictIdleSessionsCommandHandler(evictor ports.SessionEvictor) EvictIdleSessionsCommandHandler {
	return EvictIdleSessionsCommandHandler{evictor: evictor, now: time.Now}
}

// Handle evicts the idle sessions and reports how many were dropped.
func (h *EvictIdleSessionsCommandHandler) Handle(ctx context.Context, cmd EvictIdleSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.evictor.EvictIdle(ctx, h.now().Add(-cmd.IdleTimeout()))
}
