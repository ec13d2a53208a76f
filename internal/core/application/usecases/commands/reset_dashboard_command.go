package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrResetDashboardCommandIsNotConstructed = errors.New(
	"ResetDashboardCommand must be created via NewResetDashboardCommand constructor",
)

// ResetDashboardCommand restores one session's orders and notifications to the seed.
// An empty session id resets every session.
type ResetDashboardCommand struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewResetDashboardCommand creates a command resetting a single session.
func NewResetDashboardCommand(sessionID string) (ResetDashboardCommand, error) {
	if err := validateSessionID(sessionID); err != nil {
		return ResetDashboardCommand{}, err
	}
	return ResetDashboardCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewResetAllDashboardsCommand creates a command resetting every session.
func NewResetAllDashboardsCommand() ResetDashboardCommand {
	return ResetDashboardCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ResetDashboardCommand) Validate() error {
	return c.guard.Validate(ErrResetDashboardCommandIsNotConstructed)
}

// SessionID returns the session to reset; empty for every session.
func (c ResetDashboardCommand) SessionID() string {
	return c.sessionID
}

// IsAll reports whether every session is reset.
func (c ResetDashboardCommand) IsAll() bool {
	return c.sessionID == ""
}

// ResetDashboardCommandHandler restores dashboards to the seed.
type ResetDashboardCommandHandler struct {
	store ports.DashboardStore
}

// NewResetDashboardCommandHandler creates the handler.
func NewResetDashboardCommandHandler(store ports.DashboardStore) ResetDashboardCommandHandler {
	return ResetDashboardCommandHandler{store: store}
}

// Handle resets one session, or forgets them all for IsAll commands.
func (h *ResetDashboardCommandHandler) Handle(ctx context.Context, cmd ResetDashboardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.IsAll() {
		return h.store.ResetAll(ctx)
	}
	return h.store.Reset(ctx, cmd.SessionID())
}
