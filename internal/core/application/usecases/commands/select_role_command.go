package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrSelectRoleCommandIsNotConstructed = errors.New(
	"SelectRoleCommand must be created via NewSelectRoleCommand constructor",
)

// SelectRoleCommand switches the dashboard tab. It touches no order.
type SelectRoleCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	role      kernel.Role

	guard guard.ConstructorGuard
}

// NewSelectRoleCommand creates a command switching the session to role's tab.
func NewSelectRoleCommand(sessionID string, role kernel.Role) (SelectRoleCommand, error) {
	cmd := SelectRoleCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setRole(role),
	); err != nil {
		return SelectRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectRoleCommand) Validate() error {
	return c.guard.Validate(ErrSelectRoleCommandIsNotConstructed)
}

// SessionID returns the viewer session whose tab changes.
func (c SelectRoleCommand) SessionID() string {
	return c.sessionID
}

// Role returns the tab to show.
func (c SelectRoleCommand) Role() kernel.Role {
	return c.role
}

func (c *SelectRoleCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *SelectRoleCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

// SelectRoleCommandHandler stores the active tab of a session.
type SelectRoleCommandHandler struct {
	store ports.DashboardStore
}

// NewSelectRoleCommandHandler creates the handler.
func NewSelectRoleCommandHandler(store ports.DashboardStore) SelectRoleCommandHandler {
	return SelectRoleCommandHandler{store: store}
}

// Handle switches the active role. Order and notification state is untouched.
func (h *SelectRoleCommandHandler) Handle(ctx context.Context, cmd SelectRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.Update(ctx, cmd.SessionID(), func(d *dashboard.Dashboard) error {
		return d.SelectRole(cmd.Role())
	})
}
