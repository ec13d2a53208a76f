package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// PanelOperation is a notification panel control that takes no arguments.
type PanelOperation int

const (
	PanelOperationUnknown PanelOperation = iota
	PanelOperationMarkAllRead
	PanelOperationClearAll
	PanelOperationToggle
)

func (o PanelOperation) String() string {
	switch o {
	case PanelOperationMarkAllRead:
		return "mark_all_read"
	case PanelOperationClearAll:
		return "clear_all"
	case PanelOperationToggle:
		return "toggle"
	case PanelOperationUnknown:
	}
	return "unknown"
}

var ErrPanelCommandIsNotConstructed = errors.New("PanelCommand must be created via NewPanelCommand constructor")

// PanelCommand marks all notifications read, clears them or expands and
// collapses the panel. None of these fire the notification callback.
type PanelCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	operation PanelOperation

	guard guard.ConstructorGuard
}

// NewPanelCommand creates a command for one panel operation.
func NewPanelCommand(sessionID string, operation PanelOperation) (PanelCommand, error) {
	cmd := PanelCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setOperation(operation),
	); err != nil {
		return PanelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PanelCommand) Validate() error {
	return c.guard.Validate(ErrPanelCommandIsNotConstructed)
}

// SessionID returns the viewer session whose panel changes.
func (c PanelCommand) SessionID() string {
	return c.sessionID
}

// Operation returns the requested panel operation.
func (c PanelCommand) Operation() PanelOperation {
	return c.operation
}

func (c *PanelCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *PanelCommand) setOperation(operation PanelOperation) error {
	switch operation {
	case PanelOperationMarkAllRead, PanelOperationClearAll, PanelOperationToggle:
		c.operation = operation
		return nil
	case PanelOperationUnknown:
	}
	return errs.NewValueIsRequiredError("panel operation")
}

// PanelCommandHandler applies PanelCommand to the session's dashboard.
type PanelCommandHandler struct {
	store ports.DashboardStore
}

// NewPanelCommandHandler creates the handler.
func NewPanelCommandHandler(store ports.DashboardStore) PanelCommandHandler {
	return PanelCommandHandler{store: store}
}

// Handle marks every notification read, clears the list or toggles the panel.
func (h *PanelCommandHandler) Handle(ctx context.Context, cmd PanelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.Update(ctx, cmd.SessionID(), func(d *dashboard.Dashboard) error {
		switch cmd.Operation() {
		case PanelOperationMarkAllRead:
			d.ReplaceNotifications(d.Notifications().MarkAllRead())
		case PanelOperationClearAll:
			d.ReplaceNotifications(d.Notifications().ClearAll())
		case PanelOperationToggle:
			d.TogglePanel()
		case PanelOperationUnknown:
		}
		return nil
	})
}
