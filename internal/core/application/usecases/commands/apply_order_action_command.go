package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrApplyOrderActionCommandIsNotConstructed = errors.New(
		"ApplyOrderActionCommand must be created via NewApplyOrderActionCommand constructor",
	)
	// ErrConfirmationRequired is returned when an irreversible action, such as
	// rejecting an order, is fired without the viewer confirming the prompt.
	ErrConfirmationRequired = errors.New("action requires confirmation")
)

// ApplyOrderActionCommand is a click on an order card button.
//
// Example:
//
//	cmd, err := NewApplyOrderActionCommand(sessionID, kernel.RoleSeller, "ORD-004", order.ActionRejectOrder, true)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ApplyOrderActionCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	role      kernel.Role
	orderID   string
	action    order.ActionKind
	confirmed bool

	guard guard.ConstructorGuard
}

// NewApplyOrderActionCommand creates the command. confirmed reports whether the
// viewer accepted the confirmation prompt of the action, if it has one.
func NewApplyOrderActionCommand(
	sessionID string,
	role kernel.Role,
	orderID string,
	action order.ActionKind,
	confirmed bool,
) (ApplyOrderActionCommand, error) {
	cmd := ApplyOrderActionCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setRole(role),
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return ApplyOrderActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyOrderActionCommandIsNotConstructed)
}

// SessionID returns the viewer session the action applies to.
func (c ApplyOrderActionCommand) SessionID() string {
	return c.sessionID
}

// Role returns the tab the action was triggered from.
func (c ApplyOrderActionCommand) Role() kernel.Role {
	return c.role
}

// OrderID returns the order the action targets.
func (c ApplyOrderActionCommand) OrderID() string {
	return c.orderID
}

// Action returns the requested order action.
func (c ApplyOrderActionCommand) Action() order.ActionKind {
	return c.action
}

// Confirmed reports whether the viewer already accepted the confirmation dialog.
func (c ApplyOrderActionCommand) Confirmed() bool {
	return c.confirmed
}

func (c *ApplyOrderActionCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *ApplyOrderActionCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *ApplyOrderActionCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}

func (c *ApplyOrderActionCommand) setAction(action order.ActionKind) error {
	if action == order.ActionUnknown {
		return errs.NewValueIsRequiredError("action")
	}
	c.action = action
	return nil
}
