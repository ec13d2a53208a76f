package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrNotificationActionCommandIsNotConstructed = errors.New(
	"NotificationActionCommand must be created via NewNotificationActionCommand constructor",
)

// NotificationActionCommand is an accept, dismiss or view click on one notification.
type NotificationActionCommand struct { //nolint:recvcheck //using for validation
	sessionID      string
	notificationID string
	action         notification.Action

	guard guard.ConstructorGuard
}

// NewNotificationActionCommand creates a command for one notification button.
// The id is not checked against the list; an unknown id is ignored by the handler.
func NewNotificationActionCommand(
	sessionID string,
	notificationID string,
	action notification.Action,
) (NotificationActionCommand, error) {
	cmd := NotificationActionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setNotificationID(notificationID),
		cmd.setAction(action),
	); err != nil {
		return NotificationActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotificationActionCommand) Validate() error {
	return c.guard.Validate(ErrNotificationActionCommandIsNotConstructed)
}

// SessionID returns the viewer session the action applies to.
func (c NotificationActionCommand) SessionID() string {
	return c.sessionID
}

// NotificationID returns the notification the action targets.
func (c NotificationActionCommand) NotificationID() string {
	return c.notificationID
}

// Action returns accept, dismiss or view.
func (c NotificationActionCommand) Action() notification.Action {
	return c.action
}

func (c *NotificationActionCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *NotificationActionCommand) setNotificationID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("notification id")
	}
	c.notificationID = id
	return nil
}

func (c *NotificationActionCommand) setAction(action notification.Action) error {
	if action == notification.ActionUnknown {
		return errs.NewValueIsRequiredError("notification action")
	}
	c.action = action
	return nil
}
