package commands

import (
	"context"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/ports"
)

// NotificationActionCommandHandler reports the click through the
// NotificationCallback and applies it to the session's notification list.
// A click on an id that is no longer in the list does nothing.
type NotificationActionCommandHandler struct {
	store    ports.DashboardStore
	callback ports.NotificationCallback
}

// NewNotificationActionCommandHandler creates the handler.
func NewNotificationActionCommandHandler(
	store ports.DashboardStore,
	callback ports.NotificationCallback,
) NotificationActionCommandHandler {
	return NotificationActionCommandHandler{
		store:    store,
		callback: callback,
	}
}

// Handle applies the action to the session's notification list and fires the
// notification callback.
func (h *NotificationActionCommandHandler) Handle(ctx context.Context, cmd NotificationActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.Update(ctx, cmd.SessionID(), func(d *dashboard.Dashboard) error {
		list := d.Notifications()
		if _, ok := list.Find(cmd.NotificationID()); !ok {
			return nil
		}

		next, err := list.Apply(cmd.NotificationID(), cmd.Action())
		if err != nil {
			return err
		}

		h.callback.OnNotificationAction(ctx, cmd.NotificationID(), cmd.Action())
		d.ReplaceNotifications(next)
		return nil
	})
}
