package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

const emptyPanelText = "No notifications at this time"

// NotificationItem is one row of the panel.
type NotificationItem struct {
	ID      string
	Type    notification.Type
	Title   string
	Message string
	Time    string
	Read    bool
	// ShowControls is true for actionable notifications, which get accept and dismiss buttons.
	ShowControls bool
}

// NotificationPanel is the rendered notification list.
type NotificationPanel struct {
	Title       string
	Subtitle    string
	UnreadCount int
	Expanded    bool
	EmptyText   string
	Items       []NotificationItem
}

// NotificationPanelPresenter renders the notification list for the panel.
type NotificationPanelPresenter struct{}

// NewNotificationPanelPresenter creates the presenter.
func NewNotificationPanelPresenter() NotificationPanelPresenter {
	return NotificationPanelPresenter{}
}

// Present renders the list for role. The unread count is recomputed on every call.
func (NotificationPanelPresenter) Present(
	l notification.List,
	role kernel.Role,
	expanded bool,
) (NotificationPanel, error) {
	if err := role.Validate(); err != nil {
		return NotificationPanel{}, err
	}

	items := make([]NotificationItem, 0, l.Len())
	for _, n := range l.Items() {
		items = append(items, NotificationItem{
			ID:           n.ID(),
			Type:         n.Type(),
			Title:        n.Title(),
			Message:      n.Message(),
			Time:         n.Time(),
			Read:         n.IsRead(),
			ShowControls: n.IsActionable(),
		})
	}

	panel := NotificationPanel{
		Title:       "Notifications",
		Subtitle:    panelSubtitle(role),
		UnreadCount: l.UnreadCount(),
		Expanded:    expanded,
		Items:       items,
	}
	if len(items) == 0 {
		panel.EmptyText = emptyPanelText
	}
	return panel, nil
}

func panelSubtitle(role kernel.Role) string {
	switch role {
	case kernel.RoleBuyer:
		return "Track your orders and delivery status"
	case kernel.RoleSeller:
		return "Manage your orders and confirmations"
	case kernel.RoleDelivery:
		return "View available delivery jobs and updates"
	case kernel.RoleUnknown:
	}
	return ""
}
