package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

const dashboardTitle = "Delivery Service Dashboard"

// GetDashboardQueryHandler assembles the page for the session's active tab.
type GetDashboardQueryHandler struct {
	store  ports.DashboardStore
	cards  services.OrderCardPresenter
	panels services.NotificationPanelPresenter
}

// NewGetDashboardQueryHandler creates the handler.
func NewGetDashboardQueryHandler(
	store ports.DashboardStore,
	cards services.OrderCardPresenter,
	panels services.NotificationPanelPresenter,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		store:  store,
		cards:  cards,
		panels: panels,
	}
}

// Handle selects the active role's dataset and renders its cards and the
// shared notification panel. Orders keep their dataset order.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	d, err := h.store.Load(ctx, query.SessionID())
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	role := d.ActiveRole()
	orders := d.Orders(role)
	cards := make([]services.OrderCard, 0, len(orders))
	for _, o := range orders {
		card, cardErr := h.cards.Present(o, role)
		if cardErr != nil {
			return GetDashboardQueryResponse{}, cardErr
		}
		cards = append(cards, card)
	}

	panel, err := h.panels.Present(d.Notifications(), role, d.PanelExpanded())
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return GetDashboardQueryResponse{
		Title:      dashboardTitle,
		Role:       role,
		ViewerName: d.ViewerName(role),
		Tabs:       tabs(role),
		Section:    section(role),
		Cards:      cards,
		Panel:      panel,
	}, nil
}

func tabs(active kernel.Role) []Tab {
	out := make([]Tab, 0, len(kernel.Roles()))
	for _, r := range kernel.Roles() {
		out = append(out, Tab{Role: r, Label: tabLabel(r), Active: r == active})
	}
	return out
}

func tabLabel(role kernel.Role) string {
	switch role {
	case kernel.RoleBuyer:
		return "Buyer"
	case kernel.RoleSeller:
		return "Seller"
	case kernel.RoleDelivery:
		return "Delivery Person"
	case kernel.RoleUnknown:
	}
	return ""
}

func section(role kernel.Role) Section {
	switch role {
	case kernel.RoleBuyer:
		return Section{Title: "My Orders", Description: "Track and manage your purchases"}
	case kernel.RoleSeller:
		return Section{Title: "Orders to Fulfill", Description: "Manage your sales and shipments"}
	case kernel.RoleDelivery:
		return Section{Title: "Delivery Jobs", Description: "View available and current delivery assignments"}
	case kernel.RoleUnknown:
	}
	return Section{}
}
