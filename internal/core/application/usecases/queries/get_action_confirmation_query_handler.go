package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// GetActionConfirmationQueryHandler looks up the confirmation prompt of an order action.
type GetActionConfirmationQueryHandler struct {
	store ports.DashboardStore
}

// NewGetActionConfirmationQueryHandler creates the handler.
func NewGetActionConfirmationQueryHandler(store ports.DashboardStore) GetActionConfirmationQueryHandler {
	return GetActionConfirmationQueryHandler{store: store}
}

// Handle returns order.ErrActionNotAvailable when the order's card does not
// currently offer the action to the role.
func (h GetActionConfirmationQueryHandler) Handle(
	ctx context.Context,
	query GetActionConfirmationQuery,
) (GetActionConfirmationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActionConfirmationQueryResponse{}, err
	}

	d, err := h.store.Load(ctx, query.SessionID())
	if err != nil {
		return GetActionConfirmationQueryResponse{}, err
	}

	o, err := d.FindOrder(query.Role(), query.OrderID())
	if err != nil {
		return GetActionConfirmationQueryResponse{}, err
	}

	action, err := order.ResolveAction(o.Status(), query.Role(), query.Action())
	if err != nil {
		return GetActionConfirmationQueryResponse{}, err
	}

	return GetActionConfirmationQueryResponse{
		OrderID: o.ID(),
		Product: o.Details().Product,
		Role:    query.Role(),
		Action:  action.Kind(),
		Label:   action.Label(),
		Prompt:  action.Prompt(),
	}, nil
}
