package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ApplyOrderActionCommandHandler fires an order card action.
//
// The handler only accepts actions the card actually offers for the order's
// status and the viewer's role. It then invokes the matching callback and
// moves the local copy of the order to the action's resulting status. Nothing
// is checked against a backend.
type ApplyOrderActionCommandHandler struct {
	store     ports.DashboardStore
	callbacks ports.OrderCallbacks
}

// NewApplyOrderActionCommandHandler creates the handler.
func NewApplyOrderActionCommandHandler(
	store ports.DashboardStore,
	callbacks ports.OrderCallbacks,
) ApplyOrderActionCommandHandler {
	return ApplyOrderActionCommandHandler{
		store:     store,
		callbacks: callbacks,
	}
}

// Handle returns order.ErrActionNotAvailable when the card does not show the
// action and ErrConfirmationRequired when a prompt was not confirmed. In both
// cases no callback fires.
func (h *ApplyOrderActionCommandHandler) Handle(ctx context.Context, cmd ApplyOrderActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.Update(ctx, cmd.SessionID(), func(d *dashboard.Dashboard) error {
		o, err := d.FindOrder(cmd.Role(), cmd.OrderID())
		if err != nil {
			return err
		}

		action, err := order.ResolveAction(o.Status(), cmd.Role(), cmd.Action())
		if err != nil {
			return err
		}

		if action.RequiresConfirmation() && !cmd.Confirmed() {
			return ErrConfirmationRequired
		}

		if err = h.fire(ctx, o.ID(), action); err != nil {
			return err
		}

		return o.ChangeStatus(action.Result())
	})
}

func (h *ApplyOrderActionCommandHandler) fire(ctx context.Context, orderID string, action order.Action) error {
	switch action.Callback() {
	case order.CallbackConfirmOrder:
		h.callbacks.OnConfirmOrder(ctx, orderID)
	case order.CallbackRejectOrder:
		h.callbacks.OnRejectOrder(ctx, orderID)
	case order.CallbackAcceptDeliveryJob:
		h.callbacks.OnAcceptDeliveryJob(ctx, orderID)
	case order.CallbackUpdateDeliveryStatus:
		h.callbacks.OnUpdateDeliveryStatus(ctx, orderID, action.Result())
	case order.CallbackConfirmDelivery:
		h.callbacks.OnConfirmDelivery(ctx, orderID)
	case order.CallbackReportIssue:
		h.callbacks.OnReportIssue(ctx, orderID)
	case order.CallbackUnknown:
		return errs.NewValueIsInvalidErrorWithCause(
			"callback",
			fmt.Errorf("%s has no callback", action.Kind()),
		)
	}
	return nil
}
