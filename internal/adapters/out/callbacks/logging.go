// Package callbacks holds the default integration for order and notification
// callbacks. It records each event as a structured log line; a real backend
// would replace it behind the same ports.
package callbacks

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
)

// Logging implements ports.OrderCallbacks and ports.NotificationCallback by
// writing one structured log line per callback.
type Logging struct {
	logger *slog.Logger
}

// NewLogging creates the callbacks; logger is tagged with component=callbacks.
func NewLogging(logger *slog.Logger) *Logging {
	return &Logging{logger: logger.With("component", "callbacks")}
}

// OnConfirmOrder logs a seller confirming an order.
func (l *Logging) OnConfirmOrder(ctx context.Context, orderID string) {
	l.order(ctx, order.CallbackConfirmOrder, orderID)
}

// OnRejectOrder logs a seller rejecting an order.
func (l *Logging) OnRejectOrder(ctx context.Context, orderID string) {
	l.order(ctx, order.CallbackRejectOrder, orderID)
}

// OnAcceptDeliveryJob logs a delivery person taking a job.
func (l *Logging) OnAcceptDeliveryJob(ctx context.Context, orderID string) {
	l.order(ctx, order.CallbackAcceptDeliveryJob, orderID)
}

// OnUpdateDeliveryStatus logs a delivery progress step with the new status.
func (l *Logging) OnUpdateDeliveryStatus(ctx context.Context, orderID string, newStatus order.Status) {
	l.order(ctx, order.CallbackUpdateDeliveryStatus, orderID, "new_status", newStatus.String())
}

// OnConfirmDelivery logs a buyer confirming receipt.
func (l *Logging) OnConfirmDelivery(ctx context.Context, orderID string) {
	l.order(ctx, order.CallbackConfirmDelivery, orderID)
}

// OnReportIssue logs a buyer opening a dispute.
func (l *Logging) OnReportIssue(ctx context.Context, orderID string) {
	l.order(ctx, order.CallbackReportIssue, orderID)
}

// OnNotificationAction logs an accept, dismiss or view on a notification.
func (l *Logging) OnNotificationAction(ctx context.Context, id string, action notification.Action) {
	l.logger.InfoContext(ctx, "Notification action",
		"notification_id", id,
		"action", action.String(),
	)
}

func (l *Logging) order(ctx context.Context, cb order.Callback, orderID string, args ...any) {
	attrs := append([]any{"callback", cb.String(), "order_id", orderID}, args...)
	l.logger.InfoContext(ctx, "Order callback", attrs...)
}
