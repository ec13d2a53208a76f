package ports

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
)

// OrderCallbacks is fired when a viewer uses an order card action. The
// dashboard does not inspect what the implementation does with the event;
// applying the resulting status locally is the use case's job.
type OrderCallbacks interface {
	OnConfirmOrder(ctx context.Context, orderID string)
	OnRejectOrder(ctx context.Context, orderID string)
	OnAcceptDeliveryJob(ctx context.Context, orderID string)
	OnUpdateDeliveryStatus(ctx context.Context, orderID string, newStatus order.Status)
	OnConfirmDelivery(ctx context.Context, orderID string)
	OnReportIssue(ctx context.Context, orderID string)
}

// NotificationCallback is fired when a viewer accepts, dismisses or views a notification.
type NotificationCallback interface {
	OnNotificationAction(ctx context.Context, id string, action notification.Action)
}
