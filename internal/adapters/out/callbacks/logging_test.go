package callbacks_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"marketplace/internal/adapters/out/callbacks"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.OrderCallbacks       = (*callbacks.Logging)(nil)
	_ ports.NotificationCallback = (*callbacks.Logging)(nil)
)

func newLogging(buf *bytes.Buffer) *callbacks.Logging {
	return callbacks.NewLogging(slog.New(slog.NewJSONHandler(buf, nil)))
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogging(t *testing.T) {
	t.Run("order callbacks log their name", func(t *testing.T) {
		tests := []struct {
			name string
			call func(l *callbacks.Logging)
			want string
		}{
			{"confirm", func(l *callbacks.Logging) { l.OnConfirmOrder(t.Context(), "ORD-004") }, "onConfirmOrder"},
			{"reject", func(l *callbacks.Logging) { l.OnRejectOrder(t.Context(), "ORD-004") }, "onRejectOrder"},
			{"accept job", func(l *callbacks.Logging) { l.OnAcceptDeliveryJob(t.Context(), "ORD-004") }, "onAcceptDeliveryJob"},
			{"confirm delivery", func(l *callbacks.Logging) { l.OnConfirmDelivery(t.Context(), "ORD-004") }, "onConfirmDelivery"},
			{"report issue", func(l *callbacks.Logging) { l.OnReportIssue(t.Context(), "ORD-004") }, "onReportIssue"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				tt.call(newLogging(&buf))

				entry := decode(t, &buf)
				assert.Equal(t, "Order callback", entry["msg"])
				assert.Equal(t, "callbacks", entry["component"])
				assert.Equal(t, tt.want, entry["callback"])
				assert.Equal(t, "ORD-004", entry["order_id"])
			})
		}
	})

	t.Run("delivery status carries the new status", func(t *testing.T) {
		var buf bytes.Buffer

		newLogging(&buf).OnUpdateDeliveryStatus(t.Context(), "ORD-002", order.PackageArrived)

		entry := decode(t, &buf)
		assert.Equal(t, "onUpdateDeliveryStatus", entry["callback"])
		assert.Equal(t, "package_arrived", entry["new_status"])
	})

	t.Run("notification action", func(t *testing.T) {
		var buf bytes.Buffer

		newLogging(&buf).OnNotificationAction(t.Context(), "3", notification.ActionDismiss)

		entry := decode(t, &buf)
		assert.Equal(t, "3", entry["notification_id"])
		assert.Equal(t, "dismiss", entry["action"])
	})
}
