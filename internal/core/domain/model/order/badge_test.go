package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Badge(t *testing.T) {
	t.Run("should map every status to exactly one non empty badge", func(t *testing.T) {
		labels := map[string]order.Status{}
		for _, s := range order.Statuses() {
			b, err := s.Badge()

			require.NoError(t, err, s.String())
			assert.NotEmpty(t, b.Label, s.String())
			assert.NotEqual(t, order.SeverityUnknown, b.Severity, s.String())
			assert.NotEmpty(t, b.Severity.Variant(), s.String())

			prev, dup := labels[b.Label]
			assert.False(t, dup, "label %q used by %s and %s", b.Label, prev, s)
			labels[b.Label] = s
		}
	})

	t.Run("should use the card labels and tiers", func(t *testing.T) {
		testCases := []struct {
			status  order.Status
			label   string
			variant string
		}{
			{order.PendingSellerConfirmation, "Pending Seller Confirmation", "outline"},
			{order.Confirmed, "Confirmed", "secondary"},
			{order.Rejected, "Rejected", "destructive"},
			{order.PackageInTransit, "In Transit", "secondary"},
			{order.AwaitingBuyerConfirmation, "Awaiting Buyer Confirmation", "outline"},
			{order.DeliveryConfirmed, "Delivery Confirmed", "default"},
			{order.Dispute, "Dispute", "destructive"},
			{order.Completed, "Completed", "default"},
		}

		for _, tc := range testCases {
			b, err := tc.status.Badge()
			require.NoError(t, err)
			assert.Equal(t, tc.label, b.Label)
			assert.Equal(t, tc.variant, b.Severity.Variant())
		}
	})

	t.Run("should fail loudly on unmapped statuses", func(t *testing.T) {
		_, err := order.Unknown.Badge()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.Status(99).Badge()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
