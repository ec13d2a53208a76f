package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, status order.Status, mutate func(*order.Details)) *order.Order {
	t.Helper()
	commission := kernel.MustNewMoney(1000)
	d := order.Details{
		Product:               "Mechanical Keyboard",
		OrderDate:             "2023-06-15",
		Price:                 kernel.MustNewMoney(11999),
		SellerName:            "Tech Accessories",
		BuyerName:             "David Brown",
		EstimatedDeliveryDate: "2023-06-20",
		Commission:            &commission,
	}
	if mutate != nil {
		mutate(&d)
	}
	o, err := order.NewOrder("ORD-005", status, d)
	require.NoError(t, err)
	return o
}

func labels(card services.OrderCard) []string {
	out := make([]string, 0, len(card.Fields))
	for _, f := range card.Fields {
		out = append(out, f.Label)
	}
	return out
}

func field(card services.OrderCard, label string) (string, bool) {
	for _, f := range card.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

func TestOrderCardPresenter_Present(t *testing.T) {
	presenter := services.NewOrderCardPresenter()

	t.Run("buyer does not see the buyer field", func(t *testing.T) {
		card, err := presenter.Present(newOrder(t, order.Confirmed, nil), kernel.RoleBuyer)

		require.NoError(t, err)
		assert.Equal(t, "Mechanical Keyboard", card.Title)
		assert.Equal(t, "ORD-005", card.OrderID)
		assert.Equal(t, "Confirmed", card.Badge.Label)
		assert.Equal(t,
			[]string{services.FieldOrderID, services.FieldOrderDate, services.FieldPrice, services.FieldSeller, services.FieldEstDelivery},
			labels(card))
		price, _ := field(card, services.FieldPrice)
		assert.Equal(t, "$119.99", price)
	})

	t.Run("seller does not see the seller field", func(t *testing.T) {
		card, err := presenter.Present(newOrder(t, order.Confirmed, nil), kernel.RoleSeller)

		require.NoError(t, err)
		_, hasSeller := field(card, services.FieldSeller)
		buyer, hasBuyer := field(card, services.FieldBuyer)
		assert.False(t, hasSeller)
		assert.True(t, hasBuyer)
		assert.Equal(t, "David Brown", buyer)
	})

	t.Run("delivery sees both parties and the commission", func(t *testing.T) {
		card, err := presenter.Present(newOrder(t, order.DeliveryJobAvailable, nil), kernel.RoleDelivery)

		require.NoError(t, err)
		commission, ok := field(card, services.FieldCommission)
		assert.True(t, ok)
		assert.Equal(t, "$10.00", commission)
		assert.Contains(t, labels(card), services.FieldSeller)
		assert.Contains(t, labels(card), services.FieldBuyer)
		require.Len(t, card.Actions.Actions(), 1)
		assert.Equal(t, "Accept Delivery Job", card.Actions.Actions()[0].Label())
	})

	t.Run("delivery person is shown only once assigned", func(t *testing.T) {
		unassigned, err := presenter.Present(newOrder(t, order.Confirmed, nil), kernel.RoleBuyer)
		require.NoError(t, err)
		_, ok := field(unassigned, services.FieldDeliveryPerson)
		assert.False(t, ok)

		assigned, err := presenter.Present(newOrder(t, order.DeliveryAssigned, func(d *order.Details) {
			d.DeliveryPersonName = "Mike Carrier"
		}), kernel.RoleBuyer)
		require.NoError(t, err)
		name, ok := field(assigned, services.FieldDeliveryPerson)
		assert.True(t, ok)
		assert.Equal(t, "Mike Carrier", name)
	})

	t.Run("rejected orders hide the estimated delivery", func(t *testing.T) {
		card, err := presenter.Present(newOrder(t, order.Rejected, nil), kernel.RoleBuyer)

		require.NoError(t, err)
		_, ok := field(card, services.FieldEstDelivery)
		assert.False(t, ok)
		assert.Equal(t, "destructive", card.Badge.Severity.Variant())
	})

	t.Run("actions follow the status and role", func(t *testing.T) {
		o := newOrder(t, order.PendingSellerConfirmation, nil)

		sellerCard, err := presenter.Present(o, kernel.RoleSeller)
		require.NoError(t, err)
		buyerCard, err := presenter.Present(o, kernel.RoleBuyer)
		require.NoError(t, err)

		assert.Equal(t, order.GroupConfirmReject, sellerCard.Actions.Shape())
		assert.True(t, buyerCard.Actions.IsEmpty())
	})

	t.Run("invalid input fails", func(t *testing.T) {
		_, err := presenter.Present(&order.Order{}, kernel.RoleBuyer)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)

		_, err = presenter.Present(newOrder(t, order.Confirmed, nil), kernel.RoleUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
