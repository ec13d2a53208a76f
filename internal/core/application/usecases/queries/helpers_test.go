package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "0b8f3c1d-7c51-4d0c-8f0e-5a9b0c6e2f44"

type MockDashboardStore struct{ mock.Mock }

func (m *MockDashboardStore) Load(ctx context.Context, id string) (*dashboard.Dashboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Dashboard), args.Error(1)
}

func (m *MockDashboardStore) Update(ctx context.Context, id string, fn func(d *dashboard.Dashboard) error) error {
	args := m.Called(ctx, id, fn)
	return args.Error(0)
}

func (m *MockDashboardStore) Reset(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDashboardStore) ResetAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newDashboard(t *testing.T, active kernel.Role) *dashboard.Dashboard {
	t.Helper()
	newOrder := func(id string, status order.Status, details order.Details) *order.Order {
		o, err := order.NewOrder(id, status, details)
		require.NoError(t, err)
		return o
	}
	commission := kernel.MustNewMoney(500)

	n1, err := notification.NewNotification("1", notification.TypeDelivery, "New Delivery Job Available",
		"Order #1234 is ready for pickup.", "5 minutes ago", false, true)
	require.NoError(t, err)
	n2, err := notification.NewNotification("2", notification.TypePayment, "Payment Released",
		"Payment for order #5432 has been released.", "1 day ago", true, false)
	require.NoError(t, err)
	list, err := notification.NewList(n1, n2)
	require.NoError(t, err)

	d, err := dashboard.NewDashboard(active, map[kernel.Role]dashboard.Dataset{
		kernel.RoleBuyer: {
			ViewerName: "John Doe",
			Orders: []*order.Order{
				newOrder("ORD-001", order.AwaitingBuyerConfirmation, order.Details{
					Product: "Wireless Headphones", Price: kernel.MustNewMoney(8999), SellerName: "Audio Tech Inc.",
				}),
			},
		},
		kernel.RoleSeller: {
			ViewerName: "Tech Store",
			Orders: []*order.Order{
				newOrder("ORD-004", order.PendingSellerConfirmation, order.Details{
					Product: "Laptop Stand", Price: kernel.MustNewMoney(2999), BuyerName: "Emma Wilson",
				}),
				newOrder("ORD-005", order.Confirmed, order.Details{
					Product: "Mechanical Keyboard", Price: kernel.MustNewMoney(11999), BuyerName: "David Brown",
				}),
			},
		},
		kernel.RoleDelivery: {
			ViewerName: "Mike Carrier",
			Orders: []*order.Order{
				newOrder("ORD-006", order.DeliveryJobAvailable, order.Details{
					Product: "Wireless Mouse", Price: kernel.MustNewMoney(4999), Commission: &commission,
				}),
			},
		},
	}, list)
	require.NoError(t, err)
	return d
}
