package commands_test

import (
	"context"
	"sync"
	"testing"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "3f1c2b6e-8a55-4a37-9d0e-2d2d8a0c5b11"

// fakeStore keeps a single dashboard and commits updates only on success.
type fakeStore struct {
	mu        sync.Mutex
	seed      *dashboard.Dashboard
	current   *dashboard.Dashboard
	resets    []string
	resetAlls int
}

func newFakeStore(d *dashboard.Dashboard) *fakeStore {
	return &fakeStore{seed: d.Clone(), current: d}
}

func (s *fakeStore) Load(_ context.Context, _ string) (*dashboard.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone(), nil
}

func (s *fakeStore) Update(_ context.Context, _ string, fn func(d *dashboard.Dashboard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.current.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.current = draft
	return nil
}

func (s *fakeStore) Reset(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets = append(s.resets, id)
	s.current = s.seed.Clone()
	return nil
}

func (s *fakeStore) ResetAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetAlls++
	s.current = s.seed.Clone()
	return nil
}

type MockOrderCallbacks struct{ mock.Mock }

func (m *MockOrderCallbacks) OnConfirmOrder(ctx context.Context, orderID string) {
	m.Called(ctx, orderID)
}

func (m *MockOrderCallbacks) OnRejectOrder(ctx context.Context, orderID string) {
	m.Called(ctx, orderID)
}

func (m *MockOrderCallbacks) OnAcceptDeliveryJob(ctx context.Context, orderID string) {
	m.Called(ctx, orderID)
}

func (m *MockOrderCallbacks) OnUpdateDeliveryStatus(ctx context.Context, orderID string, newStatus order.Status) {
	m.Called(ctx, orderID, newStatus)
}

func (m *MockOrderCallbacks) OnConfirmDelivery(ctx context.Context, orderID string) {
	m.Called(ctx, orderID)
}

func (m *MockOrderCallbacks) OnReportIssue(ctx context.Context, orderID string) {
	m.Called(ctx, orderID)
}

type MockNotificationCallback struct{ mock.Mock }

func (m *MockNotificationCallback) OnNotificationAction(ctx context.Context, id string, action notification.Action) {
	m.Called(ctx, id, action)
}

func mustOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, status, order.Details{Product: "Item " + id, Price: kernel.MustNewMoney(1999)})
	require.NoError(t, err)
	return o
}

func mustNotification(t *testing.T, id string, read bool) notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(id, notification.TypeOrder, "Title "+id, "Message "+id, "5 minutes ago", read, true)
	require.NoError(t, err)
	return n
}

func newDashboard(t *testing.T) *dashboard.Dashboard {
	t.Helper()
	list, err := notification.NewList(
		mustNotification(t, "1", false),
		mustNotification(t, "2", false),
		mustNotification(t, "3", true),
	)
	require.NoError(t, err)

	d, err := dashboard.NewDashboard(kernel.RoleBuyer, map[kernel.Role]dashboard.Dataset{
		kernel.RoleBuyer: {
			ViewerName: "John Doe",
			Orders: []*order.Order{
				mustOrder(t, "ORD-001", order.AwaitingBuyerConfirmation),
				mustOrder(t, "ORD-002", order.PackageInTransit),
			},
		},
		kernel.RoleSeller: {
			ViewerName: "Tech Store",
			Orders: []*order.Order{
				mustOrder(t, "ORD-004", order.PendingSellerConfirmation),
				mustOrder(t, "ORD-001", order.AwaitingBuyerConfirmation),
			},
		},
		kernel.RoleDelivery: {
			ViewerName: "Mike Carrier",
			Orders: []*order.Order{
				mustOrder(t, "ORD-002", order.PackageInTransit),
				mustOrder(t, "ORD-006", order.DeliveryJobAvailable),
				mustOrder(t, "ORD-007", order.InProgress),
			},
		},
	}, list)
	require.NoError(t, err)
	return d
}

func statusOf(t *testing.T, store *fakeStore, role kernel.Role, id string) order.Status {
	t.Helper()
	d, err := store.Load(t.Context(), sessionID)
	require.NoError(t, err)
	o, err := d.FindOrder(role, id)
	require.NoError(t, err)
	return o.Status()
}
