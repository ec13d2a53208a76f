// Package seed provides the demo data every new dashboard session starts with.
package seed

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
)

type orderRecord struct {
	id          string
	product     string
	status      string
	orderDate   string
	estDelivery string
	price       kernel.Money
	seller      string
	buyer       string
	delivery    string
	commission  *kernel.Money
}

type notificationRecord struct {
	id         string
	typ        string
	title      string
	message    string
	time       string
	read       bool
	actionable bool
}

type roleRecord struct {
	viewer string
	orders []orderRecord
}

// Statuses use the dashboard's historical vocabulary and are mapped through
// order.ParseStatus.
func roleRecords() map[kernel.Role]roleRecord {
	return map[kernel.Role]roleRecord{
		kernel.RoleBuyer: {
			viewer: "John Doe",
			orders: []orderRecord{
				{
					id: "ORD-001", product: "Wireless Headphones", status: "delivered",
					orderDate: "2023-06-10", estDelivery: "2023-06-15", price: kernel.MustNewMoney(8999),
					seller: "Audio Tech Inc.", delivery: "Mike Johnson",
				},
				{
					id: "ORD-002", product: "Smart Watch", status: "in_transit",
					orderDate: "2023-06-12", estDelivery: "2023-06-18", price: kernel.MustNewMoney(19999),
					seller: "Gadget World", delivery: "Sarah Smith",
				},
				{
					id: "ORD-003", product: "Bluetooth Speaker", status: "pending_confirmation",
					orderDate: "2023-06-15", estDelivery: "2023-06-22", price: kernel.MustNewMoney(5999),
					seller: "Sound Systems Ltd",
				},
			},
		},
		kernel.RoleSeller: {
			viewer: "Tech Store",
			orders: []orderRecord{
				{
					id: "ORD-004", product: "Laptop Stand", status: "pending_confirmation",
					orderDate: "2023-06-16", estDelivery: "2023-06-23", price: kernel.MustNewMoney(2999),
					buyer: "Emma Wilson",
				},
				{
					id: "ORD-005", product: "Mechanical Keyboard", status: "confirmed",
					orderDate: "2023-06-14", estDelivery: "2023-06-21", price: kernel.MustNewMoney(11999),
					buyer: "David Brown",
				},
				{
					id: "ORD-001", product: "Wireless Headphones", status: "delivered",
					orderDate: "2023-06-10", estDelivery: "2023-06-15", price: kernel.MustNewMoney(8999),
					buyer: "John Doe", delivery: "Mike Johnson",
				},
			},
		},
		kernel.RoleDelivery: {
			viewer: "Mike Carrier",
			orders: []orderRecord{
				{
					id: "ORD-002", product: "Smart Watch", status: "in_transit",
					orderDate: "2023-06-12", estDelivery: "2023-06-18", price: kernel.MustNewMoney(19999),
					buyer: "John Doe", seller: "Gadget World", commission: commission(1500),
				},
				{
					id: "ORD-005", product: "Mechanical Keyboard", status: "available",
					orderDate: "2023-06-14", estDelivery: "2023-06-21", price: kernel.MustNewMoney(11999),
					buyer: "David Brown", seller: "Tech Accessories", commission: commission(1000),
				},
				{
					id: "ORD-006", product: "Wireless Mouse", status: "available",
					orderDate: "2023-06-15", estDelivery: "2023-06-20", price: kernel.MustNewMoney(4999),
					buyer: "Lisa Chen", seller: "Computer Peripherals", commission: commission(500),
				},
			},
		},
	}
}

func notificationRecords() []notificationRecord {
	return []notificationRecord{
		{
			id: "1", typ: "delivery", title: "New Delivery Job Available",
			message: "Order #1234 is ready for pickup from Seller Electronics Store.",
			time:    "5 minutes ago", actionable: true,
		},
		{
			id: "2", typ: "order", title: "Order Status Update",
			message: "Order #1122 has been confirmed by the seller.",
			time:    "30 minutes ago",
		},
		{
			id: "3", typ: "confirmation", title: "Delivery Confirmation Needed",
			message: "Please confirm delivery of order #9876 to complete the transaction.",
			time:    "2 hours ago", read: true, actionable: true,
		},
		{
			id: "4", typ: "payment", title: "Payment Released",
			message: "Payment for order #5432 has been released to your account.",
			time:    "1 day ago", read: true,
		},
		{
			id: "5", typ: "alert", title: "Delivery Deadline Approaching",
			message: "Order #7890 needs to be delivered within the next 3 hours.",
			time:    "3 hours ago", actionable: true,
		},
	}
}

// MockDataset implements ports.SeedProvider. Every call to Seed returns a
// fresh dashboard, so sessions never share order instances.
type MockDataset struct {
	defaultRole kernel.Role
}

// NewMockDataset creates a seed whose dashboards open on defaultRole.
func NewMockDataset(defaultRole kernel.Role) (*MockDataset, error) {
	if err := defaultRole.Validate(); err != nil {
		return nil, err
	}
	return &MockDataset{defaultRole: defaultRole}, nil
}

// Seed builds a fresh dashboard from the demo records. Every call returns
// independent orders and notifications.
func (m *MockDataset) Seed(ctx context.Context) (*dashboard.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	datasets := make(map[kernel.Role]dashboard.Dataset, len(kernel.Roles()))
	for role, rec := range roleRecords() {
		orders := make([]*order.Order, 0, len(rec.orders))
		for _, r := range rec.orders {
			o, err := r.toDomain()
			if err != nil {
				return nil, fmt.Errorf("seed %s order %s: %w", role, r.id, err)
			}
			orders = append(orders, o)
		}
		datasets[role] = dashboard.Dataset{ViewerName: rec.viewer, Orders: orders}
	}

	notifications, err := buildNotifications()
	if err != nil {
		return nil, err
	}

	return dashboard.NewDashboard(m.defaultRole, datasets, notifications)
}

func (r orderRecord) toDomain() (*order.Order, error) {
	status, err := order.ParseStatus(r.status)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(r.id, status, order.Details{
		Product:               r.product,
		OrderDate:             r.orderDate,
		Price:                 r.price,
		SellerName:            r.seller,
		BuyerName:             r.buyer,
		DeliveryPersonName:    r.delivery,
		EstimatedDeliveryDate: r.estDelivery,
		Commission:            r.commission,
	})
}

func commission(cents int64) *kernel.Money {
	m := kernel.MustNewMoney(cents)
	return &m
}

func buildNotifications() (notification.List, error) {
	records := notificationRecords()
	items := make([]notification.Notification, 0, len(records))
	var problems []error
	for _, r := range records {
		typ, err := notification.ParseType(r.typ)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		n, err := notification.NewNotification(r.id, typ, r.title, r.message, r.time, r.read, r.actionable)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, n)
	}
	if err := errors.Join(problems...); err != nil {
		return notification.List{}, err
	}
	return notification.NewList(items...)
}
