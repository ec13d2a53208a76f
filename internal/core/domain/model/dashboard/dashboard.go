// Package dashboard holds the per-viewer dashboard aggregate: the selected
// role, one order dataset per role and the shared notification panel.
package dashboard

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

var ErrDashboardIsNotConstructed = errors.New("Dashboard must be created via NewDashboard constructor")

// Dataset is what one role sees: the viewer's display name and its orders.
type Dataset struct {
	ViewerName string
	Orders     []*order.Order
}

// Dashboard is the state one viewer interacts with. Switching role is a pure
// selection; every role keeps its own copy of its orders, so an order that
// appears under two roles changes independently on each.
type Dashboard struct {
	activeRole    kernel.Role
	datasets      map[kernel.Role]Dataset
	notifications notification.List
	panelExpanded bool
	isConstructed bool
}

// NewDashboard creates a dashboard showing activeRole. Every role must have a dataset.
func NewDashboard(
	activeRole kernel.Role,
	datasets map[kernel.Role]Dataset,
	notifications notification.List,
) (*Dashboard, error) {
	if err := activeRole.Validate(); err != nil {
		return nil, err
	}

	d := &Dashboard{
		activeRole:    activeRole,
		datasets:      make(map[kernel.Role]Dataset, len(datasets)),
		notifications: notifications,
		isConstructed: true,
	}

	var problems []error
	for _, role := range kernel.Roles() {
		ds, ok := datasets[role]
		if !ok {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("%s dataset", role)))
			continue
		}
		problems = append(problems, d.setDataset(role, ds))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the dashboard was created through NewDashboard.
func (d *Dashboard) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDashboardIsNotConstructed
	}
	return nil
}

// ActiveRole returns the tab currently shown.
func (d *Dashboard) ActiveRole() kernel.Role {
	return d.activeRole
}

// SelectRole switches the visible tab.
func (d *Dashboard) SelectRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	d.activeRole = role
	return nil
}

// ViewerName returns the name shown in the header for role.
func (d *Dashboard) ViewerName(role kernel.Role) string {
	return d.datasets[role].ViewerName
}

// Orders returns the orders of role in display order. The orders themselves
// are shared with the dashboard; use Clone to detach them.
func (d *Dashboard) Orders(role kernel.Role) []*order.Order {
	orders := d.datasets[role].Orders
	out := make([]*order.Order, len(orders))
	copy(out, orders)
	return out
}

// FindOrder looks an order up in the dataset of role.
func (d *Dashboard) FindOrder(role kernel.Role, id string) (*order.Order, error) {
	for _, o := range d.datasets[role].Orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

// Notifications returns the shared notification list.
func (d *Dashboard) Notifications() notification.List {
	return d.notifications
}

// ReplaceNotifications swaps in the result of a list operation.
func (d *Dashboard) ReplaceNotifications(l notification.List) {
	d.notifications = l
}

// PanelExpanded reports whether the notification panel is open.
func (d *Dashboard) PanelExpanded() bool {
	return d.panelExpanded
}

// TogglePanel expands or collapses the notification panel.
func (d *Dashboard) TogglePanel() {
	d.panelExpanded = !d.panelExpanded
}

// Clone returns a deep copy, so that a failed update can be discarded.
func (d *Dashboard) Clone() *Dashboard {
	c := &Dashboard{
		activeRole:    d.activeRole,
		datasets:      make(map[kernel.Role]Dataset, len(d.datasets)),
		notifications: d.notifications,
		panelExpanded: d.panelExpanded,
		isConstructed: d.isConstructed,
	}
	for role, ds := range d.datasets {
		orders := make([]*order.Order, len(ds.Orders))
		for i, o := range ds.Orders {
			orders[i] = o.Clone()
		}
		c.datasets[role] = Dataset{ViewerName: ds.ViewerName, Orders: orders}
	}
	return c
}

func (d *Dashboard) setDataset(role kernel.Role, ds Dataset) error {
	if ds.ViewerName == "" {
		return errs.NewValueIsRequiredError(fmt.Sprintf("%s viewer name", role))
	}

	seen := make(map[string]struct{}, len(ds.Orders))
	orders := make([]*order.Order, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, dup := seen[o.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order id is invalid",
				fmt.Errorf("%s appears twice in the %s dataset", o.ID(), role),
			)
		}
		seen[o.ID()] = struct{}{}
		orders = append(orders, o.Clone())
	}

	d.datasets[role] = Dataset{ViewerName: ds.ViewerName, Orders: orders}
	return nil
}
