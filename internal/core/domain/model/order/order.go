package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details carries the display attributes of an order. Party names, the
// estimated delivery date and the commission are optional: an empty value
// means "not yet applicable" and is omitted from the card.
type Details struct {
	Product               string
	OrderDate             string
	Price                 kernel.Money
	SellerName            string
	BuyerName             string
	DeliveryPersonName    string
	EstimatedDeliveryDate string
	// Commission is the delivery fee offered to a delivery person.
	Commission *kernel.Money
}

// Order is one buyer-seller-delivery transaction as seen by a single dashboard.
// It is not a source of truth: its status only changes because a viewer
// clicked an action on the card.
type Order struct {
	id            string
	status        Status
	details       Details
	isConstructed bool
}

// NewOrder validates and creates an order.
//
// Example:
//
//	o, err := order.NewOrder("ORD-004", order.PendingSellerConfirmation, order.Details{
//	    Product:   "Laptop Stand",
//	    Price:     kernel.MustNewMoney(2999),
//	    BuyerName: "Emma Wilson",
//	})
func NewOrder(id string, status Status, details Details) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier, e.g. "ORD-001".
func (o *Order) ID() string {
	return o.id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Details returns a copy of the descriptive fields.
func (o *Order) Details() Details {
	d := o.details
	if d.Commission != nil {
		c := *d.Commission
		d.Commission = &c
	}
	return d
}

// ChangeStatus moves the order to next along the lifecycle graph. Which of
// those moves a viewer may trigger is decided by Actions.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition",
			fmt.Errorf("%s cannot move to %s", o.status, next),
		)
	}
	o.status = next
	return nil
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.details = o.Details()
	return &c
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.Product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	if err := details.Price.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	if details.Commission != nil {
		if err := details.Commission.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("commission", err)
		}
		c := *details.Commission
		details.Commission = &c
	}
	o.details = details
	return nil
}
