package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// Card field labels in display order.
const (
	FieldOrderID        = "Order ID"
	FieldOrderDate      = "Order Date"
	FieldPrice          = "Price"
	FieldSeller         = "Seller"
	FieldBuyer          = "Buyer"
	FieldDeliveryPerson = "Delivery Person"
	FieldEstDelivery    = "Est. Delivery"
	FieldCommission     = "Commission"
)

// CardField is one label/value row of an order card.
type CardField struct {
	Label string
	Value string
}

// OrderCard is everything a template needs to draw one order.
type OrderCard struct {
	OrderID string
	Title   string
	Status  order.Status
	Badge   order.Badge
	Fields  []CardField
	Actions order.ActionGroup
}

// OrderCardPresenter renders an order for a viewer role.
//
// Visibility rules:
//   - the seller is hidden from the seller, the buyer from the buyer
//   - the delivery person appears once one is assigned
//   - the estimated delivery date is hidden on rejected orders
//   - the commission is shown to delivery people only
//
// Example:
//
//	card, err := services.NewOrderCardPresenter().Present(o, kernel.RoleSeller)
//	for _, a := range card.Actions.Actions() {
//	    fmt.Println(a.Label()) // "Confirm Order", "Reject Order"
//	}
type OrderCardPresenter struct{}

// NewOrderCardPresenter creates the presenter.
func NewOrderCardPresenter() OrderCardPresenter {
	return OrderCardPresenter{}
}

// Present builds the card. It fails if the order was not constructed, the role
// is unknown or the status has no badge.
func (OrderCardPresenter) Present(o *order.Order, role kernel.Role) (OrderCard, error) {
	if err := o.Validate(); err != nil {
		return OrderCard{}, err
	}
	if err := role.Validate(); err != nil {
		return OrderCard{}, err
	}

	badge, err := o.Status().Badge()
	if err != nil {
		return OrderCard{}, err
	}

	d := o.Details()
	fields := []CardField{{FieldOrderID, o.ID()}}
	if d.OrderDate != "" {
		fields = append(fields, CardField{FieldOrderDate, d.OrderDate})
	}
	fields = append(fields, CardField{FieldPrice, "$" + d.Price.String()})
	if role != kernel.RoleSeller && d.SellerName != "" {
		fields = append(fields, CardField{FieldSeller, d.SellerName})
	}
	if role != kernel.RoleBuyer && d.BuyerName != "" {
		fields = append(fields, CardField{FieldBuyer, d.BuyerName})
	}
	if d.DeliveryPersonName != "" {
		fields = append(fields, CardField{FieldDeliveryPerson, d.DeliveryPersonName})
	}
	if d.EstimatedDeliveryDate != "" && o.Status() != order.Rejected {
		fields = append(fields, CardField{FieldEstDelivery, d.EstimatedDeliveryDate})
	}
	if role == kernel.RoleDelivery && d.Commission != nil {
		fields = append(fields, CardField{FieldCommission, "$" + d.Commission.String()})
	}

	return OrderCard{
		OrderID: o.ID(),
		Title:   d.Product,
		Status:  o.Status(),
		Badge:   badge,
		Fields:  fields,
		Actions: order.Actions(o.Status(), role),
	}, nil
}
