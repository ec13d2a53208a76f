package notification

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Type is the category tag of a notification.
type Type int

const (
	TypeUnknown Type = iota
	TypeOrder
	TypeDelivery
	TypeConfirmation
	TypePayment
	TypeAlert
)

func getTypeCodes() map[Type]string {
	return map[Type]string{
		TypeUnknown:      "unknown",
		TypeOrder:        "order",
		TypeDelivery:     "delivery",
		TypeConfirmation: "confirmation",
		TypePayment:      "payment",
		TypeAlert:        "alert",
	}
}

// getLegacyTypeCodes maps the older dashboard tags onto the panel categories.
func getLegacyTypeCodes() map[string]Type {
	return map[string]Type{
		"order_update":          TypeOrder,
		"delivery_confirmation": TypeConfirmation,
		"payment_released":      TypePayment,
	}
}

// ParseType converts a type code into a Type, accepting legacy dashboard tags.
func ParseType(code string) (Type, error) {
	for t, c := range getTypeCodes() {
		if c == code && t != TypeUnknown {
			return t, nil
		}
	}
	if t, ok := getLegacyTypeCodes()[code]; ok {
		return t, nil
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notification type is invalid",
		fmt.Errorf("%q is not a known notification type", code),
	)
}

func (t Type) Validate() error {
	if t < TypeOrder || t > TypeAlert {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification type is invalid",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

func (t Type) String() string {
	if code, ok := getTypeCodes()[t]; ok {
		return code
	}
	return getTypeCodes()[TypeUnknown]
}

// Notification is an alert shown in the notification panel. It is a value:
// state changes return a modified copy.
type Notification struct {
	id         string
	typ        Type
	title      string
	message    string
	time       string
	read       bool
	actionable bool
}

// NewNotification validates and creates a notification. time is a display
// string such as "5 minutes ago". Actionable notifications render accept and
// dismiss controls.
func NewNotification(id string, typ Type, title, message, time string, read, actionable bool) (Notification, error) {
	var problems []error
	if id == "" {
		problems = append(problems, errs.NewValueIsRequiredError("notification id"))
	}
	if err := typ.Validate(); err != nil {
		problems = append(problems, err)
	}
	if message == "" {
		problems = append(problems, errs.NewValueIsRequiredError("notification message"))
	}
	if err := errors.Join(problems...); err != nil {
		return Notification{}, err
	}

	return Notification{
		id:         id,
		typ:        typ,
		title:      title,
		message:    message,
		time:       time,
		read:       read,
		actionable: actionable,
	}, nil
}

func (n Notification) ID() string {
	return n.id
}

func (n Notification) Type() Type {
	return n.typ
}

func (n Notification) Title() string {
	return n.title
}

func (n Notification) Message() string {
	return n.message
}

func (n Notification) Time() string {
	return n.time
}

func (n Notification) IsRead() bool {
	return n.read
}

func (n Notification) IsActionable() bool {
	return n.actionable
}

// MarkRead returns a read copy of n.
func (n Notification) MarkRead() Notification {
	n.read = true
	return n
}
