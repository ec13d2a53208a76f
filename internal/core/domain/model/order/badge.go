package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Severity is the visual tier a status badge is rendered with.
type Severity int

const (
	SeverityUnknown Severity = iota
	// SeverityInformational marks states waiting on someone (outline badge).
	SeverityInformational
	// SeverityInProgress marks states where the order is moving (secondary badge).
	SeverityInProgress
	// SeveritySuccess marks happy-path outcomes (default badge).
	SeveritySuccess
	// SeverityFailure marks rejected or disputed orders (destructive badge).
	SeverityFailure
)

// Variant returns the badge variant name used by the templates.
func (s Severity) Variant() string {
	switch s {
	case SeverityInformational:
		return "outline"
	case SeverityInProgress:
		return "secondary"
	case SeveritySuccess:
		return "default"
	case SeverityFailure:
		return "destructive"
	case SeverityUnknown:
		return ""
	}
	return ""
}

// Badge is the display label and severity of a status.
type Badge struct {
	Label    string
	Severity Severity
}

func getBadges() map[Status]Badge {
	return map[Status]Badge{
		PendingSellerConfirmation: {"Pending Seller Confirmation", SeverityInformational},
		Confirmed:                 {"Confirmed", SeverityInProgress},
		Rejected:                  {"Rejected", SeverityFailure},
		DeliveryJobAvailable:      {"Delivery Job Available", SeverityInformational},
		DeliveryAssigned:          {"Delivery Assigned", SeverityInProgress},
		InProgress:                {"In Progress", SeverityInProgress},
		PackagePickedUp:           {"Package Picked Up", SeverityInProgress},
		PackageInTransit:          {"In Transit", SeverityInProgress},
		PackageArrived:            {"Package Arrived", SeverityInProgress},
		AwaitingBuyerConfirmation: {"Awaiting Buyer Confirmation", SeverityInformational},
		DeliveryConfirmed:         {"Delivery Confirmed", SeveritySuccess},
		Dispute:                   {"Dispute", SeverityFailure},
		Completed:                 {"Completed", SeveritySuccess},
	}
}

// Badge returns the label and severity for s. Every valid status has exactly one
// badge; an unmapped value is a configuration defect and returns an error.
func (s Status) Badge() (Badge, error) {
	b, ok := getBadges()[s]
	if !ok {
		return Badge{}, errs.NewValueIsInvalidErrorWithCause(
			"status has no badge",
			fmt.Errorf("%d is not a mapped status", s),
		)
	}
	return b, nil
}
