package order

import (
	"fmt"
	"slices"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of a marketplace order.
//
// Lifecycle (terminal states marked *):
//
//	PendingSellerConfirmation ──┬──> Confirmed ──> DeliveryJobAvailable ──> DeliveryAssigned ─┐
//	                            └──> Rejected*                               InProgress ───────┤
//	                                                                                           v
//	PackagePickedUp ──> PackageInTransit ──> PackageArrived ──> AwaitingBuyerConfirmation ──┬──> DeliveryConfirmed* ──> Completed*
//	                                                                                        └──> Dispute*
//
// Order.ChangeStatus only follows edges of this graph. Every role-gated action
// from Actions resolves to one of them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	PendingSellerConfirmation
	Confirmed
	Rejected
	DeliveryJobAvailable
	DeliveryAssigned
	InProgress
	PackagePickedUp
	PackageInTransit
	PackageArrived
	AwaitingBuyerConfirmation
	DeliveryConfirmed
	Dispute
	Completed
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:                   "unknown",
		PendingSellerConfirmation: "pending_seller_confirmation",
		Confirmed:                 "confirmed",
		Rejected:                  "rejected",
		DeliveryJobAvailable:      "delivery_job_available",
		DeliveryAssigned:          "delivery_assigned",
		InProgress:                "in_progress",
		PackagePickedUp:           "package_picked_up",
		PackageInTransit:          "package_in_transit",
		PackageArrived:            "package_arrived",
		AwaitingBuyerConfirmation: "awaiting_buyer_confirmation",
		DeliveryConfirmed:         "delivery_confirmed",
		Dispute:                   "dispute",
		Completed:                 "completed",
	}
}

// getLegacyStatusCodes maps the older dashboard vocabulary onto the canonical statuses.
func getLegacyStatusCodes() map[string]Status {
	return map[string]Status{
		"pending_confirmation": PendingSellerConfirmation,
		"available":            DeliveryJobAvailable,
		"pending_delivery":     DeliveryJobAvailable,
		"in_transit":           PackageInTransit,
		"delivered":            AwaitingBuyerConfirmation,
	}
}

// getTransitions is the lifecycle graph. DeliveryConfirmed -> Completed is a
// settlement step with no viewer action attached to it.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		PendingSellerConfirmation: {Confirmed, Rejected},
		Confirmed:                 {DeliveryJobAvailable},
		DeliveryJobAvailable:      {DeliveryAssigned},
		DeliveryAssigned:          {PackagePickedUp},
		InProgress:                {PackagePickedUp},
		PackagePickedUp:           {PackageInTransit},
		PackageInTransit:          {PackageArrived},
		PackageArrived:            {AwaitingBuyerConfirmation},
		AwaitingBuyerConfirmation: {DeliveryConfirmed, Dispute},
		DeliveryConfirmed:         {Completed},
	}
}

// Statuses returns all 13 valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{
		PendingSellerConfirmation,
		Confirmed,
		Rejected,
		DeliveryJobAvailable,
		DeliveryAssigned,
		InProgress,
		PackagePickedUp,
		PackageInTransit,
		PackageArrived,
		AwaitingBuyerConfirmation,
		DeliveryConfirmed,
		Dispute,
		Completed,
	}
}

// ParseStatus converts a status code into a Status. Besides the canonical codes it
// accepts the legacy dashboard words (pending_confirmation, available,
// pending_delivery, in_transit, delivered).
func ParseStatus(code string) (Status, error) {
	for _, s := range Statuses() {
		if getStatusCodes()[s] == code {
			return s, nil
		}
	}
	if s, ok := getLegacyStatusCodes()[code]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", code),
	)
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if s < PendingSellerConfirmation || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical status code; invalid values render as "unknown".
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return getStatusCodes()[Unknown]
}

// CanTransitionTo reports whether next is a lifecycle successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(getTransitions()[s], next)
}
