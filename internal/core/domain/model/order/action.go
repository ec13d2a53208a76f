package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrActionNotAvailable is returned when an action is not offered for the
// order's status and the viewer's role.
var ErrActionNotAvailable = errors.New("action is not available for this order")

// ActionKind identifies a button on the order card.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionConfirmOrder
	ActionRejectOrder
	ActionAcceptDeliveryJob
	ActionMarkPickedUp
	ActionMarkInTransit
	ActionMarkArrived
	ActionMarkDelivered
	ActionConfirmDelivery
	ActionReportIssue
)

func getActionCodes() map[ActionKind]string {
	return map[ActionKind]string{
		ActionUnknown:           "unknown",
		ActionConfirmOrder:      "confirm_order",
		ActionRejectOrder:       "reject_order",
		ActionAcceptDeliveryJob: "accept_delivery_job",
		ActionMarkPickedUp:      "mark_picked_up",
		ActionMarkInTransit:     "mark_in_transit",
		ActionMarkArrived:       "mark_arrived",
		ActionMarkDelivered:     "mark_delivered",
		ActionConfirmDelivery:   "confirm_delivery",
		ActionReportIssue:       "report_issue",
	}
}

// ParseActionKind converts an action code such as "reject_order" into an ActionKind.
func ParseActionKind(code string) (ActionKind, error) {
	for kind, c := range getActionCodes() {
		if c == code && kind != ActionUnknown {
			return kind, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"action is invalid",
		fmt.Errorf("%q is not a known action", code),
	)
}

func (k ActionKind) String() string {
	if code, ok := getActionCodes()[k]; ok {
		return code
	}
	return getActionCodes()[ActionUnknown]
}

// Callback names the integration hook an action fires.
type Callback int

const (
	CallbackUnknown Callback = iota
	CallbackConfirmOrder
	CallbackRejectOrder
	CallbackAcceptDeliveryJob
	CallbackUpdateDeliveryStatus
	CallbackConfirmDelivery
	CallbackReportIssue
)

func (c Callback) String() string {
	switch c {
	case CallbackConfirmOrder:
		return "onConfirmOrder"
	case CallbackRejectOrder:
		return "onRejectOrder"
	case CallbackAcceptDeliveryJob:
		return "onAcceptDeliveryJob"
	case CallbackUpdateDeliveryStatus:
		return "onUpdateDeliveryStatus"
	case CallbackConfirmDelivery:
		return "onConfirmDelivery"
	case CallbackReportIssue:
		return "onReportIssue"
	case CallbackUnknown:
	}
	return "unknown"
}

// Prompt is the irreversible-action dialog shown before an action fires.
type Prompt struct {
	Title        string
	Description  string
	ConfirmLabel string
	CancelLabel  string
}

// Action is one button of an action group.
type Action struct {
	kind     ActionKind
	label    string
	result   Status
	callback Callback
	prompt   *Prompt
}

// Kind returns which action this is.
func (a Action) Kind() ActionKind {
	return a.kind
}

// Label returns the button text.
func (a Action) Label() string {
	return a.label
}

// Result is the status the order moves to once the action fires.
func (a Action) Result() Status {
	return a.result
}

// Callback returns the hook fired when the action runs.
func (a Action) Callback() Callback {
	return a.callback
}

// Prompt returns the confirmation dialog, or nil when the action fires directly.
func (a Action) Prompt() *Prompt {
	if a.prompt == nil {
		return nil
	}
	p := *a.prompt
	return &p
}

// RequiresConfirmation reports whether the action has a prompt.
func (a Action) RequiresConfirmation() bool {
	return a.prompt != nil
}

// GroupShape describes which buttons an order card shows.
type GroupShape int

const (
	GroupNone GroupShape = iota
	GroupSingle
	GroupConfirmReject
	GroupConfirmDispute
)

func (g GroupShape) String() string {
	switch g {
	case GroupSingle:
		return "single"
	case GroupConfirmReject:
		return "confirm_reject"
	case GroupConfirmDispute:
		return "confirm_dispute"
	case GroupNone:
	}
	return "none"
}

// ActionGroup is the set of buttons for one (status, role) pair. The zero value
// is the empty group.
type ActionGroup struct {
	shape   GroupShape
	actions []Action
}

// Shape returns the layout of the group.
func (g ActionGroup) Shape() GroupShape {
	return g.shape
}

// IsEmpty reports whether the card shows no buttons.
func (g ActionGroup) IsEmpty() bool {
	return len(g.actions) == 0
}

// Actions returns the buttons in display order.
func (g ActionGroup) Actions() []Action {
	out := make([]Action, len(g.actions))
	copy(out, g.actions)
	return out
}

// Find returns the action of the given kind if the group offers it.
func (g ActionGroup) Find(kind ActionKind) (Action, bool) {
	for _, a := range g.actions {
		if a.kind == kind {
			return a, true
		}
	}
	return Action{}, false
}

type actionKey struct {
	status Status
	role   kernel.Role
}

var rejectPrompt = Prompt{
	Title:        "Are you sure?",
	Description:  "Rejecting this order will cancel the transaction and refund the buyer.",
	ConfirmLabel: "Reject Order",
	CancelLabel:  "Cancel",
}

var actionTable = buildActionTable()

func buildActionTable() map[actionKey]ActionGroup {
	single := func(kind ActionKind, label string, result Status, cb Callback) ActionGroup {
		return ActionGroup{
			shape:   GroupSingle,
			actions: []Action{{kind: kind, label: label, result: result, callback: cb}},
		}
	}

	pickUp := single(ActionMarkPickedUp, "Mark as Picked Up", PackagePickedUp, CallbackUpdateDeliveryStatus)

	return map[actionKey]ActionGroup{
		{PendingSellerConfirmation, kernel.RoleSeller}: {
			shape: GroupConfirmReject,
			actions: []Action{
				{kind: ActionConfirmOrder, label: "Confirm Order", result: Confirmed, callback: CallbackConfirmOrder},
				{
					kind:     ActionRejectOrder,
					label:    "Reject Order",
					result:   Rejected,
					callback: CallbackRejectOrder,
					prompt:   &rejectPrompt,
				},
			},
		},
		{DeliveryJobAvailable, kernel.RoleDelivery}: single(
			ActionAcceptDeliveryJob, "Accept Delivery Job", DeliveryAssigned, CallbackAcceptDeliveryJob,
		),
		{DeliveryAssigned, kernel.RoleDelivery}: pickUp,
		{InProgress, kernel.RoleDelivery}:       pickUp,
		{PackagePickedUp, kernel.RoleDelivery}: single(
			ActionMarkInTransit, "Mark as In Transit", PackageInTransit, CallbackUpdateDeliveryStatus,
		),
		{PackageInTransit, kernel.RoleDelivery}: single(
			ActionMarkArrived, "Mark as Arrived", PackageArrived, CallbackUpdateDeliveryStatus,
		),
		{PackageArrived, kernel.RoleDelivery}: single(
			ActionMarkDelivered, "Mark as Delivered", AwaitingBuyerConfirmation, CallbackUpdateDeliveryStatus,
		),
		{AwaitingBuyerConfirmation, kernel.RoleBuyer}: {
			shape: GroupConfirmDispute,
			actions: []Action{
				{kind: ActionConfirmDelivery, label: "Confirm Delivery", result: DeliveryConfirmed, callback: CallbackConfirmDelivery},
				{kind: ActionReportIssue, label: "Report Issue", result: Dispute, callback: CallbackReportIssue},
			},
		},
	}
}

// Actions returns the action group a viewer with the given role sees for an
// order in the given status. Pairs outside the table yield the empty group.
func Actions(status Status, role kernel.Role) ActionGroup {
	return actionTable[actionKey{status: status, role: role}]
}

// ResolveAction returns the action of the given kind if it is offered for
// (status, role), or ErrActionNotAvailable.
func ResolveAction(status Status, role kernel.Role, kind ActionKind) (Action, error) {
	action, ok := Actions(status, role).Find(kind)
	if !ok {
		return Action{}, fmt.Errorf("%w: %s is not offered to %s on %s", ErrActionNotAvailable, kind, role, status)
	}
	return action, nil
}
