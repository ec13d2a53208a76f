package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetActionConfirmationQueryIsNotConstructed = errors.New(
	"GetActionConfirmationQuery must be created via NewGetActionConfirmationQuery constructor",
)

// GetActionConfirmationQuery loads the prompt shown before an order action fires.
type GetActionConfirmationQuery struct {
	sessionID string
	role      kernel.Role
	orderID   string
	action    order.ActionKind

	guard guard.ConstructorGuard
}

// NewGetActionConfirmationQuery creates a query for the dialog of one order action.
func NewGetActionConfirmationQuery(
	sessionID string,
	role kernel.Role,
	orderID string,
	action order.ActionKind,
) (GetActionConfirmationQuery, error) {
	var problems []error
	if sessionID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("session id"))
	}
	if err := role.Validate(); err != nil {
		problems = append(problems, err)
	}
	if orderID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("order id"))
	}
	if action == order.ActionUnknown {
		problems = append(problems, errs.NewValueIsRequiredError("action"))
	}
	if err := errors.Join(problems...); err != nil {
		return GetActionConfirmationQuery{}, err
	}

	return GetActionConfirmationQuery{
		sessionID: sessionID,
		role:      role,
		orderID:   orderID,
		action:    action,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActionConfirmationQuery) Validate() error {
	return q.guard.Validate(ErrGetActionConfirmationQueryIsNotConstructed)
}

// SessionID returns the viewer session to read.
func (q GetActionConfirmationQuery) SessionID() string {
	return q.sessionID
}

// Role returns the tab the action belongs to.
func (q GetActionConfirmationQuery) Role() kernel.Role {
	return q.role
}

// OrderID returns the order the action targets.
func (q GetActionConfirmationQuery) OrderID() string {
	return q.orderID
}

// Action returns the action whose dialog is requested.
func (q GetActionConfirmationQuery) Action() order.ActionKind {
	return q.action
}

// GetActionConfirmationQueryResponse describes the dialog. Prompt is nil when
// the action fires without confirmation.
type GetActionConfirmationQueryResponse struct {
	OrderID string
	Product string
	Role    kernel.Role
	Action  order.ActionKind
	Label   string
	Prompt  *order.Prompt
}

// RequiresConfirmation reports whether a dialog has to be shown.
func (r GetActionConfirmationQueryResponse) RequiresConfirmation() bool {
	return r.Prompt != nil
}
