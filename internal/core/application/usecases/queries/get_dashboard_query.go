// Package queries contains the read side of the dashboard: the role-scoped
// page model and the confirmation dialog of irreversible actions.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery renders the session's dashboard for its active role.
//
// Example:
//
//	query, err := NewGetDashboardQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	fmt.Println(page.Section.Title) // "My Orders"
type GetDashboardQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the session's dashboard page.
func NewGetDashboardQuery(sessionID string) (GetDashboardQuery, error) {
	if sessionID == "" {
		return GetDashboardQuery{}, errs.NewValueIsRequiredError("session id")
	}
	return GetDashboardQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// SessionID returns the viewer session to read.
func (q GetDashboardQuery) SessionID() string {
	return q.sessionID
}

// Section is the heading above the order list.
type Section struct {
	Title       string
	Description string
}

// Tab is one entry of the role selector.
type Tab struct {
	Role   kernel.Role
	Label  string
	Active bool
}

// GetDashboardQueryResponse is the page model of one dashboard view. Cards
// come from the active role's dataset only.
type GetDashboardQueryResponse struct {
	Title      string
	Role       kernel.Role
	ViewerName string
	Tabs       []Tab
	Section    Section
	Cards      []services.OrderCard
	Panel      services.NotificationPanel
}
