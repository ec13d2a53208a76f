package notification

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Action is what a viewer did with a notification.
type Action int

const (
	ActionUnknown Action = iota
	ActionAccept
	ActionDismiss
	ActionView
)

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionDismiss:
		return "dismiss"
	case ActionView:
		return "view"
	case ActionUnknown:
	}
	return "unknown"
}

// ParseAction converts "accept", "dismiss" or "view" into an Action.
func ParseAction(code string) (Action, error) {
	for _, a := range []Action{ActionAccept, ActionDismiss, ActionView} {
		if a.String() == code {
			return a, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notification action is invalid",
		fmt.Errorf("%q is not a notification action", code),
	)
}
