package notification

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// List is the ordered set of active notifications. Every operation is pure and
// returns a new List; the receiver is never modified.
type List struct {
	items []Notification
}

// NewList builds a list, rejecting duplicate ids.
func NewList(items ...Notification) (List, error) {
	seen := make(map[string]struct{}, len(items))
	for _, n := range items {
		if _, dup := seen[n.ID()]; dup {
			return List{}, errs.NewValueIsInvalidErrorWithCause(
				"notification id is invalid",
				fmt.Errorf("%s is used more than once", n.ID()),
			)
		}
		seen[n.ID()] = struct{}{}
	}
	return List{items: clone(items)}, nil
}

// Items returns the notifications in display order.
func (l List) Items() []Notification {
	return clone(l.items)
}

func (l List) Len() int {
	return len(l.items)
}

func (l List) IsEmpty() bool {
	return len(l.items) == 0
}

// Find returns the notification with the given id.
func (l List) Find(id string) (Notification, bool) {
	for _, n := range l.items {
		if n.ID() == id {
			return n, true
		}
	}
	return Notification{}, false
}

// UnreadCount is the number of notifications not yet read.
func (l List) UnreadCount() int {
	count := 0
	for _, n := range l.items {
		if !n.IsRead() {
			count++
		}
	}
	return count
}

// Accept marks the notification read. Unknown ids leave the list unchanged.
func (l List) Accept(id string) List {
	return l.markRead(id)
}

// View marks the notification read. Unknown ids leave the list unchanged.
func (l List) View(id string) List {
	return l.markRead(id)
}

// Dismiss removes the notification. Unknown ids leave the list unchanged.
func (l List) Dismiss(id string) List {
	out := make([]Notification, 0, len(l.items))
	for _, n := range l.items {
		if n.ID() != id {
			out = append(out, n)
		}
	}
	return List{items: out}
}

// Apply performs action on id.
func (l List) Apply(id string, action Action) (List, error) {
	switch action {
	case ActionAccept:
		return l.Accept(id), nil
	case ActionDismiss:
		return l.Dismiss(id), nil
	case ActionView:
		return l.View(id), nil
	case ActionUnknown:
	}
	return l, errs.NewValueIsInvalidErrorWithCause(
		"notification action is invalid",
		fmt.Errorf("%d is not a notification action", action),
	)
}

// MarkAllRead marks every notification read.
func (l List) MarkAllRead() List {
	out := make([]Notification, len(l.items))
	for i, n := range l.items {
		out[i] = n.MarkRead()
	}
	return List{items: out}
}

// ClearAll returns the empty list.
func (l List) ClearAll() List {
	return List{}
}

func (l List) markRead(id string) List {
	out := make([]Notification, len(l.items))
	for i, n := range l.items {
		if n.ID() == id {
			n = n.MarkRead()
		}
		out[i] = n
	}
	return List{items: out}
}

func clone(items []Notification) []Notification {
	out := make([]Notification, len(items))
	copy(out, items)
	return out
}
