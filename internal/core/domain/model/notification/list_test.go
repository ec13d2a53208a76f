package notification_test

import (
	"testing"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNotification(t *testing.T, id string, read, actionable bool) notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(id, notification.TypeDelivery, "Title "+id, "Message "+id, "5 minutes ago", read, actionable)
	require.NoError(t, err)
	return n
}

func seedList(t *testing.T) notification.List {
	t.Helper()
	l, err := notification.NewList(
		mustNotification(t, "1", false, true),
		mustNotification(t, "2", false, false),
		mustNotification(t, "3", true, true),
		mustNotification(t, "4", true, false),
		mustNotification(t, "5", false, true),
	)
	require.NoError(t, err)
	return l
}

func ids(l notification.List) []string {
	out := make([]string, 0, l.Len())
	for _, n := range l.Items() {
		out = append(out, n.ID())
	}
	return out
}

func TestNewList(t *testing.T) {
	t.Run("should keep display order", func(t *testing.T) {
		l := seedList(t)

		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(l))
		assert.Equal(t, 3, l.UnreadCount())
	})

	t.Run("should reject duplicate ids", func(t *testing.T) {
		_, err := notification.NewList(mustNotification(t, "1", false, true), mustNotification(t, "1", true, true))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is an empty list", func(t *testing.T) {
		var l notification.List

		assert.True(t, l.IsEmpty())
		assert.Equal(t, 0, l.UnreadCount())
	})
}

func TestList_Dismiss(t *testing.T) {
	t.Run("should remove exactly the matching notification", func(t *testing.T) {
		l := seedList(t)

		dismissed := l.Dismiss("3")

		assert.Equal(t, l.Len()-1, dismissed.Len())
		assert.Equal(t, []string{"1", "2", "4", "5"}, ids(dismissed))
		_, found := dismissed.Find("3")
		assert.False(t, found)
	})

	t.Run("should be a no-op for unknown ids", func(t *testing.T) {
		l := seedList(t)

		assert.Equal(t, ids(l), ids(l.Dismiss("42")))
	})

	t.Run("should not modify the receiver", func(t *testing.T) {
		l := seedList(t)

		_ = l.Dismiss("1")

		assert.Equal(t, 5, l.Len())
	})
}

func TestList_AcceptAndView(t *testing.T) {
	for name, op := range map[string]func(notification.List, string) notification.List{
		"accept": notification.List.Accept,
		"view":   notification.List.View,
	} {
		t.Run(name+" marks only the matching notification read", func(t *testing.T) {
			l := seedList(t)

			updated := op(l, "1")

			n, ok := updated.Find("1")
			require.True(t, ok)
			assert.True(t, n.IsRead())
			assert.Equal(t, 2, updated.UnreadCount())
			assert.Equal(t, 5, updated.Len())

			original, _ := l.Find("1")
			assert.False(t, original.IsRead())
		})

		t.Run(name+" ignores unknown ids", func(t *testing.T) {
			l := seedList(t)

			assert.Equal(t, l.UnreadCount(), op(l, "missing").UnreadCount())
		})
	}
}

func TestList_MarkAllRead(t *testing.T) {
	lists := map[string]notification.List{
		"seed":  seedList(t),
		"empty": {},
	}
	allUnread, err := notification.NewList(mustNotification(t, "a", false, false), mustNotification(t, "b", false, true))
	require.NoError(t, err)
	lists["all unread"] = allUnread

	for name, l := range lists {
		t.Run(name, func(t *testing.T) {
			read := l.MarkAllRead()

			assert.Equal(t, 0, read.UnreadCount())
			assert.Equal(t, l.Len(), read.Len())
		})
	}
}

func TestList_ClearAll(t *testing.T) {
	cleared := seedList(t).ClearAll()

	assert.True(t, cleared.IsEmpty())
	assert.Equal(t, 0, cleared.UnreadCount())
}

func TestList_Apply(t *testing.T) {
	l := seedList(t)

	accepted, err := l.Apply("5", notification.ActionAccept)
	require.NoError(t, err)
	n, _ := accepted.Find("5")
	assert.True(t, n.IsRead())

	dismissed, err := l.Apply("5", notification.ActionDismiss)
	require.NoError(t, err)
	assert.Equal(t, 4, dismissed.Len())

	viewed, err := l.Apply("2", notification.ActionView)
	require.NoError(t, err)
	assert.Equal(t, 2, viewed.UnreadCount())

	unchanged, err := l.Apply("1", notification.ActionUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, ids(l), ids(unchanged))
}
