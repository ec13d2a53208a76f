package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetActionConfirmationQueryHandler_Handle(t *testing.T) {
	run := func(t *testing.T, role kernel.Role, id string, action order.ActionKind) (queries.GetActionConfirmationQueryResponse, error) {
		t.Helper()
		store := new(MockDashboardStore)
		store.On("Load", mock.Anything, sessionID).Return(newDashboard(t, role), nil)
		q, err := queries.NewGetActionConfirmationQuery(sessionID, role, id, action)
		require.NoError(t, err)
		return queries.NewGetActionConfirmationQueryHandler(store).Handle(t.Context(), q)
	}

	t.Run("reject carries the prompt", func(t *testing.T) {
		resp, err := run(t, kernel.RoleSeller, "ORD-004", order.ActionRejectOrder)

		require.NoError(t, err)
		require.True(t, resp.RequiresConfirmation())
		assert.Equal(t, "Laptop Stand", resp.Product)
		assert.Equal(t, "Reject Order", resp.Label)
		assert.Equal(t, "Are you sure?", resp.Prompt.Title)
		assert.Equal(t, "Rejecting this order will cancel the transaction and refund the buyer.", resp.Prompt.Description)
	})

	t.Run("confirm has no prompt", func(t *testing.T) {
		resp, err := run(t, kernel.RoleSeller, "ORD-004", order.ActionConfirmOrder)

		require.NoError(t, err)
		assert.False(t, resp.RequiresConfirmation())
	})

	t.Run("action not offered", func(t *testing.T) {
		_, err := run(t, kernel.RoleSeller, "ORD-005", order.ActionRejectOrder)

		require.ErrorIs(t, err, order.ErrActionNotAvailable)
	})

	t.Run("order of another role", func(t *testing.T) {
		_, err := run(t, kernel.RoleBuyer, "ORD-004", order.ActionRejectOrder)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("invalid arguments are collected", func(t *testing.T) {
		_, err := queries.NewGetActionConfirmationQuery("", kernel.RoleUnknown, "", order.ActionUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
