package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionEvictor struct {
	mock.Mock
}

func (m *MockSessionEvictor) EvictIdle(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

func TestNewEvictIdleSessionsCommand(t *testing.T) {
	t.Run("keeps the timeout", func(t *testing.T) {
		cmd, err := commands.NewEvictIdleSessionsCommand(time.Hour)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, time.Hour, cmd.IdleTimeout())
	})

	t.Run("timeout must be positive", func(t *testing.T) {
		_, err := commands.NewEvictIdleSessionsCommand(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestEvictIdleSessionsCommandHandler_Handle(t *testing.T) {
	t.Run("evicts sessions idle for longer than the timeout", func(t *testing.T) {
		evictor := new(MockSessionEvictor)
		before := time.Now().Add(-time.Hour)
		evictor.On("EvictIdle", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			return !cutoff.Before(before) && !cutoff.After(time.Now().Add(-time.Hour))
		})).Return(3, nil)
		cmd, err := commands.NewEvictIdleSessionsCommand(time.Hour)
		require.NoError(t, err)
		handler := commands.NewEvictIdleSessionsCommandHandler(evictor)

		evicted, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 3, evicted)
		evictor.AssertExpectations(t)
	})

	t.Run("evictor errors are returned", func(t *testing.T) {
		evictor := new(MockSessionEvictor)
		boom := errors.New("boom")
		evictor.On("EvictIdle", mock.Anything, mock.Anything).Return(0, boom)
		cmd, err := commands.NewEvictIdleSessionsCommand(time.Minute)
		require.NoError(t, err)
		handler := commands.NewEvictIdleSessionsCommandHandler(evictor)

		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, boom)
	})

	t.Run("rejects a zero value command", func(t *testing.T) {
		evictor := new(MockSessionEvictor)
		handler := commands.NewEvictIdleSessionsCommandHandler(evictor)

		_, err := handler.Handle(t.Context(), commands.EvictIdleSessionsCommand{})

		require.ErrorIs(t, err, commands.ErrEvictIdleSessionsCommandIsNotConstructed)
		evictor.AssertNotCalled(t, "EvictIdle", mock.Anything, mock.Anything)
	})
}
