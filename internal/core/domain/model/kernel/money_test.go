package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should format cents with two decimals", func(t *testing.T) {
		testCases := []struct {
			cents    int64
			expected string
		}{
			{0, "0.00"},
			{5, "0.05"},
			{2999, "29.99"},
			{8999, "89.99"},
			{129900, "1299.00"},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoney(tc.cents)

			require.NoError(t, err)
			require.NoError(t, m.Validate())
			assert.Equal(t, tc.cents, m.Cents())
			assert.Equal(t, tc.expected, m.String())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("MustNewMoney panics on negative amounts", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustNewMoney(-100) })
		assert.Equal(t, int64(100), kernel.MustNewMoney(100).Cents())
	})
}
