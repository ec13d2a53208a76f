package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney constructor")

// Money is a non-negative amount kept in integer cents so that display
// formatting never suffers from float rounding.
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney returns the amount for the given number of cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, "unbounded")
	}
	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// MustNewMoney is NewMoney for literals known to be valid, such as seed data.
func MustNewMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate ensures the amount was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// String formats the amount with two decimals, e.g. "89.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
