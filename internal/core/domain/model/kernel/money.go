package kernel

import (
	"fmt"
	"math"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via NewMoneyFromCents or NewMoneyFromDollars to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromCents or NewMoneyFromDollars constructors")

// Money is an immutable value object representing a non-negative monetary amount.
// Amounts are stored as integer cents so that item totals and order totals are
// computed with exact arithmetic, never floating point accumulation.
//
// The zero value of Money is invalid and will fail validation - use constructors
// to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromDollars(12.99)
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.Multiply(2)
//	fmt.Println(total) // Output: $25.98
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoneyFromCents creates a Money amount from integer cents.
// Returns an error if cents is negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := money.setCents(cents); err != nil {
		return Money{}, err
	}

	return money, nil
}

// NewMoneyFromDollars creates a Money amount from a dollar value, rounding to the
// nearest cent. Returns an error if the amount is negative.
//
// Example:
//
//	price, err := kernel.NewMoneyFromDollars(4.99)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(price.Cents()) // Output: 499
func NewMoneyFromDollars(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%.2f is negative", amount),
		)
	}

	return NewMoneyFromCents(int64(math.Round(amount * 100)))
}

// ZeroMoney creates a Money amount of zero cents.
// Useful as the starting point for summation.
func ZeroMoney() Money {
	return Money{
		cents: 0,
		guard: guard.NewConstructorGuard(),
	}
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Dollars returns the amount as a dollar value.
func (m Money) Dollars() float64 {
	return float64(m.cents) / 100
}

// Add returns a new Money amount that is the sum of this amount and other.
// Both operands are non-negative by construction, so the sum is always valid.
func (m Money) Add(other Money) Money {
	return Money{
		cents: m.cents + other.cents,
		guard: guard.NewConstructorGuard(),
	}
}

// Multiply returns a new Money amount scaled by the given non-negative quantity.
// Used to compute line-item totals (unit price x quantity).
func (m Money) Multiply(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}

	return Money{
		cents: m.cents * int64(quantity),
		guard: guard.NewConstructorGuard(),
	}
}

// IsEqual compares two Money amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted as dollars, e.g. "$12.99".
// Implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}

// Validate checks if the Money was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m *Money) setCents(cents int64) error {
	if cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cents is invalid",
			fmt.Errorf("%d is negative", cents),
		)
	}

	m.cents = cents
	return nil
}
