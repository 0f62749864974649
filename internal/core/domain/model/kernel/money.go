package kernel

import (
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// Money represents a monetary amount in whole currency units (fixed point,
// no fractional part). All financial arithmetic in the system is performed on
// Money values so that floating-point drift cannot occur.
//
// The zero value is a valid amount of zero. Negative amounts are representable
// (e.g. as intermediate results of change computation) but most call sites
// require non-negative values and validate with MustBeNonNegative.
type Money int64

// MoneyFromUnits creates a Money value from an amount of whole currency units.
func MoneyFromUnits(units int64) Money {
	return Money(units)
}

// Units returns the raw amount in whole currency units.
func (m Money) Units() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns the difference of two amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return m - other
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(q int) Money {
	return m * Money(q)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// MustBeNonNegative validates that the amount is zero or positive.
func (m Money) MustBeNonNegative(paramName string) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}

// String returns the amount formatted as a plain integer, e.g. "23000".
func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}
