/*
Package calc provides the shared primitives for all statutory calculators.

PURPOSE:
  Every calculator in this repository follows the same shape:
  normalize raw form input, clamp it into a valid range, apply a statutory
  formula, and return a breakdown. This package owns the pieces that shape
  shares: Korean won amounts, year-month periods, and the tolerant input
  normalizer.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A KRW amount backed by decimal.Decimal (never float)
  - Truncation: statutory amounts are truncated to whole won, never rounded up

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal avoids float drift on wage arithmetic
  2. Totality: constructors and operations never panic or error
  3. Immutability: Money values are copied, never mutated

SEE ALSO:
  - yearmonth.go: Period arithmetic
  - normalize.go: Tolerant form-input parsing
*/
package calc

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Korean won amount (whole-won precision)
// =============================================================================

// Money is an amount in Korean won. The zero value is ₩0.
type Money struct {
	value decimal.Decimal
}

// Won constructs a Money from a whole-won integer.
func Won(v int64) Money {
	return Money{value: decimal.NewFromInt(v)}
}

// MulRate multiplies by a statutory rate and truncates to whole won.
// Truncation (floor for non-negative amounts) is the statutory convention:
// amounts are never rounded up.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{value: m.value.Mul(rate).Floor()}
}

func (m Money) Add(o Money) Money { return Money{value: m.value.Add(o.value)} }
func (m Money) Sub(o Money) Money { return Money{value: m.value.Sub(o.value)} }

func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) GreaterThan(o Money) bool { return m.value.GreaterThan(o.value) }
func (m Money) LessThan(o Money) bool    { return m.value.LessThan(o.value) }
func (m Money) Equal(o Money) bool       { return m.value.Equal(o.value) }

// Clamp bounds m into [lo, hi]. Callers guarantee lo <= hi.
func (m Money) Clamp(lo, hi Money) Money {
	if m.LessThan(lo) {
		return lo
	}
	if m.GreaterThan(hi) {
		return hi
	}
	return m
}

// Int64 returns the whole-won value. Money is always whole-won by
// construction, so no precision is lost.
func (m Money) Int64() int64 {
	return m.value.IntPart()
}

// DivTruncate divides by n and truncates to whole won. n == 0 yields ₩0
// (tolerant-by-default, matching the normalizer contract).
func (m Money) DivTruncate(n int64) Money {
	if n == 0 {
		return Money{}
	}
	return Money{value: m.value.Div(decimal.NewFromInt(n)).Floor()}
}

// MulInt multiplies by a whole number.
func (m Money) MulInt(n int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(n))}
}

func (m Money) String() string {
	return m.value.StringFixed(0)
}
