/*
normalize.go - Tolerant form-input parsing

PURPOSE:
  Raw calculator input arrives as user-typed strings: wages with thousands
  separators, dates from free-form fields, month counts from selects. The
  normalizer turns them into bounded typed values and NEVER errors: the
  calculators are display tools, and a crashed estimate is strictly worse
  than a zero/neutral one.

CONTRACT:
  - Numbers: non-digit characters are stripped before parsing; anything
    unparseable or missing becomes zero. Results are never negative.
  - Counts: clamped into their valid range after parsing.
  - Dates: "valid calendar date or nothing". A date string that survives
    parsing but denotes an impossible day (e.g., 2025-02-30) is rejected,
    not normalized forward. Downstream code only ever sees valid periods.

SEE ALSO:
  - parental/reconcile.go: Uses the date contract for degraded-mode fallback
*/
package calc

import (
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// NUMERIC NORMALIZATION
// =============================================================================

// ParseWon extracts a non-negative whole-won amount from a raw form string.
// "1,234,567원" -> 1234567. Unparseable input yields ₩0.
func ParseWon(raw string) Money {
	return Won(parseDigits(raw))
}

// ParseCount extracts a non-negative integer from a raw form string.
func ParseCount(raw string) int {
	return int(parseDigits(raw))
}

// ClampInt bounds n into [lo, hi].
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ClampMonths bounds a leave duration into the statutory [1,18] month range.
func ClampMonths(n int) int {
	return ClampInt(n, 1, 18)
}

func parseDigits(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		// Digit overflow on absurd input; degrade to zero.
		return 0
	}
	return n
}

// =============================================================================
// DATE NORMALIZATION - "valid calendar date or nothing"
// =============================================================================

const dateLayout = "2006-01-02"

// ParseDate parses an ISO date strictly. It returns ok=false for empty,
// malformed, or structurally invalid dates (Feb 30 is rejected, not rolled
// forward the way time.Parse would).
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(dateLayout) != raw {
		return time.Time{}, false
	}
	return t, true
}

// ParseYearMonth parses "2006-01" strictly. Zero YearMonth on failure.
func ParseYearMonth(raw string) (YearMonth, bool) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return YearMonth{}, false
	}
	return NewYearMonth(t.Year(), t.Month()), true
}

// MonthOf truncates a date to its calendar month.
func MonthOf(t time.Time) YearMonth {
	return NewYearMonth(t.Year(), t.Month())
}
