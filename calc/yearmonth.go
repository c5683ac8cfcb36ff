package calc

import (
	"fmt"
	"time"
)

// =============================================================================
// YEAR-MONTH - Calendar month granularity (benefit periods are monthly)
// =============================================================================

// YearMonth identifies one calendar month. The zero value is invalid and is
// used by the normalizer as the "no valid date" marker.
type YearMonth struct {
	Year  int
	Month time.Month
}

func NewYearMonth(year int, month time.Month) YearMonth {
	return YearMonth{Year: year, Month: month}
}

// index returns a total ordering key (months since year 0).
func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

func (ym YearMonth) Before(o YearMonth) bool { return ym.index() < o.index() }
func (ym YearMonth) After(o YearMonth) bool  { return ym.index() > o.index() }
func (ym YearMonth) Equal(o YearMonth) bool  { return ym.index() == o.index() }
func (ym YearMonth) IsZero() bool            { return ym.Year == 0 && ym.Month == 0 }

// AddMonths returns the month n steps later (earlier for negative n).
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.index() + n
	year := idx / 12
	month := time.Month(idx%12 + 1)
	if idx < 0 {
		// Go's % truncates toward zero; re-anchor for pre-year-0 indexes.
		year = (idx - 11) / 12
		month = time.Month(idx-year*12) + 1
	}
	return YearMonth{Year: year, Month: month}
}

// MonthsUntil returns the number of whole months from ym to o
// (negative if o is earlier).
func (ym YearMonth) MonthsUntil(o YearMonth) int {
	return o.index() - ym.index()
}

// Max returns the later of the two months.
func (ym YearMonth) Max(o YearMonth) YearMonth {
	if o.After(ym) {
		return o
	}
	return ym
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
