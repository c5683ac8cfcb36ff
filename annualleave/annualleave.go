/*
Package annualleave computes statutory annual paid leave accrual and its
payout value (연차휴가 / 연차수당).

ACCRUAL RULE:
  Under one full year of service: one day per completed month, at most 11.
  One year or more: 15 days, plus one extra day per two full years of
  service beyond the first, capped at 25 days total.

PAYOUT:
  Unused days are paid at the daily ordinary wage: 8 hours at the hourly
  ordinary wage, where hourly = monthly wage / 209 standard monthly hours.
*/
package annualleave

import (
	"time"

	"github.com/shootingstar112/startup-hr-sub000/calc"
)

// standardMonthlyHours converts a monthly wage into an hourly ordinary wage
// (40h week plus the paid weekly rest day, averaged over a month).
const standardMonthlyHours = 209

// Input is the validated annual-leave record.
type Input struct {
	HireDate   time.Time
	AsOf       time.Time
	DatesValid bool

	MonthlyWage calc.Money

	// UnusedDays overrides the accrued count for payout when the user knows
	// how many days remain; negative is clamped upstream, and a count above
	// the accrual is clamped to it.
	UnusedDays int
}

// Normalize builds an Input from raw form strings.
func Normalize(hireRaw, asOfRaw, wageRaw, unusedRaw string) Input {
	hire, okH := calc.ParseDate(hireRaw)
	asOf, okA := calc.ParseDate(asOfRaw)
	return Input{
		HireDate:    hire,
		AsOf:        asOf,
		DatesValid:  okH && okA && !asOf.Before(hire),
		MonthlyWage: calc.ParseWon(wageRaw),
		UnusedDays:  calc.ParseCount(unusedRaw),
	}
}

// Result is the accrual/payout breakdown.
type Result struct {
	ServiceYears  int
	ServiceMonths int // completed months, total
	AccruedDays   int
	PayoutDays    int
	HourlyWage    calc.Money
	DailyWage     calc.Money
	Payout        calc.Money
}

// Compute applies the accrual rule and prices the unused days.
func Compute(in Input) Result {
	if !in.DatesValid {
		return Result{}
	}

	months := completedMonths(in.HireDate, in.AsOf)
	years := months / 12

	var accrued int
	switch {
	case years < 1:
		accrued = months
		if accrued > 11 {
			accrued = 11
		}
	default:
		accrued = 15 + (years-1)/2
		if accrued > 25 {
			accrued = 25
		}
	}

	payoutDays := calc.ClampInt(in.UnusedDays, 0, accrued)
	hourly := in.MonthlyWage.DivTruncate(standardMonthlyHours)
	daily := hourly.MulInt(8)

	return Result{
		ServiceYears:  years,
		ServiceMonths: months,
		AccruedDays:   accrued,
		PayoutDays:    payoutDays,
		HourlyWage:    hourly,
		DailyWage:     daily,
		Payout:        daily.MulInt(int64(payoutDays)),
	}
}

// completedMonths counts full months of service from hire to asOf.
func completedMonths(hire, asOf time.Time) int {
	months := (asOf.Year()-hire.Year())*12 + int(asOf.Month()) - int(hire.Month())
	if asOf.Day() < hire.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
