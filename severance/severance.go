/*
Package severance computes statutory severance pay (퇴직금).

PURPOSE:
  Severance is 30 days of average wage per year of service:

    averageDaily = wagesInFinalWindow / daysInFinalWindow
    severance    = averageDaily × 30 × serviceDays / 365

  The final window is the 90-ish days spanned by the last three calendar
  months before the separation date. Annual bonus and annual-leave allowance
  contribute 3/12 of their yearly amounts to the window, per the statutory
  average-wage definition.

  Same shape as every calculator here: normalize, clamp, apply the formula,
  return a breakdown. Pure and total; malformed input degrades to zeros.
*/
package severance

import (
	"time"

	"github.com/shootingstar112/startup-hr-sub000/calc"
)

// =============================================================================
// INPUT / RESULT
// =============================================================================

// Input is the validated severance record.
type Input struct {
	HireDate       time.Time
	SeparationDate time.Time
	DatesValid     bool

	// Total wages paid over the final three calendar months.
	FinalThreeMonthWages calc.Money

	// Yearly extras; 3/12 of each enters the average-wage window.
	AnnualBonus          calc.Money
	AnnualLeaveAllowance calc.Money
}

// Normalize builds an Input from raw form strings.
func Normalize(hireRaw, separationRaw, wagesRaw, bonusRaw, leaveRaw string) Input {
	hire, okH := calc.ParseDate(hireRaw)
	sep, okS := calc.ParseDate(separationRaw)
	return Input{
		HireDate:             hire,
		SeparationDate:       sep,
		DatesValid:           okH && okS && !sep.Before(hire),
		FinalThreeMonthWages: calc.ParseWon(wagesRaw),
		AnnualBonus:          calc.ParseWon(bonusRaw),
		AnnualLeaveAllowance: calc.ParseWon(leaveRaw),
	}
}

// Result is the severance breakdown.
type Result struct {
	ServiceDays  int
	WindowDays   int
	AverageDaily calc.Money
	Severance    calc.Money
}

// =============================================================================
// CALCULATION
// =============================================================================

// Compute applies the severance formula. Invalid or inverted dates yield the
// zero result (the tool estimates, it does not certify).
func Compute(in Input) Result {
	if !in.DatesValid {
		return Result{}
	}

	serviceDays := daysBetween(in.HireDate, in.SeparationDate)
	windowDays := daysBetween(in.SeparationDate.AddDate(0, -3, 0), in.SeparationDate)
	if windowDays <= 0 {
		return Result{ServiceDays: serviceDays}
	}

	windowPay := in.FinalThreeMonthWages.
		Add(in.AnnualBonus.MulInt(3).DivTruncate(12)).
		Add(in.AnnualLeaveAllowance.MulInt(3).DivTruncate(12))

	avgDaily := windowPay.DivTruncate(int64(windowDays))
	severance := avgDaily.MulInt(30).MulInt(int64(serviceDays)).DivTruncate(365)

	return Result{
		ServiceDays:  serviceDays,
		WindowDays:   windowDays,
		AverageDaily: avgDaily,
		Severance:    severance,
	}
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
