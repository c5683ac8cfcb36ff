/*
Package weeklypay computes weekly holiday pay (주휴수당).

RULE:
  An employee contracted for 15 or more hours per week earns one paid rest
  day per fully-attended week, valued at:

    min(weeklyHours, 40) / 40 × 8 × hourlyWage

  Under 15 contracted hours there is no entitlement at all.
*/
package weeklypay

import (
	"github.com/shopspring/decimal"
	"github.com/shootingstar112/startup-hr-sub000/calc"
)

const (
	minimumWeeklyHours = 15
	fullTimeWeekHours  = 40
)

// Input is the validated weekly-pay record.
type Input struct {
	HourlyWage  calc.Money
	WeeklyHours int // clamped to [0,168]
}

// Normalize builds an Input from raw form strings. Hours beyond a calendar
// week are clamped to the calendar-valid maximum.
func Normalize(wageRaw, hoursRaw string) Input {
	return Input{
		HourlyWage:  calc.ParseWon(wageRaw),
		WeeklyHours: calc.ClampInt(calc.ParseCount(hoursRaw), 0, 168),
	}
}

// Result is the weekly holiday pay breakdown.
type Result struct {
	Eligible     bool
	CountedHours int // weekly hours after the 40h cap
	WeeklyPay    calc.Money
}

// Compute applies the weekly holiday pay rule. Pure and total.
func Compute(in Input) Result {
	if in.WeeklyHours < minimumWeeklyHours {
		return Result{}
	}
	counted := in.WeeklyHours
	if counted > fullTimeWeekHours {
		counted = fullTimeWeekHours
	}

	// counted/40 × 8 × hourly, truncated to whole won.
	ratio := decimal.NewFromInt(int64(counted)).
		Div(decimal.NewFromInt(fullTimeWeekHours)).
		Mul(decimal.NewFromInt(8))
	return Result{
		Eligible:     true,
		CountedHours: counted,
		WeeklyPay:    in.HourlyWage.MulRate(ratio),
	}
}
