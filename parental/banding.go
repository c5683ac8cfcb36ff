package parental

import (
	"github.com/shootingstar112/startup-hr-sub000/calc"
)

// =============================================================================
// BANDING RESOLVER - Anchors plans to the reference event
// =============================================================================

// coParentalWindow is the number of months after the reference event during
// which co-parental coordination can apply.
const coParentalWindow = 6

// EffectiveStart returns the later of the plan's own start and the reference
// event's period. Months before the reference event never participate in
// co-parental coordination.
func EffectiveStart(p WorkPlan, ref ReferenceEvent) calc.YearMonth {
	if !ref.Valid {
		return p.Start
	}
	return p.Start.Max(ref.Period())
}

// EligibleMonths returns how many of the plan's months fall inside the
// six-month eligibility window anchored at the reference event's period.
// A plan that ends before the reference period has zero eligible months and
// reduces to generic banding.
func EligibleMonths(p WorkPlan, ref ReferenceEvent) int {
	if !ref.Valid {
		return 0
	}
	windowStart := ref.Period()
	windowEnd := windowStart.AddMonths(coParentalWindow - 1)

	from := p.Start.Max(windowStart)
	to := p.End()
	if to.After(windowEnd) {
		to = windowEnd
	}
	if to.Before(from) {
		return 0
	}
	return from.MonthsUntil(to) + 1
}

// overlapLength returns m, the co-parental window length shared by both
// plans: at most six months, and no more than either plan's eligible count.
func overlapLength(a, b WorkPlan, ref ReferenceEvent) int {
	m := coParentalWindow
	if ea := EligibleMonths(a, ref); ea < m {
		m = ea
	}
	if eb := EligibleMonths(b, ref); eb < m {
		m = eb
	}
	return m
}
