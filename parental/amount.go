package parental

import (
	"github.com/shootingstar112/startup-hr-sub000/calc"
	"github.com/shootingstar112/startup-hr-sub000/statute"
)

// =============================================================================
// PER-PERIOD AMOUNT CALCULATOR
// =============================================================================

// MonthlyAmount computes the gross payable amount for one plan month:
//
//	clamp(trunc(wage × rate), floor, cap)
//
// idx is the 1-based band index. The result is truncated to whole won before
// clamping; a zero wage therefore clamps up to the statutory floor, never to
// zero. Stateless and callable per row; negative wages cannot reach here
// (the normalizer clamps them to zero).
func MonthlyAmount(wage calc.Money, idx int, kind statute.PlanKind, t statute.Table) calc.Money {
	rule := t.RuleFor(kind, idx)
	return wage.MulRate(rule.Rate).Clamp(t.Floor, rule.Cap)
}
