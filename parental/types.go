/*
Package parental implements the parental-leave benefit allocator, including
the co-parental "6+6" coordination between two parents' leave plans.

PURPOSE:
  Given each parent's declared leave usage (start month, duration, reference
  wage) and the child's birth date, produce the monthly payment schedule:
  generic banded amounts for every plan month, enhanced co-parental amounts
  for the qualifying overlap months of the later-starting plan, and
  retroactive top-up rows for the earlier-starting plan once the later
  plan's participation confirms eligibility.

PIPELINE (leaves first):
  normalize (calc) -> banding (banding.go) -> per-period amount (amount.go)
  -> dual-plan reconciliation (reconcile.go) -> aggregation (aggregate.go)

DESIGN PRINCIPLES:
  1. Totality: Compute never errors. Malformed reference dates degrade to
     generic-only banding; malformed numbers were already clamped upstream.
  2. Purity: no state, no I/O. Every result is recomputed from inputs.
  3. Determinism: row ordering and the later/earlier role assignment are
     fixed conventions, stable under argument swaps.

SEE ALSO:
  - statute: The versioned rate/cap/floor tables
  - calc: Money, YearMonth, and the input normalizer
*/
package parental

import (
	"time"

	"github.com/shootingstar112/startup-hr-sub000/calc"
	"github.com/shootingstar112/startup-hr-sub000/statute"
)

// =============================================================================
// PAYERS
// =============================================================================

// Payer identifies which parent a row belongs to.
type Payer string

const (
	PayerA Payer = "A"
	PayerB Payer = "B"
)

// =============================================================================
// WORK PLAN - One parent's declared leave usage
// =============================================================================

// WorkPlan is one parent's leave declaration. Immutable once constructed;
// build it from raw form input with NormalizeWorkPlan.
type WorkPlan struct {
	Start       calc.YearMonth
	Months      int // clamped to [1,18]
	MonthlyWage calc.Money
	Kind        statute.PlanKind
}

// NormalizeWorkPlan builds a WorkPlan from raw form strings. Wage and month
// count go through the tolerant normalizer; an unparseable start month falls
// back to the given default so the plan can still be placed on a timeline.
func NormalizeWorkPlan(startRaw, monthsRaw, wageRaw, kindRaw string, fallbackStart calc.YearMonth) WorkPlan {
	start, ok := calc.ParseYearMonth(startRaw)
	if !ok {
		start = fallbackStart
	}
	return WorkPlan{
		Start:       start,
		Months:      calc.ClampMonths(calc.ParseCount(monthsRaw)),
		MonthlyWage: calc.ParseWon(wageRaw),
		Kind:        statute.ParseKind(kindRaw),
	}
}

// End returns the plan's last month (inclusive).
func (p WorkPlan) End() calc.YearMonth {
	return p.Start.AddMonths(p.Months - 1)
}

// =============================================================================
// REFERENCE EVENT - The child's birth date
// =============================================================================

// ReferenceEvent anchors co-parental eligibility. An invalid event (absent or
// malformed date) is a designed state: both plans then fall back to generic
// banding with no coordination.
type ReferenceEvent struct {
	Date  time.Time
	Valid bool
}

// NewReferenceEvent parses a raw date string under the strict
// "valid calendar date or nothing" contract.
func NewReferenceEvent(raw string) ReferenceEvent {
	d, ok := calc.ParseDate(raw)
	return ReferenceEvent{Date: d, Valid: ok}
}

// Period returns the event's calendar month. Only meaningful when Valid.
func (e ReferenceEvent) Period() calc.YearMonth {
	return calc.MonthOf(e.Date)
}

// =============================================================================
// PAYMENT ROW - Output record
// =============================================================================

// PaymentRow is one payable line. Base rows carry the plan's own 1-based
// month index; retroactive top-up rows carry index 0 and Amount == TopUp.
// Invariant: Amount >= TopUp >= 0. Months with no active plan produce no row.
type PaymentRow struct {
	Period     calc.YearMonth
	Payer      Payer
	Amount     calc.Money
	TopUp      calc.Money
	MonthIndex int
}

// IsRetroactive reports whether this row is a retroactive top-up credit.
func (r PaymentRow) IsRetroactive() bool {
	return r.MonthIndex == 0
}

// =============================================================================
// COMPUTE INPUT / RESULT
// =============================================================================

// Input is the validated record the allocator computes over.
type Input struct {
	PlanA     WorkPlan
	PlanB     WorkPlan
	Reference ReferenceEvent

	// Table is the statutory rule table to apply. Zero value means the
	// current default year.
	Table statute.Table
}

// Result is the full allocation breakdown.
type Result struct {
	Rows []PaymentRow

	// OverlapMonths is m, the qualifying co-parental window length (0 when
	// no special treatment applies).
	OverlapMonths int

	// SpecialApplied is true when co-parental banding was used.
	SpecialApplied bool

	// Later names the plan treated as later-starting (only meaningful when
	// SpecialApplied).
	Later Payer

	Totals Totals
}
