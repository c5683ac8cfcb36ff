/*
reconcile.go - Dual-plan reconciliation ("6+6" allocation)

PURPOSE:
  Merges two parents' work plans into one payment schedule. The intricate
  part is anchoring band indices to the reference event rather than to each
  plan's own calendar start, and assigning the later/earlier roles:

  - The LATER plan (by effective start; ties go to A) has its first m
    overlap months recomputed on the co-parental table. The increase over
    its generic amount is recorded on the row but paid immediately.
  - The EARLIER plan receives separate retroactive top-up rows for band
    indices 3..m, dated at the later plan's k-th special month: the second
    parent's participation is what triggers back-pay for the first.

  Band indices 1-2 never earn retroactive credit. That cut-off is a fixed
  policy constant mirroring the statutory grace period, not something
  derived from the band tables.

FAILURE SEMANTICS:
  An absent/malformed reference date, or m <= 0, short-circuits to plain
  concatenation of both plans' generic rows under the same ordering. That is
  the designed "no special treatment applies" outcome, not an error path.
*/
package parental

import (
	"sort"

	"github.com/shootingstar112/startup-hr-sub000/calc"
	"github.com/shootingstar112/startup-hr-sub000/statute"
)

// retroactiveFromBand is the first band index eligible for retroactive
// top-up credit.
const retroactiveFromBand = 3

// Compute runs the full allocation. It is total: every input produces a
// result, and malformed coordination input degrades to generic banding.
func Compute(in Input) Result {
	table := in.Table
	if table.Bands == nil {
		table = statute.Default()
	}

	rows := append(
		baseRows(in.PlanA, PayerA, table),
		baseRows(in.PlanB, PayerB, table)...,
	)

	m := 0
	if in.Reference.Valid {
		m = overlapLength(in.PlanA, in.PlanB, in.Reference)
	}
	if m <= 0 {
		sortRows(rows)
		return Result{Rows: rows, Totals: Summarize(rows)}
	}

	// Role assignment: the plan with the later effective start is "later".
	// Equal effective starts deterministically select A as later.
	laterPlan, laterPayer := in.PlanA, PayerA
	earlierPlan, earlierPayer := in.PlanB, PayerB
	effA := EffectiveStart(in.PlanA, in.Reference)
	effB := EffectiveStart(in.PlanB, in.Reference)
	if effB.After(effA) {
		laterPlan, laterPayer = in.PlanB, PayerB
		earlierPlan, earlierPayer = in.PlanA, PayerA
	}
	laterEff := EffectiveStart(laterPlan, in.Reference)

	// Later plan: overlap months 1..m (indexed from its effective start) are
	// recomputed on the co-parental table. The increase over the generic
	// amount is carried on the row itself, paid immediately.
	for k := 1; k <= m; k++ {
		period := laterEff.AddMonths(k - 1)
		ownIdx := laterPlan.Start.MonthsUntil(period) + 1

		special := MonthlyAmount(laterPlan.MonthlyWage, k, statute.KindSpecial, table)
		generic := MonthlyAmount(laterPlan.MonthlyWage, ownIdx, laterPlan.Kind, table)

		topUp := special.Sub(generic)
		if topUp.IsNegative() {
			topUp = calc.Won(0)
		}
		for i := range rows {
			if rows[i].Payer == laterPayer && rows[i].Period.Equal(period) {
				rows[i].Amount = special
				rows[i].TopUp = topUp
				break
			}
		}
	}

	// Earlier plan: retroactive credit for band indices 3..m, dated at the
	// later plan's k-th special month. Zero or negative deltas are omitted,
	// never emitted as zero rows.
	for k := retroactiveFromBand; k <= m; k++ {
		special := MonthlyAmount(earlierPlan.MonthlyWage, k, statute.KindSpecial, table)
		generic := MonthlyAmount(earlierPlan.MonthlyWage, k, earlierPlan.Kind, table)
		delta := special.Sub(generic)
		if !delta.IsPositive() {
			continue
		}
		rows = append(rows, PaymentRow{
			Period:     laterEff.AddMonths(k - 1),
			Payer:      earlierPayer,
			Amount:     delta,
			TopUp:      delta,
			MonthIndex: 0,
		})
	}

	sortRows(rows)
	return Result{
		Rows:           rows,
		OverlapMonths:  m,
		SpecialApplied: true,
		Later:          laterPayer,
		Totals:         Summarize(rows),
	}
}

// baseRows emits a plan's generic monthly rows, one per plan month.
func baseRows(p WorkPlan, payer Payer, table statute.Table) []PaymentRow {
	rows := make([]PaymentRow, 0, p.Months)
	for i := 1; i <= p.Months; i++ {
		rows = append(rows, PaymentRow{
			Period:     p.Start.AddMonths(i - 1),
			Payer:      payer,
			Amount:     MonthlyAmount(p.MonthlyWage, i, p.Kind, table),
			MonthIndex: i,
		})
	}
	return rows
}

// sortRows applies the display ordering: ascending period, then payer A
// before B, then base rows before retroactive rows.
func sortRows(rows []PaymentRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.Period.Equal(b.Period) {
			return a.Period.Before(b.Period)
		}
		if a.Payer != b.Payer {
			return a.Payer < b.Payer
		}
		return !a.IsRetroactive() && b.IsRetroactive()
	})
}
