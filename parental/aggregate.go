package parental

import (
	"github.com/shootingstar112/startup-hr-sub000/calc"
)

// =============================================================================
// AGGREGATOR - Pure reductions over payment rows
// =============================================================================

// Totals summarizes a row set. The sums are order-independent even though
// row sequence is meaningful for display.
type Totals struct {
	Total   calc.Money
	ByPayer map[Payer]calc.Money
	TopUps  calc.Money
}

// Summarize reduces rows into totals. Pure and idempotent: the same row set
// always yields the same totals.
func Summarize(rows []PaymentRow) Totals {
	t := Totals{
		ByPayer: map[Payer]calc.Money{
			PayerA: calc.Won(0),
			PayerB: calc.Won(0),
		},
	}
	for _, r := range rows {
		t.Total = t.Total.Add(r.Amount)
		t.ByPayer[r.Payer] = t.ByPayer[r.Payer].Add(r.Amount)
		t.TopUps = t.TopUps.Add(r.TopUp)
	}
	return t
}
