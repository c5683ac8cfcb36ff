package statute

import (
	"github.com/shopspring/decimal"
	"github.com/shootingstar112/startup-hr-sub000/calc"
)

// DefaultYear is the statutory year applied when a request does not pin one.
const DefaultYear = 2025

var (
	rateFull    = decimal.NewFromInt(1)
	rateReduced = decimal.RequireFromString("0.8")
)

// builtinTables are the published figures per statutory year. Figures are in
// whole won per month.
var builtinTables = map[int]Table{
	2024: {
		Year:  2024,
		Floor: calc.Won(700_000),
		Bands: map[PlanKind][]BandRule{
			KindNormal: {
				{FromIndex: 1, ToIndex: 6, Rate: rateFull, Cap: calc.Won(1_500_000)},
				{FromIndex: 7, ToIndex: 18, Rate: rateReduced, Cap: calc.Won(1_200_000)},
			},
			KindSingleParent: {
				{FromIndex: 1, ToIndex: 3, Rate: rateFull, Cap: calc.Won(2_500_000)},
				{FromIndex: 4, ToIndex: 6, Rate: rateFull, Cap: calc.Won(1_500_000)},
				{FromIndex: 7, ToIndex: 18, Rate: rateReduced, Cap: calc.Won(1_200_000)},
			},
			KindSpecial: specialLadder(2_000_000, 2_500_000, 3_000_000, 3_500_000, 4_000_000, 4_500_000),
		},
	},
	2025: {
		Year:  2025,
		Floor: calc.Won(700_000),
		Bands: map[PlanKind][]BandRule{
			KindNormal: {
				{FromIndex: 1, ToIndex: 3, Rate: rateFull, Cap: calc.Won(2_500_000)},
				{FromIndex: 4, ToIndex: 6, Rate: rateFull, Cap: calc.Won(2_000_000)},
				{FromIndex: 7, ToIndex: 18, Rate: rateReduced, Cap: calc.Won(1_600_000)},
			},
			KindSingleParent: {
				{FromIndex: 1, ToIndex: 3, Rate: rateFull, Cap: calc.Won(3_000_000)},
				{FromIndex: 4, ToIndex: 6, Rate: rateFull, Cap: calc.Won(2_000_000)},
				{FromIndex: 7, ToIndex: 18, Rate: rateReduced, Cap: calc.Won(1_600_000)},
			},
			KindSpecial: specialLadder(2_500_000, 2_500_000, 3_000_000, 3_500_000, 4_000_000, 4_500_000),
		},
	},
}

// specialLadder is the co-parental cap ladder: 100% of wage for the first six
// overlap months, with the cap climbing month over month. Each year's first
// rung matches or exceeds that year's normal cap, so co-parental banding
// never pays below generic.
func specialLadder(caps ...int64) []BandRule {
	rules := make([]BandRule, len(caps))
	for i, c := range caps {
		rules[i] = BandRule{FromIndex: i + 1, ToIndex: i + 1, Rate: rateFull, Cap: calc.Won(c)}
	}
	return rules
}
