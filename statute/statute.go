/*
Package statute holds the statutory rate, cap, and floor tables for the
parental leave benefit, versioned by statutory year.

PURPOSE:
  Benefit amounts are pure arithmetic over these tables:

    gross = clamp(trunc(wage × rate), floor, cap)

  The rate and cap depend on the 1-based month index within a work plan
  ("band") and on the plan kind (normal, single-parent, or the special
  co-parental table that applies during a qualifying "6+6" overlap).
  The floor is flat per year.

VERSIONING:
  Tables change by statutory year and are swappable: the built-in Catalog
  serves the hardcoded tables below, and store/sqlite serves the same shape
  from a SQLite file so deployments can publish revised figures without a
  rebuild. Calculators depend only on the Catalog interface.

BAND SHAPE (all years here):
  - Month indices 1-6 pay at 100% of the reference wage
  - Month indices 7-18 pay at 80%
  - Caps step down (or, for the special table, up) within those ranges
  - The special table only covers indices 1-6; beyond that callers fall
    back to the normal table

SEE ALSO:
  - parental/amount.go: The clamp arithmetic over these tables
  - store/sqlite: The file-backed Catalog
*/
package statute

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/shootingstar112/startup-hr-sub000/calc"
)

// =============================================================================
// PLAN KINDS
// =============================================================================

// PlanKind selects which cap column applies to a work plan.
type PlanKind string

const (
	KindNormal       PlanKind = "normal"
	KindSingleParent PlanKind = "single_parent"

	// KindSpecial is the co-parental ("6+6") table. It is never set on user
	// input; the reconciler applies it to qualifying overlap months.
	KindSpecial PlanKind = "special"
)

// ParseKind maps a raw form value onto a plan kind, defaulting to normal.
// KindSpecial is internal and not accepted from input.
func ParseKind(raw string) PlanKind {
	switch PlanKind(raw) {
	case KindSingleParent:
		return KindSingleParent
	default:
		return KindNormal
	}
}

// =============================================================================
// BAND RULES
// =============================================================================

// BandRule is one contiguous run of month indices sharing a rate and cap.
type BandRule struct {
	FromIndex int // inclusive, 1-based
	ToIndex   int // inclusive
	Rate      decimal.Decimal
	Cap       calc.Money
}

// Contains reports whether the 1-based month index falls in this band.
func (b BandRule) Contains(idx int) bool {
	return idx >= b.FromIndex && idx <= b.ToIndex
}

// Table is the full rule set for one statutory year.
type Table struct {
	Year  int
	Floor calc.Money
	Bands map[PlanKind][]BandRule
}

// RuleFor returns the band rule for a kind and month index. When the kind's
// bands do not cover the index (the special table stops at 6), it falls back
// to the normal table; indices past the last normal band reuse the final
// normal band, so out-of-range lookups stay total.
func (t Table) RuleFor(kind PlanKind, idx int) BandRule {
	if idx < 1 {
		idx = 1
	}
	for _, b := range t.Bands[kind] {
		if b.Contains(idx) {
			return b
		}
	}
	normal := t.Bands[KindNormal]
	for _, b := range normal {
		if b.Contains(idx) {
			return b
		}
	}
	return normal[len(normal)-1]
}

// =============================================================================
// CATALOG - Versioned table source
// =============================================================================

// ErrYearNotFound is returned when no table exists for a statutory year.
var ErrYearNotFound = errors.New("statute: no table for year")

// Catalog resolves the rule table for a statutory year.
type Catalog interface {
	TableFor(year int) (Table, error)
	Years() ([]int, error)
}

// BuiltinCatalog serves the hardcoded tables in tables.go.
type BuiltinCatalog struct{}

func (BuiltinCatalog) TableFor(year int) (Table, error) {
	t, ok := builtinTables[year]
	if !ok {
		return Table{}, ErrYearNotFound
	}
	return t, nil
}

func (BuiltinCatalog) Years() ([]int, error) {
	years := make([]int, 0, len(builtinTables))
	for y := range builtinTables {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}

// Default returns the current statutory table. Callers that need a specific
// year go through a Catalog instead.
func Default() Table {
	return builtinTables[DefaultYear]
}
