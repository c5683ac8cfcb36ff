package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shootingstar112/startup-hr-sub000/statute"
	"github.com/shootingstar112/startup-hr-sub000/store/sqlite"
)

func newSeededStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Seed(context.Background()))
	return store
}

func TestStore_SeedAndLoad(t *testing.T) {
	// GIVEN: A fresh catalog seeded from the built-in tables
	// WHEN: Loading every built-in year
	// THEN: Floors, band counts, rates, and caps round-trip exactly

	store := newSeededStore(t)
	builtin := statute.BuiltinCatalog{}

	years, err := store.Years()
	require.NoError(t, err)

	builtinYears, _ := builtin.Years()
	assert.Len(t, years, len(builtinYears))

	for _, y := range years {
		got, err := store.TableFor(y)
		require.NoError(t, err)
		want, err := builtin.TableFor(y)
		require.NoError(t, err)

		assert.Equal(t, want.Year, got.Year)
		assert.True(t, got.Floor.Equal(want.Floor), "floor for %d", y)

		for kind, wantBands := range want.Bands {
			require.Len(t, got.Bands[kind], len(wantBands), "bands for %d/%s", y, kind)
			for i, wb := range wantBands {
				gb := got.Bands[kind][i]
				assert.Equal(t, wb.FromIndex, gb.FromIndex)
				assert.Equal(t, wb.ToIndex, gb.ToIndex)
				assert.True(t, wb.Rate.Equal(gb.Rate), "rate %d/%s[%d]", y, kind, i)
				assert.True(t, wb.Cap.Equal(gb.Cap), "cap %d/%s[%d]", y, kind, i)
			}
		}
	}
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	store := newSeededStore(t)
	require.NoError(t, store.Seed(context.Background()))

	years, err := store.Years()
	require.NoError(t, err)
	builtinYears, _ := statute.BuiltinCatalog{}.Years()
	assert.Len(t, years, len(builtinYears))
}

func TestStore_UnknownYear(t *testing.T) {
	store := newSeededStore(t)

	_, err := store.TableFor(1999)
	assert.True(t, errors.Is(err, statute.ErrYearNotFound), "err = %v", err)
}
