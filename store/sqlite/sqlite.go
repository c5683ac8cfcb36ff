/*
Package sqlite provides a SQLite-backed statute catalog.

PURPOSE:
  The statutory band tables are versioned by year and must be swappable
  without a rebuild. This store serves the same Catalog interface as the
  built-in tables, from a SQLite file that operations can update when new
  figures are published.

  This is a read-only configuration source at request time. No user input
  and no calculation result is ever written here; all computation stays
  stateless.

KEY TABLES:
  statute_years:  one row per statutory year (floor amount)
  statute_bands:  band rules per (year, kind): index range, rate, cap

SEEDING:
  Seed() copies the built-in tables in, so a fresh file immediately serves
  the current figures. Seeding is idempotent (INSERT OR IGNORE).

USAGE:
  store, err := sqlite.New("./data/rates.db")
  if err != nil { ... }
  defer store.Close()
  _ = store.Seed(ctx)
  table, err := store.TableFor(2025)

SEE ALSO:
  - statute: Catalog interface and the built-in tables
*/
package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/shootingstar112/startup-hr-sub000/calc"
	"github.com/shootingstar112/startup-hr-sub000/statute"
)

// Store implements statute.Catalog over a SQLite file.
type Store struct {
	db *sql.DB
}

// New opens (and migrates) a statute catalog. Use ":memory:" for tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "open statute db")
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrate statute db")
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS statute_years (
		year INTEGER PRIMARY KEY,
		floor_won INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS statute_bands (
		year INTEGER NOT NULL REFERENCES statute_years(year),
		kind TEXT NOT NULL,
		from_idx INTEGER NOT NULL,
		to_idx INTEGER NOT NULL,
		rate TEXT NOT NULL,
		cap_won INTEGER NOT NULL,
		PRIMARY KEY (year, kind, from_idx)
	);

	CREATE INDEX IF NOT EXISTS idx_bands_year_kind
		ON statute_bands(year, kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Seed loads the built-in tables into the catalog. Existing rows win, so a
// file with revised figures is never overwritten.
func (s *Store) Seed(ctx context.Context) error {
	builtin := statute.BuiltinCatalog{}
	years, err := builtin.Years()
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed")
	}
	defer tx.Rollback()

	for _, y := range years {
		table, err := builtin.TableFor(y)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO statute_years (year, floor_won) VALUES (?, ?)`,
			table.Year, table.Floor.Int64(),
		); err != nil {
			return errors.Wrapf(err, "seed year %d", y)
		}
		for kind, bands := range table.Bands {
			for _, b := range bands {
				if _, err := tx.ExecContext(ctx,
					`INSERT OR IGNORE INTO statute_bands
					 (year, kind, from_idx, to_idx, rate, cap_won)
					 VALUES (?, ?, ?, ?, ?, ?)`,
					table.Year, string(kind), b.FromIndex, b.ToIndex,
					b.Rate.String(), b.Cap.Int64(),
				); err != nil {
					return errors.Wrapf(err, "seed band %d/%s", y, kind)
				}
			}
		}
	}

	return errors.Wrap(tx.Commit(), "commit seed")
}

// TableFor loads one statutory year. statute.ErrYearNotFound when absent.
func (s *Store) TableFor(year int) (statute.Table, error) {
	var floorWon int64
	err := s.db.QueryRow(
		`SELECT floor_won FROM statute_years WHERE year = ?`, year,
	).Scan(&floorWon)
	if err == sql.ErrNoRows {
		return statute.Table{}, statute.ErrYearNotFound
	}
	if err != nil {
		return statute.Table{}, errors.Wrapf(err, "load year %d", year)
	}

	rows, err := s.db.Query(
		`SELECT kind, from_idx, to_idx, rate, cap_won
		 FROM statute_bands WHERE year = ? ORDER BY kind, from_idx`, year,
	)
	if err != nil {
		return statute.Table{}, errors.Wrapf(err, "load bands %d", year)
	}
	defer rows.Close()

	table := statute.Table{
		Year:  year,
		Floor: calc.Won(floorWon),
		Bands: make(map[statute.PlanKind][]statute.BandRule),
	}
	for rows.Next() {
		var (
			kind           string
			fromIdx, toIdx int
			rateStr        string
			capWon         int64
		)
		if err := rows.Scan(&kind, &fromIdx, &toIdx, &rateStr, &capWon); err != nil {
			return statute.Table{}, errors.Wrap(err, "scan band")
		}
		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return statute.Table{}, errors.Wrapf(err, "band rate %q", rateStr)
		}
		k := statute.PlanKind(kind)
		table.Bands[k] = append(table.Bands[k], statute.BandRule{
			FromIndex: fromIdx,
			ToIndex:   toIdx,
			Rate:      rate,
			Cap:       calc.Won(capWon),
		})
	}
	if err := rows.Err(); err != nil {
		return statute.Table{}, errors.Wrap(err, "iterate bands")
	}
	return table, nil
}

// Years lists the statutory years present in the catalog, ascending.
func (s *Store) Years() ([]int, error) {
	rows, err := s.db.Query(`SELECT year FROM statute_years ORDER BY year`)
	if err != nil {
		return nil, errors.Wrap(err, "list years")
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, errors.Wrap(err, "scan year")
		}
		years = append(years, y)
	}
	return years, rows.Err()
}
