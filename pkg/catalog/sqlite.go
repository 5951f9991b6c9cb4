package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver
)

const pricingSchema = `
CREATE TABLE IF NOT EXISTS pricing (
	provider TEXT NOT NULL,
	model TEXT NOT NULL,
	input_per_million TEXT NOT NULL,
	output_per_million TEXT NOT NULL,
	context_window INTEGER NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (provider, model)
);

CREATE TABLE IF NOT EXISTS catalog_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// LoadSQLite reads the pricing table of the SQLite database at path,
// ordered by position. Prices are stored as decimal strings.
func LoadSQLite(ctx context.Context, path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, pricingSchema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT provider, model, input_per_million, output_per_million, context_window
		FROM pricing
		ORDER BY position, provider, model`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing: %w", err)
	}
	defer rows.Close()

	var entries []PricingEntry
	for rows.Next() {
		var (
			e             PricingEntry
			input, output string
		)
		if err := rows.Scan(&e.Provider, &e.Model, &input, &output, &e.ContextWindow); err != nil {
			return nil, fmt.Errorf("failed to scan pricing row: %w", err)
		}
		if e.InputPerMillion, err = decimal.NewFromString(input); err != nil {
			return nil, fmt.Errorf("%w: %s/%s: input price %q", ErrInvalidEntry, e.Provider, e.Model, input)
		}
		if e.OutputPerMillion, err = decimal.NewFromString(output); err != nil {
			return nil, fmt.Errorf("%w: %s/%s: output price %q", ErrInvalidEntry, e.Provider, e.Model, output)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pricing rows: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog %s has no models", path)
	}

	var asOf time.Time
	var raw string
	err = db.QueryRowContext(ctx, `SELECT value FROM catalog_meta WHERE key = 'as_of'`).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("failed to read catalog metadata: %w", err)
	default:
		if asOf, err = time.Parse(AsOfLayout, raw); err != nil {
			return nil, fmt.Errorf("invalid as_of %q: %w", raw, err)
		}
	}

	return New(asOf, entries...)
}

// WriteSQLite stores c in the SQLite database at path, replacing any
// existing pricing rows.
func WriteSQLite(ctx context.Context, path string, c *Catalog) error {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, pricingSchema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM pricing`); err != nil {
		return fmt.Errorf("failed to clear pricing: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pricing (provider, model, input_per_million, output_per_million, context_window, position)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range c.entries {
		if _, err := stmt.ExecContext(ctx, e.Provider, e.Model,
			e.InputPerMillion.String(), e.OutputPerMillion.String(), e.ContextWindow, i); err != nil {
			return fmt.Errorf("failed to insert %s/%s: %w", e.Provider, e.Model, err)
		}
	}

	if !c.asOf.IsZero() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO catalog_meta (key, value) VALUES ('as_of', ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			c.asOf.Format(AsOfLayout)); err != nil {
			return fmt.Errorf("failed to write catalog metadata: %w", err)
		}
	}

	return tx.Commit()
}

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}
