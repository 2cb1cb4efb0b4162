package lexicon

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/traitlex/pkg/traitlex/internalerr"
)

// Large weighted lexicons are distributed as SQLite packs: a single
// lexicon_terms table keyed by (category, term). OpenSQLite reads a pack
// into an immutable Lexicon; WritePack produces one (see cmd/lexpack).

const packSchema = `
CREATE TABLE IF NOT EXISTS lexicon_terms (
	category TEXT NOT NULL,
	term TEXT NOT NULL,
	weight REAL NOT NULL,
	PRIMARY KEY(category, term)
);
`

// OpenSQLite loads a lexicon pack from a SQLite file.
func OpenSQLite(ctx context.Context, path string) (*Lexicon, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT category, term, weight FROM lexicon_terms")
	if err != nil {
		return nil, fmt.Errorf("read lexicon pack: %w", err)
	}
	defer rows.Close()

	builder := NewBuilder()
	count := 0
	for rows.Next() {
		var category, term string
		var weight float64
		if err := rows.Scan(&category, &term, &weight); err != nil {
			return nil, err
		}
		if err := builder.Add(Category(category), term, weight); err != nil {
			return nil, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, internalerr.ErrEmptyLexicon
	}

	return builder.Build(), nil
}

// WritePack writes a lexicon to a SQLite pack file, replacing any
// existing terms.
func WritePack(ctx context.Context, path string, lex *Lexicon) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	// WAL keeps pack writes atomic without blocking readers
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, packSchema); err != nil {
		return fmt.Errorf("init pack schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM lexicon_terms"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO lexicon_terms (category, term, weight) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, cat := range Categories {
		for _, e := range lex.Entries(cat) {
			if _, err := stmt.ExecContext(ctx, string(cat), e.Term, e.Weight); err != nil {
				return fmt.Errorf("write term %q: %w", e.Term, err)
			}
		}
	}

	return tx.Commit()
}
