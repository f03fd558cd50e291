package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meera/gstbill/internal/db"
)

// SequenceRepo is a SQLite implementation of SequenceRepository
type SequenceRepo struct {
	db *db.DB
}

// NewSequenceRepo creates a new SequenceRepo
func NewSequenceRepo(database *db.DB) *SequenceRepo {
	return &SequenceRepo{db: database}
}

// Next reserves the next invoice number for the given year inside a
// transaction, so two invocations can never hand out the same number.
func (r *SequenceRepo) Next(ctx context.Context, prefix string, year int) (string, error) {
	if prefix == "" {
		prefix = "INV"
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last int
	found := true
	err = tx.QueryRowContext(ctx, "SELECT last_number FROM invoice_sequence WHERE year = ?", year).Scan(&last)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("failed to read sequence: %w", err)
		}
		found = false
		last = 0
	}

	next := last + 1
	if !found {
		_, err = tx.ExecContext(ctx, "INSERT INTO invoice_sequence (year, last_number) VALUES (?, ?)", year, next)
	} else {
		_, err = tx.ExecContext(ctx, "UPDATE invoice_sequence SET last_number = ? WHERE year = ?", next, year)
	}
	if err != nil {
		return "", fmt.Errorf("failed to advance sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit sequence: %w", err)
	}

	return fmt.Sprintf("%s-%d-%03d", prefix, year, next), nil
}
