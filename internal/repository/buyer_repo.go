package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/meera/gstbill/internal/db"
	"github.com/meera/gstbill/internal/domain"
)

// BuyerRepo is a SQLite implementation of BuyerRepository
type BuyerRepo struct {
	db *db.DB
}

// NewBuyerRepo creates a new BuyerRepo
func NewBuyerRepo(database *db.DB) *BuyerRepo {
	return &BuyerRepo{db: database}
}

// Create inserts a new buyer into the database
func (r *BuyerRepo) Create(ctx context.Context, buyer *domain.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return fmt.Errorf("invalid buyer: %w", err)
	}

	query := `
		INSERT INTO buyers (name, address, gstin, pan, state, state_code, place_of_supply, balance, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		buyer.Name,
		joinLines(buyer.AddressLines),
		buyer.GSTIN,
		buyer.PAN,
		buyer.State,
		buyer.StateCode,
		buyer.PlaceOfSupply,
		buyer.Balance,
		buyer.CreatedAt.Format(timeLayout),
		buyer.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create buyer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get buyer ID: %w", err)
	}

	buyer.ID = id
	return nil
}

// GetByID retrieves a buyer by ID
func (r *BuyerRepo) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, buyerSelect+" WHERE id = ?", id))
}

// GetByName retrieves a buyer by name
func (r *BuyerRepo) GetByName(ctx context.Context, name string) (*domain.Buyer, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, buyerSelect+" WHERE name = ?", name))
}

// List retrieves all buyers ordered by name
func (r *BuyerRepo) List(ctx context.Context) ([]*domain.Buyer, error) {
	rows, err := r.db.QueryContext(ctx, buyerSelect+" ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}
	defer rows.Close()

	buyers := make([]*domain.Buyer, 0)
	for rows.Next() {
		buyer, err := scanBuyer(rows.Scan)
		if err != nil {
			return nil, err
		}
		buyers = append(buyers, buyer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buyers: %w", err)
	}

	return buyers, nil
}

// Update updates an existing buyer
func (r *BuyerRepo) Update(ctx context.Context, buyer *domain.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return fmt.Errorf("invalid buyer: %w", err)
	}

	query := `
		UPDATE buyers
		SET name = ?, address = ?, gstin = ?, pan = ?, state = ?, state_code = ?, place_of_supply = ?, balance = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		buyer.Name,
		joinLines(buyer.AddressLines),
		buyer.GSTIN,
		buyer.PAN,
		buyer.State,
		buyer.StateCode,
		buyer.PlaceOfSupply,
		buyer.Balance,
		formatTime(),
		buyer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update buyer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("buyer not found")
	}

	return nil
}

// SetBalance replaces a buyer's outstanding balance
func (r *BuyerRepo) SetBalance(ctx context.Context, id int64, balance float64) error {
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return fmt.Errorf("balance must be a finite number")
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE buyers SET balance = ?, updated_at = ? WHERE id = ?",
		balance, formatTime(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("buyer not found")
	}

	return nil
}

// Delete removes a buyer
func (r *BuyerRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM buyers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete buyer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("buyer not found")
	}

	return nil
}

const buyerSelect = `
	SELECT id, name, address, gstin, pan, state, state_code, place_of_supply, balance, created_at, updated_at
	FROM buyers
`

func (r *BuyerRepo) scanOne(row *sql.Row) (*domain.Buyer, error) {
	buyer, err := scanBuyer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("buyer not found: %w", err)
		}
		return nil, err
	}
	return buyer, nil
}

func scanBuyer(scan func(...any) error) (*domain.Buyer, error) {
	buyer := &domain.Buyer{}
	var address, gstin, pan, state, stateCode, placeOfSupply sql.NullString
	var createdAt, updatedAt string

	err := scan(
		&buyer.ID,
		&buyer.Name,
		&address,
		&gstin,
		&pan,
		&state,
		&stateCode,
		&placeOfSupply,
		&buyer.Balance,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan buyer: %w", err)
	}

	buyer.AddressLines = splitLines(address.String)
	buyer.GSTIN = gstin.String
	buyer.PAN = pan.String
	buyer.State = state.String
	buyer.StateCode = stateCode.String
	buyer.PlaceOfSupply = placeOfSupply.String

	if buyer.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if buyer.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return buyer, nil
}
