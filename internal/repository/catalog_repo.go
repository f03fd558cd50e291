package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meera/gstbill/internal/db"
	"github.com/meera/gstbill/internal/domain"
)

// CatalogRepo is a SQLite implementation of CatalogRepository
type CatalogRepo struct {
	db *db.DB
}

// NewCatalogRepo creates a new CatalogRepo
func NewCatalogRepo(database *db.DB) *CatalogRepo {
	return &CatalogRepo{db: database}
}

// Create inserts a new catalog record into the database
func (r *CatalogRepo) Create(ctx context.Context, record *domain.InventoryRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid catalog item: %w", err)
	}

	query := `
		INSERT INTO catalog_items (name, rate, hsn, unit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		record.Name,
		record.Rate,
		record.HSN,
		record.Unit,
		record.CreatedAt.Format(timeLayout),
		record.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get catalog item ID: %w", err)
	}

	record.ID = id
	return nil
}

// GetByID retrieves a catalog record by ID
func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (*domain.InventoryRecord, error) {
	query := `
		SELECT id, name, rate, hsn, unit, created_at, updated_at
		FROM catalog_items
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves all catalog records ordered by name
func (r *CatalogRepo) List(ctx context.Context) ([]*domain.InventoryRecord, error) {
	query := `
		SELECT id, name, rate, hsn, unit, created_at, updated_at
		FROM catalog_items
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// Search retrieves catalog records whose name or HSN matches the query
func (r *CatalogRepo) Search(ctx context.Context, search string) ([]*domain.InventoryRecord, error) {
	query := `
		SELECT id, name, rate, hsn, unit, created_at, updated_at
		FROM catalog_items
		WHERE name LIKE ? OR hsn LIKE ?
		ORDER BY name
	`

	pattern := "%" + search + "%"
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog items: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// Update updates an existing catalog record
func (r *CatalogRepo) Update(ctx context.Context, record *domain.InventoryRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid catalog item: %w", err)
	}

	query := `
		UPDATE catalog_items
		SET name = ?, rate = ?, hsn = ?, unit = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		record.Name,
		record.Rate,
		record.HSN,
		record.Unit,
		formatTime(),
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update catalog item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("catalog item not found")
	}

	return nil
}

// Delete removes a catalog record
func (r *CatalogRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM catalog_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("catalog item not found")
	}

	return nil
}

func (r *CatalogRepo) scanOne(row *sql.Row) (*domain.InventoryRecord, error) {
	record := &domain.InventoryRecord{}
	var hsn, unit sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Rate,
		&hsn,
		&unit,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("catalog item not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}

	record.HSN = hsn.String
	record.Unit = unit.String

	if record.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if record.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return record, nil
}

func (r *CatalogRepo) scanAll(rows *sql.Rows) ([]*domain.InventoryRecord, error) {
	records := make([]*domain.InventoryRecord, 0)
	for rows.Next() {
		record := &domain.InventoryRecord{}
		var hsn, unit sql.NullString
		var createdAt, updatedAt string

		err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Rate,
			&hsn,
			&unit,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}

		record.HSN = hsn.String
		record.Unit = unit.String

		if record.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if record.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog items: %w", err)
	}

	return records, nil
}
