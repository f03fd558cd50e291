package repository

import (
	"context"

	"github.com/meera/gstbill/internal/domain"
)

// CatalogRepository manages inventory record persistence
type CatalogRepository interface {
	Create(ctx context.Context, record *domain.InventoryRecord) error
	GetByID(ctx context.Context, id int64) (*domain.InventoryRecord, error)
	List(ctx context.Context) ([]*domain.InventoryRecord, error)
	Search(ctx context.Context, query string) ([]*domain.InventoryRecord, error)
	Update(ctx context.Context, record *domain.InventoryRecord) error
	Delete(ctx context.Context, id int64) error
}

// BuyerRepository manages buyer profile persistence
type BuyerRepository interface {
	Create(ctx context.Context, buyer *domain.Buyer) error
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)
	GetByName(ctx context.Context, name string) (*domain.Buyer, error)
	List(ctx context.Context) ([]*domain.Buyer, error)
	Update(ctx context.Context, buyer *domain.Buyer) error
	SetBalance(ctx context.Context, id int64, balance float64) error
	Delete(ctx context.Context, id int64) error
}

// SequenceRepository hands out invoice numbers from a per-year counter
type SequenceRepository interface {
	// Next reserves and returns the next invoice number, e.g. "INV-2026-007"
	Next(ctx context.Context, prefix string, year int) (string, error)
}
