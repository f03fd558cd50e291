package domain

import (
	"errors"
	"math"
	"strings"
	"time"
)

// InventoryRecord is an immutable catalog entry. The wizard only ever reads
// these; editing happens through the catalog CLI.
type InventoryRecord struct {
	ID        int64
	Name      string
	Rate      float64
	HSN       string
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInventoryRecord creates a new catalog record with required fields
func NewInventoryRecord(name string, rate float64) *InventoryRecord {
	now := time.Now()
	return &InventoryRecord{
		Name:      strings.TrimSpace(name),
		Rate:      rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate returns an error if the record is invalid
func (r *InventoryRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("item name is required")
	}
	if r.Rate < 0 || math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) {
		return errors.New("rate must be a non-negative number")
	}
	return nil
}
