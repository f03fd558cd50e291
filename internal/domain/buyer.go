package domain

import (
	"errors"
	"strings"
	"time"
)

// Buyer is a customer profile. Balance is the outstanding amount carried
// forward from earlier invoices; it feeds the running-balance line of the
// next invoice.
type Buyer struct {
	ID            int64
	Name          string
	AddressLines  []string
	GSTIN         string
	PAN           string
	State         string
	StateCode     string
	PlaceOfSupply string
	Balance       float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBuyer creates a new buyer with required fields
func NewBuyer(name string) *Buyer {
	now := time.Now()
	return &Buyer{
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate returns an error if the buyer is invalid
func (b *Buyer) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("buyer name is required")
	}
	return nil
}
