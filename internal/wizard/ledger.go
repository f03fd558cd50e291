package wizard

import (
	"math"

	"github.com/meera/gstbill/internal/domain"
)

// Ledger holds the in-progress set of line items for the invoice being
// built. All mutations are synchronous; the item slice is replaced on every
// change so callers holding an earlier Items() snapshot are unaffected.
type Ledger struct {
	items  []domain.LineItem
	nextID int64
}

// Add appends a line item for the given catalog record with quantity 1.
// If a line already references the same record, its quantity is incremented
// instead, so repeated adds accumulate rather than duplicate rows.
func (l *Ledger) Add(record domain.InventoryRecord) {
	for i, item := range l.items {
		if item.Record.ID == record.ID {
			next := make([]domain.LineItem, len(l.items))
			copy(next, l.items)
			next[i].Quantity++
			l.items = next
			return
		}
	}

	l.nextID++
	next := make([]domain.LineItem, len(l.items), len(l.items)+1)
	copy(next, l.items)
	l.items = append(next, domain.LineItem{
		ID:       l.nextID,
		Record:   record,
		Quantity: 1,
	})
}

// UpdateQuantity replaces the quantity of the targeted line. A value that is
// not a positive finite number is coerced to 1 rather than rejected: a bad
// keystroke must never leave the ledger holding zero, NaN, or a negative.
func (l *Ledger) UpdateQuantity(lineID int64, quantity float64) {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		quantity = 1
	}
	for i, item := range l.items {
		if item.ID == lineID {
			next := make([]domain.LineItem, len(l.items))
			copy(next, l.items)
			next[i].Quantity = quantity
			l.items = next
			return
		}
	}
}

// Remove deletes the targeted line; no-op if the id is unknown.
func (l *Ledger) Remove(lineID int64) {
	for i, item := range l.items {
		if item.ID == lineID {
			next := make([]domain.LineItem, 0, len(l.items)-1)
			next = append(next, l.items[:i]...)
			next = append(next, l.items[i+1:]...)
			l.items = next
			return
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.items = nil
}

// Items returns a copy of the current line items in insertion order.
func (l *Ledger) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of line items.
func (l *Ledger) Len() int {
	return len(l.items)
}
