package domain

// LineItem is one catalog record plus a quantity selected for invoicing.
// Discount is carried on the record but not yet applied downstream.
type LineItem struct {
	ID       int64
	Record   InventoryRecord
	Quantity float64
	Discount float64
}

// Amount is the per-line total. It is always derived from the authoritative
// rate and quantity, never cached, so the displayed value cannot drift from
// the computed subtotal.
func (li LineItem) Amount() float64 {
	return li.Record.Rate * li.Quantity
}
