package wizard

import (
	"math"
	"testing"

	"github.com/meera/gstbill/internal/domain"
)

func record(id int64, name string, rate float64) domain.InventoryRecord {
	return domain.InventoryRecord{ID: id, Name: name, Rate: rate}
}

func TestLedger_AddNewRecords(t *testing.T) {
	var l Ledger

	l.Add(record(1, "Widget", 100))
	l.Add(record(2, "Gadget", 250))

	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Record.Name != "Widget" || items[1].Record.Name != "Gadget" {
		t.Fatalf("items out of insertion order: %v", items)
	}
	if items[0].Quantity != 1 || items[1].Quantity != 1 {
		t.Fatalf("expected quantity 1 for new lines, got %v and %v", items[0].Quantity, items[1].Quantity)
	}
	if items[0].ID == items[1].ID {
		t.Fatalf("expected distinct line ids, both are %d", items[0].ID)
	}
}

func TestLedger_AddSameRecordMerges(t *testing.T) {
	var l Ledger

	l.Add(record(1, "Widget", 100))
	l.Add(record(1, "Widget", 100))
	l.Add(record(1, "Widget", 100))

	if l.Len() != 1 {
		t.Fatalf("expected a single merged line, got %d", l.Len())
	}
	if got := l.Items()[0].Quantity; got != 3 {
		t.Fatalf("expected quantity 3 after merging, got %v", got)
	}
}

func TestLedger_UpdateQuantity(t *testing.T) {
	var l Ledger
	l.Add(record(1, "Widget", 100))
	id := l.Items()[0].ID

	l.UpdateQuantity(id, 2.5)
	if got := l.Items()[0].Quantity; got != 2.5 {
		t.Fatalf("expected quantity 2.5, got %v", got)
	}
}

func TestLedger_UpdateQuantityCoercesBadValues(t *testing.T) {
	cases := []struct {
		name string
		qty  float64
	}{
		{"zero", 0},
		{"negative", -3},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l Ledger
			l.Add(record(1, "Widget", 100))
			id := l.Items()[0].ID

			l.UpdateQuantity(id, tc.qty)
			if got := l.Items()[0].Quantity; got != 1 {
				t.Fatalf("expected quantity coerced to 1, got %v", got)
			}
		})
	}
}

func TestLedger_UpdateQuantityUnknownID(t *testing.T) {
	var l Ledger
	l.Add(record(1, "Widget", 100))

	l.UpdateQuantity(999, 5)

	if got := l.Items()[0].Quantity; got != 1 {
		t.Fatalf("unknown id must not change anything, quantity is %v", got)
	}
}

func TestLedger_Remove(t *testing.T) {
	var l Ledger
	l.Add(record(1, "Widget", 100))
	l.Add(record(2, "Gadget", 250))
	id := l.Items()[0].ID

	l.Remove(id)

	if l.Len() != 1 {
		t.Fatalf("expected 1 item after removal, got %d", l.Len())
	}
	if got := l.Items()[0].Record.Name; got != "Gadget" {
		t.Fatalf("removed the wrong line, remaining is %q", got)
	}

	// Unknown id is a no-op
	l.Remove(999)
	if l.Len() != 1 {
		t.Fatalf("remove of unknown id must be a no-op, got %d items", l.Len())
	}
}

func TestLedger_Clear(t *testing.T) {
	var l Ledger
	l.Add(record(1, "Widget", 100))
	l.Add(record(2, "Gadget", 250))

	l.Clear()

	if l.Len() != 0 {
		t.Fatalf("expected empty ledger after clear, got %d items", l.Len())
	}
}

func TestLedger_ItemsSnapshotIsIsolated(t *testing.T) {
	var l Ledger
	l.Add(record(1, "Widget", 100))

	snapshot := l.Items()
	l.UpdateQuantity(snapshot[0].ID, 7)

	if snapshot[0].Quantity != 1 {
		t.Fatalf("snapshot mutated by later update: %v", snapshot[0].Quantity)
	}

	snapshot[0].Quantity = 99
	if got := l.Items()[0].Quantity; got != 7 {
		t.Fatalf("ledger mutated through snapshot: %v", got)
	}
}
