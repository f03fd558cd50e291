package render

import (
	"reflect"
	"testing"
	"time"

	"github.com/meera/gstbill/internal/domain"
)

func testInput() Input {
	due := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	return Input{
		Company: domain.Company{
			Name:         "Meera Traders",
			AddressLines: []string{"12 MG Road", "Bengaluru 560001"},
			GSTIN:        "29ABCDE1234F1Z5",
			State:        "Karnataka",
			StateCode:    "29",
		},
		Buyer: domain.Buyer{
			Name:         "ACME Industries",
			AddressLines: []string{"Plot 7, Industrial Area"},
			GSTIN:        "27AAAAA0000A1Z5",
			State:        "Maharashtra",
			StateCode:    "27",
		},
		Meta: domain.InvoiceMetadata{
			InvoiceNo:     "INV-2026-007",
			InvoiceDate:   time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
			DueDate:       &due,
			ModeOfPayment: "30 Days",
		},
		Items: []domain.LineItem{
			{ID: 1, Record: domain.InventoryRecord{ID: 1, Name: "Steel Rod", Rate: 100, HSN: "7214", Unit: "Nos"}, Quantity: 2},
		},
		Tax: domain.TaxConfig{RatePercent: 18},
		Bank: domain.BankDetails{
			AccountHolder: "Meera Traders",
			BankName:      "State Bank",
			AccountNo:     "1234567890",
		},
		Notes:    "Goods once sold will not be taken back.",
		Currency: "Rs.",
	}
}

func findTotal(doc *Document, label string) (TotalLine, bool) {
	for _, line := range doc.Totals {
		if line.Label == label {
			return line, true
		}
	}
	return TotalLine{}, false
}

func TestBuildDocument_FixedSections(t *testing.T) {
	doc, err := BuildDocument(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Tax Invoice" {
		t.Fatalf("expected title 'Tax Invoice', got %q", doc.Title)
	}
	if doc.Designation != "ORIGINAL FOR RECIPIENT" {
		t.Fatalf("unexpected designation %q", doc.Designation)
	}
	if doc.Footer != "Thank you for your business!" {
		t.Fatalf("unexpected footer %q", doc.Footer)
	}
	if doc.Seller.Name != "Meera Traders" {
		t.Fatalf("unexpected seller %q", doc.Seller.Name)
	}
	if doc.Buyer.Name != "ACME Industries" {
		t.Fatalf("unexpected buyer %q", doc.Buyer.Name)
	}
}

func TestBuildDocument_MetaFields(t *testing.T) {
	doc, err := BuildDocument(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Meta) < 2 {
		t.Fatalf("expected at least invoice number and date, got %v", doc.Meta)
	}
	if doc.Meta[0] != (Field{"Invoice No.", "INV-2026-007"}) {
		t.Fatalf("unexpected first meta field %v", doc.Meta[0])
	}
	if doc.Meta[1] != (Field{"Date", "15-08-2026"}) {
		t.Fatalf("unexpected date field %v", doc.Meta[1])
	}

	for _, f := range doc.Meta {
		if f.Value == "" {
			t.Fatalf("empty meta field %q must be omitted", f.Label)
		}
	}
}

func TestBuildDocument_ItemRows(t *testing.T) {
	doc, err := BuildDocument(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Items) != 1 {
		t.Fatalf("expected 1 row, got %d", len(doc.Items))
	}
	row := doc.Items[0]
	if row.SerialNo != "1" {
		t.Fatalf("expected serial 1, got %q", row.SerialNo)
	}
	if row.Quantity != "2 Nos" {
		t.Fatalf("expected quantity '2 Nos', got %q", row.Quantity)
	}
	if row.Rate != "100.00" || row.Amount != "200.00" {
		t.Fatalf("unexpected rate/amount %q/%q", row.Rate, row.Amount)
	}
	if doc.TotalQuantity != "2" {
		t.Fatalf("expected total quantity 2, got %q", doc.TotalQuantity)
	}
}

func TestBuildDocument_TotalQuantityIgnoresDigitBearingUnits(t *testing.T) {
	in := testInput()
	in.Items = []domain.LineItem{
		{ID: 1, Record: domain.InventoryRecord{ID: 1, Name: "Granite Slab", Rate: 400, HSN: "6802", Unit: "M2"}, Quantity: 2.5},
		{ID: 2, Record: domain.InventoryRecord{ID: 2, Name: "River Sand", Rate: 900, HSN: "2505", Unit: "M3"}, Quantity: 1.5},
	}

	doc, err := BuildDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Items[0].Quantity != "2.5 M2" {
		t.Fatalf("expected quantity '2.5 M2', got %q", doc.Items[0].Quantity)
	}
	if doc.TotalQuantity != "4" {
		t.Fatalf("expected total quantity 4, got %q", doc.TotalQuantity)
	}
}

func TestBuildDocument_Totals(t *testing.T) {
	doc, err := BuildDocument(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, ok := findTotal(doc, "Subtotal")
	if !ok || sub.Value != "Rs. 200.00" {
		t.Fatalf("unexpected subtotal line %v", sub)
	}
	tax, ok := findTotal(doc, "IGST (18%)")
	if !ok || tax.Value != "Rs. 36.00" {
		t.Fatalf("unexpected tax line %v", tax)
	}
	grand, ok := findTotal(doc, "GRAND TOTAL")
	if !ok || grand.Value != "Rs. 236.00" {
		t.Fatalf("unexpected grand total line %v", grand)
	}
	if !grand.Separator {
		t.Fatalf("grand total must draw a separator")
	}
}

func TestBuildDocument_ZeroTaxOmitsTaxLine(t *testing.T) {
	in := testInput()
	in.Tax.RatePercent = 0

	doc, err := BuildDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := findTotal(doc, "IGST (0%)"); ok {
		t.Fatalf("zero tax must not produce a tax line")
	}
	grand, _ := findTotal(doc, "GRAND TOTAL")
	if grand.Value != "Rs. 200.00" {
		t.Fatalf("unexpected grand total %q", grand.Value)
	}
}

func TestBuildDocument_PreviousBalanceLines(t *testing.T) {
	in := testInput()
	in.PreviousBalance = 50

	doc, err := BuildDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev, ok := findTotal(doc, "Previous Balance")
	if !ok || prev.Value != "Rs. 50.00" {
		t.Fatalf("unexpected previous balance line %v", prev)
	}
	due, ok := findTotal(doc, "Balance Due")
	if !ok || due.Value != "Rs. 286.00" {
		t.Fatalf("unexpected balance due line %v", due)
	}

	// Omitted entirely at zero
	in.PreviousBalance = 0
	doc, err = BuildDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := findTotal(doc, "Previous Balance"); ok {
		t.Fatalf("zero previous balance must not produce balance lines")
	}
}

func TestBuildDocument_EmptySectionsOmitted(t *testing.T) {
	in := Input{
		Company: domain.Company{Name: "Meera Traders"},
		Buyer:   domain.Buyer{Name: "ACME"},
		Meta: domain.InvoiceMetadata{
			InvoiceNo:   "INV-2026-001",
			InvoiceDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	doc, err := BuildDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Items) != 0 {
		t.Fatalf("expected no item rows, got %d", len(doc.Items))
	}
	if len(doc.Bank) != 0 {
		t.Fatalf("expected no bank fields, got %v", doc.Bank)
	}
	if doc.Notes != "" {
		t.Fatalf("expected no notes, got %q", doc.Notes)
	}
	if len(doc.Seller.Details) != 0 {
		t.Fatalf("expected no seller details, got %v", doc.Seller.Details)
	}
}

func TestBuildDocument_Deterministic(t *testing.T) {
	in := testInput()
	in.PreviousBalance = 50

	a, errA := BuildDocument(in)
	b, errB := BuildDocument(in)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical input produced different documents")
	}
}
