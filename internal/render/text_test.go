package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meera/gstbill/internal/domain"
)

func TestRenderText_Sections(t *testing.T) {
	doc, err := BuildDocument(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := RenderText(doc)

	for _, want := range []string{
		"Tax Invoice",
		"(ORIGINAL FOR RECIPIENT)",
		"Meera Traders",
		"Invoice No.:",
		"INV-2026-007",
		"Bill To:",
		"ACME Industries",
		"Steel Rod",
		"Total Qty",
		"GRAND TOTAL",
		"Rs. 236.00",
		"Bank Details:",
		"Notes:",
		"Thank you for your business!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered text missing %q", want)
		}
	}
}

func TestRenderText_SkipsEmptySections(t *testing.T) {
	in := testInput()
	in.Bank = domain.BankDetails{}
	in.Notes = ""

	doc, err := BuildDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := RenderText(doc)
	if strings.Contains(out, "Bank Details:") {
		t.Fatalf("empty bank section must be skipped")
	}
	if strings.Contains(out, "Notes:") {
		t.Fatalf("empty notes section must be skipped")
	}
}

func TestWriteTextFile(t *testing.T) {
	doc, err := BuildDocument(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "INV-2026-007.txt")
	if err := WriteTextFile(doc, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.Contains(string(data), "INV-2026-007") {
		t.Fatalf("written file missing invoice number")
	}
}

func TestWritePDF(t *testing.T) {
	doc, err := BuildDocument(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "INV-2026-007.pdf")
	if err := WritePDF(doc, path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("output is not a PDF")
	}
}
