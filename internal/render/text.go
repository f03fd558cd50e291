package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const textWidth = 72

// RenderText lays the document out as fixed-width plain text. It walks the
// same sections in the same order as the PDF writer, so the two artifacts
// always agree.
func RenderText(doc *Document) string {
	var b strings.Builder

	sep := strings.Repeat("=", textWidth)
	rule := strings.Repeat("-", textWidth)

	b.WriteString(centerText(doc.Title, textWidth) + "\n")
	b.WriteString(centerText("("+doc.Designation+")", textWidth) + "\n")
	b.WriteString(sep + "\n")

	writeParty(&b, "", doc.Seller)

	if len(doc.Meta) > 0 {
		b.WriteString("\n")
		for _, f := range doc.Meta {
			b.WriteString(fmt.Sprintf("%-20s %s\n", f.Label+":", f.Value))
		}
	}

	if doc.Buyer.Name != "" || len(doc.Buyer.Lines) > 0 || len(doc.Buyer.Details) > 0 {
		b.WriteString("\nBill To:\n")
		writeParty(&b, "  ", doc.Buyer)
	}

	if len(doc.Items) > 0 {
		b.WriteString("\n" + rule + "\n")
		b.WriteString(fmt.Sprintf("%-4s %-26s %-8s %10s %10s %10s\n",
			"SL", "Description", "HSN", "Qty", "Rate", "Amount"))
		b.WriteString(rule + "\n")
		for _, row := range doc.Items {
			desc := row.Description
			if len(desc) > 26 {
				desc = desc[:23] + "..."
			}
			b.WriteString(fmt.Sprintf("%-4s %-26s %-8s %10s %10s %10s\n",
				row.SerialNo, desc, row.HSN, row.Quantity, row.Rate, row.Amount))
		}
		b.WriteString(rule + "\n")
		b.WriteString(fmt.Sprintf("%-31s %10s\n", "Total Qty", doc.TotalQuantity))
	}

	if len(doc.Totals) > 0 {
		b.WriteString("\n")
		for _, line := range doc.Totals {
			if line.Separator {
				b.WriteString(fmt.Sprintf("%72s\n", strings.Repeat("-", 28)))
			}
			b.WriteString(fmt.Sprintf("%-52s %19s\n", line.Label, line.Value))
		}
	}

	if len(doc.Bank) > 0 {
		b.WriteString("\nBank Details:\n")
		for _, f := range doc.Bank {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", f.Label+":", f.Value))
		}
	}

	if doc.Notes != "" {
		b.WriteString("\nNotes:\n")
		for _, line := range strings.Split(doc.Notes, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + sep + "\n")
	b.WriteString(centerText(doc.Footer, textWidth) + "\n")

	return b.String()
}

// WriteTextFile writes the plain-text rendering to the given path, creating
// parent directories as needed.
func WriteTextFile(doc *Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(path, []byte(RenderText(doc)), 0644)
}

func writeParty(b *strings.Builder, indent string, p Party) {
	if p.Name != "" {
		b.WriteString(indent + p.Name + "\n")
	}
	for _, line := range p.Lines {
		b.WriteString(indent + line + "\n")
	}
	for _, f := range p.Details {
		if f.Label == "" {
			b.WriteString(indent + f.Value + "\n")
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", indent, f.Label, f.Value))
	}
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
