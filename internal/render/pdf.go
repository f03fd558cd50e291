package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait with 10mm margins leaves 190mm of usable width.
const (
	pageWidth  = 190.0
	halfWidth  = pageWidth / 2
	lineHeight = 5.0
)

// Item table column widths, summing to the page width.
var colWidths = [6]float64{12, 70, 24, 26, 28, 30}

var colHeaders = [6]string{"SL", "Description", "HSN/SAC", "Qty", "Rate", "Amount"}

// WritePDF renders the document to a paginated A4 PDF at the given path.
// The document's sections are written in their fixed order; empty sections
// are skipped. All values are already formatted, so this function does no
// arithmetic of its own.
func WritePDF(doc *Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	writeHeader(pdf, doc)
	writeTopSection(pdf, doc)
	writeBuyer(pdf, doc)
	writeItems(pdf, doc)
	writeTotals(pdf, doc)
	writeBank(pdf, doc)
	writeNotes(pdf, doc)
	writeFooter(pdf, doc)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writeHeader(pdf *gofpdf.Fpdf, doc *Document) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(pageWidth, 8, doc.Title, "LTR", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(pageWidth, 4, "("+doc.Designation+")", "LBR", 1, "C", false, 0, "")
	pdf.Ln(2)
}

// writeTopSection puts the seller block on the left and the invoice
// metadata rows on the right.
func writeTopSection(pdf *gofpdf.Fpdf, doc *Document) {
	left, _, _, _ := pdf.GetMargins()
	top := pdf.GetY()

	// Seller block
	pdf.SetFont("Helvetica", "B", 11)
	if doc.Seller.Name != "" {
		pdf.CellFormat(halfWidth, lineHeight, doc.Seller.Name, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8)
	for _, line := range doc.Seller.Lines {
		pdf.CellFormat(halfWidth, 4, line, "", 1, "L", false, 0, "")
	}
	for _, f := range doc.Seller.Details {
		pdf.CellFormat(halfWidth, 4, fieldText(f), "", 1, "L", false, 0, "")
	}
	sellerBottom := pdf.GetY()

	// Metadata rows
	pdf.SetXY(left+halfWidth, top)
	pdf.SetFont("Helvetica", "", 8)
	for _, f := range doc.Meta {
		pdf.SetX(left + halfWidth)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(40, 5, f.Label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(halfWidth-40, 5, f.Value, "1", 1, "L", false, 0, "")
	}
	metaBottom := pdf.GetY()

	if sellerBottom > metaBottom {
		pdf.SetY(sellerBottom)
	}
	pdf.Ln(3)
}

func writeBuyer(pdf *gofpdf.Fpdf, doc *Document) {
	if doc.Buyer.Name == "" && len(doc.Buyer.Lines) == 0 && len(doc.Buyer.Details) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(pageWidth, lineHeight, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if doc.Buyer.Name != "" {
		pdf.CellFormat(pageWidth, 4, doc.Buyer.Name, "", 1, "L", false, 0, "")
	}
	for _, line := range doc.Buyer.Lines {
		pdf.CellFormat(pageWidth, 4, line, "", 1, "L", false, 0, "")
	}
	for _, f := range doc.Buyer.Details {
		pdf.CellFormat(pageWidth, 4, fieldText(f), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeItems(pdf *gofpdf.Fpdf, doc *Document) {
	if len(doc.Items) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range colHeaders {
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range doc.Items {
		desc := row.Description
		if len(desc) > 48 {
			desc = desc[:45] + "..."
		}
		cells := [6]string{row.SerialNo, desc, row.HSN, row.Quantity, row.Rate, row.Amount}
		aligns := [6]string{"C", "L", "C", "R", "R", "R"}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 5, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 5, "Total Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 5, doc.TotalQuantity, "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[4]+colWidths[5], 5, "", "1", 1, "R", false, 0, "")
	pdf.Ln(3)
}

func writeTotals(pdf *gofpdf.Fpdf, doc *Document) {
	if len(doc.Totals) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 9)
	for _, line := range doc.Totals {
		border := ""
		if line.Separator {
			border = "T"
		}
		pdf.CellFormat(pageWidth-50, 6, line.Label, border, 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, line.Value, border, 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func writeBank(pdf *gofpdf.Fpdf, doc *Document) {
	if len(doc.Bank) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(pageWidth, lineHeight, "Bank Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, f := range doc.Bank {
		pdf.CellFormat(pageWidth, 4, fieldText(f), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeNotes(pdf *gofpdf.Fpdf, doc *Document) {
	if doc.Notes == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(pageWidth, lineHeight, "Notes:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(pageWidth, 4, doc.Notes, "", "L", false)
	pdf.Ln(3)
}

func writeFooter(pdf *gofpdf.Fpdf, doc *Document) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(pageWidth, 6, doc.Footer, "T", 1, "C", false, 0, "")
}

func fieldText(f Field) string {
	if f.Label == "" {
		return f.Value
	}
	return f.Label + ": " + f.Value
}
