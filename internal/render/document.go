package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meera/gstbill/internal/domain"
	"github.com/meera/gstbill/internal/service"
)

const (
	docTitle    = "Tax Invoice"
	designation = "ORIGINAL FOR RECIPIENT"
	footerNote  = "Thank you for your business!"

	dateLayout = "02-01-2006"
)

// Field is one labelled line of a document section. A field with an empty
// label renders as a bare line.
type Field struct {
	Label string
	Value string
}

// Party is a seller or buyer block. Fields that were absent in the input do
// not appear at all; nothing renders as an empty placeholder.
type Party struct {
	Name    string
	Lines   []string
	Details []Field
}

// Row is one line of the items table. All values are pre-formatted strings;
// the writers below never touch the numbers again.
type Row struct {
	SerialNo    string
	Description string
	HSN         string
	Quantity    string
	Rate        string
	Amount      string
}

// TotalLine is one row of the totals block. Separator draws a rule above it.
type TotalLine struct {
	Label     string
	Value     string
	Separator bool
}

// Document is the fixed-layout invoice representation. Section order is
// fixed; any section whose backing data is absent is simply empty and the
// writers skip it. Identical inputs always produce an identical Document.
type Document struct {
	Title         string
	Designation   string
	Seller        Party
	Meta          []Field
	Buyer         Party
	Items         []Row
	TotalQuantity string
	Totals        []TotalLine
	Bank          []Field
	Notes         string
	Footer        string
}

// Input collects everything a document is assembled from. The document is
// built only at render time; it is not a persisted entity.
type Input struct {
	Company         domain.Company
	Buyer           domain.Buyer
	Meta            domain.InvoiceMetadata
	Items           []domain.LineItem
	Tax             domain.TaxConfig
	PreviousBalance float64
	Bank            domain.BankDetails
	Notes           string
	Currency        string
}

// BuildDocument maps the input to the fixed-section document. It is a pure
// function: no clock, no I/O, no hidden state. Monetary values come from
// ComputeTotals and are formatted exactly once here, so the printed total is
// byte-for-byte the computed one. A totals fault is returned as the error
// while the document still carries the safe fallback summary.
func BuildDocument(in Input) (*Document, error) {
	currency := in.Currency
	if currency == "" {
		currency = "Rs."
	}

	totals, calcErr := service.ComputeTotals(in.Items, in.Tax.RatePercent, in.PreviousBalance)

	doc := &Document{
		Title:       docTitle,
		Designation: designation,
		Seller:      sellerParty(in.Company),
		Meta:        metaFields(in.Meta),
		Buyer:       buyerParty(in.Buyer),
		Items:       itemRows(in.Items),
		Notes:       strings.TrimSpace(in.Notes),
		Footer:      footerNote,
	}

	// Aggregate the bare quantities, not the unit-suffixed row strings,
	// so units carrying digits (M2, M3) do not leak into the sum.
	quantities := make([]string, len(in.Items))
	for i, item := range in.Items {
		quantities[i] = trimFloat(item.Quantity)
	}
	doc.TotalQuantity = trimFloat(service.ComputeTotalQuantity(quantities))

	doc.Totals = totalLines(totals, in.Tax.RatePercent, in.PreviousBalance, currency)
	doc.Bank = bankFields(in.Bank)

	return doc, calcErr
}

func sellerParty(c domain.Company) Party {
	p := Party{Name: c.Name, Lines: presentLines(c.AddressLines)}
	if c.GSTIN != "" {
		p.Details = append(p.Details, Field{"GSTIN/UIN", c.GSTIN})
	}
	if c.State != "" {
		state := c.State
		if c.StateCode != "" {
			state = fmt.Sprintf("%s (%s)", c.State, c.StateCode)
		}
		p.Details = append(p.Details, Field{"State", state})
	}
	if contact := strings.Join(presentLines(c.Contact), ", "); contact != "" {
		p.Details = append(p.Details, Field{"Contact", contact})
	}
	if c.Email != "" {
		p.Details = append(p.Details, Field{"E-Mail", c.Email})
	}
	if c.Website != "" {
		p.Details = append(p.Details, Field{"", c.Website})
	}
	return p
}

func buyerParty(b domain.Buyer) Party {
	p := Party{Name: b.Name, Lines: presentLines(b.AddressLines)}
	if b.GSTIN != "" {
		p.Details = append(p.Details, Field{"GSTIN", b.GSTIN})
	}
	if b.PAN != "" {
		p.Details = append(p.Details, Field{"PAN", b.PAN})
	}
	if b.State != "" {
		state := b.State
		if b.StateCode != "" {
			state = fmt.Sprintf("%s (%s)", b.State, b.StateCode)
		}
		p.Details = append(p.Details, Field{"State", state})
	}
	if b.PlaceOfSupply != "" {
		p.Details = append(p.Details, Field{"Place of Supply", b.PlaceOfSupply})
	}
	return p
}

func metaFields(m domain.InvoiceMetadata) []Field {
	fields := []Field{
		{"Invoice No.", m.InvoiceNo},
		{"Date", m.InvoiceDate.Format(dateLayout)},
	}

	optional := []Field{
		{"Mode of Payment", m.ModeOfPayment},
		{"e-Way Bill No.", m.EWayBillNo},
		{"Delivery Note", m.DeliveryNote},
		{"Reference No.", m.ReferenceNo},
		{"Buyer's Order No.", m.BuyerOrderNo},
		{"Dispatch Doc No.", m.DispatchDocNo},
		{"Dispatched Through", m.DispatchedThrough},
		{"Destination", m.Destination},
		{"Motor Vehicle No.", m.MotorVehicleNo},
		{"Terms of Delivery", m.TermsOfDelivery},
	}
	if m.DueDate != nil {
		fields = append(fields, Field{"Due Date", m.DueDate.Format(dateLayout)})
	}
	for _, f := range optional {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func itemRows(items []domain.LineItem) []Row {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		qty := trimFloat(item.Quantity)
		if item.Record.Unit != "" && qty != "0" {
			qty = qty + " " + item.Record.Unit
		}
		rows = append(rows, Row{
			SerialNo:    strconv.Itoa(i + 1),
			Description: item.Record.Name,
			HSN:         item.Record.HSN,
			Quantity:    qty,
			Rate:        formatAmount(item.Record.Rate),
			Amount:      formatAmount(item.Amount()),
		})
	}
	return rows
}

func totalLines(t domain.TotalsSummary, ratePercent, previousBalance float64, currency string) []TotalLine {
	lines := []TotalLine{
		{Label: "Subtotal", Value: FormatMoney(currency, t.Subtotal)},
	}
	if t.TaxAmount > 0 {
		lines = append(lines, TotalLine{
			Label: fmt.Sprintf("IGST (%s%%)", trimFloat(ratePercent)),
			Value: FormatMoney(currency, t.TaxAmount),
		})
	}
	if t.RoundOff != 0 {
		lines = append(lines, TotalLine{Label: "Round Off", Value: FormatMoney(currency, t.RoundOff)})
	}
	lines = append(lines, TotalLine{
		Label:     "GRAND TOTAL",
		Value:     FormatMoney(currency, t.GrandTotal),
		Separator: true,
	})
	if previousBalance != 0 {
		lines = append(lines,
			TotalLine{Label: "Previous Balance", Value: FormatMoney(currency, previousBalance)},
			TotalLine{Label: "Balance Due", Value: FormatMoney(currency, t.RunningBalance)},
		)
	}
	return lines
}

func bankFields(b domain.BankDetails) []Field {
	all := []Field{
		{"A/c Holder", b.AccountHolder},
		{"Bank", b.BankName},
		{"A/c No.", b.AccountNo},
		{"Branch & IFSC", b.BranchAndIFSC},
		{"SWIFT", b.SwiftCode},
	}
	var fields []Field
	for _, f := range all {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// presentLines drops empty entries so missing address lines are skipped,
// not rendered blank.
func presentLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// formatAmount renders a plain table number to 2 decimals; non-finite
// values fall back to zero.
func formatAmount(v float64) string {
	if !finite(v) {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

// trimFloat renders a float without trailing zeros ("2", "2.5"),
// falling back to "0" for non-finite values.
func trimFloat(v float64) string {
	if !finite(v) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
