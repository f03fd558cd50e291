package domain

import "time"

type PaymentTerms string

const (
	PaymentTermsImmediate PaymentTerms = "immediate"
	PaymentTerms15Days    PaymentTerms = "15days"
	PaymentTerms30Days    PaymentTerms = "30days"
	PaymentTerms60Days    PaymentTerms = "60days"
)

// Label returns the human-readable form used on the printed invoice
func (p PaymentTerms) Label() string {
	switch p {
	case PaymentTermsImmediate:
		return "Immediate"
	case PaymentTerms15Days:
		return "15 Days"
	case PaymentTerms30Days:
		return "30 Days"
	case PaymentTerms60Days:
		return "60 Days"
	default:
		return string(p)
	}
}

type TransportMode string

const (
	TransportRoad TransportMode = "road"
	TransportRail TransportMode = "rail"
	TransportAir  TransportMode = "air"
	TransportShip TransportMode = "ship"
)

// Label returns the dispatch wording used on the printed invoice
func (t TransportMode) Label() string {
	switch t {
	case TransportRoad:
		return "By Road"
	case TransportRail:
		return "By Rail"
	case TransportAir:
		return "By Air"
	case TransportShip:
		return "By Ship"
	default:
		return string(t)
	}
}

// InvoiceOptions are the user-editable settings collected on the review step.
type InvoiceOptions struct {
	PaymentTerms  PaymentTerms
	DueDate       time.Time
	Notes         string
	TransportMode TransportMode
	VehicleNo     string
}

// DefaultOptions returns the options a fresh wizard session starts with:
// 30-day terms, due date dueDays out, road transport, everything else empty.
// A non-positive dueDays falls back to 30.
func DefaultOptions(now time.Time, dueDays int) InvoiceOptions {
	if dueDays <= 0 {
		dueDays = 30
	}
	return InvoiceOptions{
		PaymentTerms:  PaymentTerms30Days,
		DueDate:       now.AddDate(0, 0, dueDays),
		TransportMode: TransportRoad,
	}
}

// InvoiceMetadata identifies a single invoice. InvoiceNo and InvoiceDate are
// the minimum required pair; the logistics fields print only when set.
type InvoiceMetadata struct {
	InvoiceNo         string
	InvoiceDate       time.Time
	DueDate           *time.Time
	ModeOfPayment     string
	EWayBillNo        string
	DeliveryNote      string
	ReferenceNo       string
	BuyerOrderNo      string
	DispatchDocNo     string
	DispatchedThrough string
	Destination       string
	MotorVehicleNo    string
	TermsOfDelivery   string
}

// NewMetadata assembles invoice metadata from a reserved invoice number,
// the issue time, and the wizard's options.
func NewMetadata(invoiceNo string, issuedAt time.Time, opts InvoiceOptions) InvoiceMetadata {
	meta := InvoiceMetadata{
		InvoiceNo:         invoiceNo,
		InvoiceDate:       issuedAt,
		ModeOfPayment:     opts.PaymentTerms.Label(),
		DispatchedThrough: opts.TransportMode.Label(),
		MotorVehicleNo:    opts.VehicleNo,
	}
	if !opts.DueDate.IsZero() {
		due := opts.DueDate
		meta.DueDate = &due
	}
	return meta
}

// TaxConfig is a single percentage rate applied uniformly to the subtotal.
type TaxConfig struct {
	RatePercent float64
}

// TotalsSummary is the verified numeric summary of an invoice. It is always
// recomputed from the line items, never stored or mutated in place.
type TotalsSummary struct {
	Subtotal       float64
	TaxAmount      float64
	RoundOff       float64
	GrandTotal     float64
	RunningBalance float64
}
