package domain

import (
	"math"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	opts := DefaultOptions(now, 30)

	if opts.PaymentTerms != PaymentTerms30Days {
		t.Fatalf("expected 30-day terms, got %q", opts.PaymentTerms)
	}
	if opts.TransportMode != TransportRoad {
		t.Fatalf("expected road transport, got %q", opts.TransportMode)
	}
	if want := now.AddDate(0, 0, 30); !opts.DueDate.Equal(want) {
		t.Fatalf("expected due date %v, got %v", want, opts.DueDate)
	}
}

func TestDefaultOptions_DueDays(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	opts := DefaultOptions(now, 15)
	if want := now.AddDate(0, 0, 15); !opts.DueDate.Equal(want) {
		t.Fatalf("expected due date %v, got %v", want, opts.DueDate)
	}

	// Non-positive values fall back to 30
	opts = DefaultOptions(now, 0)
	if want := now.AddDate(0, 0, 30); !opts.DueDate.Equal(want) {
		t.Fatalf("expected fallback due date %v, got %v", want, opts.DueDate)
	}
}

func TestNewMetadata(t *testing.T) {
	issued := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	opts := DefaultOptions(issued, 30)
	opts.VehicleNo = "KA 01 AB 1234"

	meta := NewMetadata("INV-2026-007", issued, opts)

	if meta.InvoiceNo != "INV-2026-007" {
		t.Fatalf("unexpected invoice number %q", meta.InvoiceNo)
	}
	if !meta.InvoiceDate.Equal(issued) {
		t.Fatalf("unexpected invoice date %v", meta.InvoiceDate)
	}
	if meta.ModeOfPayment != "30 Days" {
		t.Fatalf("unexpected mode of payment %q", meta.ModeOfPayment)
	}
	if meta.DispatchedThrough != "By Road" {
		t.Fatalf("unexpected dispatch %q", meta.DispatchedThrough)
	}
	if meta.MotorVehicleNo != "KA 01 AB 1234" {
		t.Fatalf("unexpected vehicle number %q", meta.MotorVehicleNo)
	}
	if meta.DueDate == nil || !meta.DueDate.Equal(opts.DueDate) {
		t.Fatalf("unexpected due date %v", meta.DueDate)
	}
}

func TestNewMetadata_ZeroDueDateOmitted(t *testing.T) {
	issued := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	opts := InvoiceOptions{PaymentTerms: PaymentTermsImmediate}

	meta := NewMetadata("INV-2026-008", issued, opts)
	if meta.DueDate != nil {
		t.Fatalf("zero due date must stay unset, got %v", meta.DueDate)
	}
}

func TestInventoryRecordValidate(t *testing.T) {
	r := NewInventoryRecord("Steel Rod", 100)
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Name = "  "
	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}

	r.Name = "Steel Rod"
	r.Rate = -1
	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for negative rate")
	}

	r.Rate = math.NaN()
	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for NaN rate")
	}
}
