package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/meera/gstbill/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func newTestSession() *Session {
	s := NewSession(30)
	s.now = fixedNow
	s.Reset()
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()

	if s.Buyer() != nil {
		t.Fatalf("expected no buyer on a fresh session")
	}
	if s.Ledger().Len() != 0 {
		t.Fatalf("expected empty ledger, got %d items", s.Ledger().Len())
	}

	opts := s.Options()
	if opts.PaymentTerms != domain.PaymentTerms30Days {
		t.Fatalf("expected 30-day terms, got %q", opts.PaymentTerms)
	}
	if opts.TransportMode != domain.TransportRoad {
		t.Fatalf("expected road transport, got %q", opts.TransportMode)
	}
	wantDue := fixedNow().AddDate(0, 0, 30)
	if !opts.DueDate.Equal(wantDue) {
		t.Fatalf("expected due date %v, got %v", wantDue, opts.DueDate)
	}
}

func TestSession_ConfiguredDueDays(t *testing.T) {
	s := NewSession(15)
	s.now = fixedNow
	s.Reset()

	wantDue := fixedNow().AddDate(0, 0, 15)
	if !s.Options().DueDate.Equal(wantDue) {
		t.Fatalf("expected due date %v, got %v", wantDue, s.Options().DueDate)
	}
}

func TestSession_CanAdvance(t *testing.T) {
	s := newTestSession()

	if err := s.CanAdvance(); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems on empty ledger, got %v", err)
	}

	s.Ledger().Add(domain.InventoryRecord{ID: 1, Name: "Widget", Rate: 100})
	if err := s.CanAdvance(); err != nil {
		t.Fatalf("unexpected error with items present: %v", err)
	}
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession()
	s.Ledger().Add(domain.InventoryRecord{ID: 1, Name: "Widget", Rate: 100})
	s.SetBuyer(&domain.Buyer{ID: 5, Name: "ACME"})

	opts := s.Options()
	opts.Notes = "handle with care"
	s.SetOptions(opts)

	s.Reset()

	if s.Ledger().Len() != 0 {
		t.Fatalf("expected empty ledger after reset")
	}
	if s.Buyer() != nil {
		t.Fatalf("expected buyer cleared after reset")
	}
	if s.Options().Notes != "" {
		t.Fatalf("expected default options after reset, notes is %q", s.Options().Notes)
	}
}

func TestSession_EnsureFresh(t *testing.T) {
	// A session with items keeps its state
	s := newTestSession()
	s.Ledger().Add(domain.InventoryRecord{ID: 1, Name: "Widget", Rate: 100})
	s.SetBuyer(&domain.Buyer{ID: 5, Name: "ACME"})

	s.EnsureFresh()

	if s.Buyer() == nil {
		t.Fatalf("in-progress session must not be reset")
	}

	// An abandoned session with an empty ledger is reset
	s.Ledger().Clear()
	s.EnsureFresh()

	if s.Buyer() != nil {
		t.Fatalf("expected stale buyer cleared when re-entering with empty ledger")
	}
}
