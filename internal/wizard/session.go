package wizard

import (
	"errors"
	"time"

	"github.com/meera/gstbill/internal/domain"
)

// ErrNoItems blocks step navigation until the ledger has at least one line.
// It is the only user-visible failure the wizard produces.
var ErrNoItems = errors.New("add at least one item before continuing")

// Session is the single source of truth for one invoice-building flow: the
// ledger, the selected buyer, and the invoice options. It caches no derived
// totals; every consumer recomputes from the current state. One session per
// process, mutated only from the event loop.
type Session struct {
	ledger  Ledger
	buyer   *domain.Buyer
	options domain.InvoiceOptions

	dueDays int
	now     func() time.Time
}

// NewSession creates a session with default options. dueDays sets how far
// out the default due date lands; non-positive values mean 30.
func NewSession(dueDays int) *Session {
	s := &Session{dueDays: dueDays, now: time.Now}
	s.Reset()
	return s
}

// Ledger returns the session's line-item ledger.
func (s *Session) Ledger() *Ledger {
	return &s.ledger
}

// Buyer returns the selected buyer, or nil if none has been picked yet.
func (s *Session) Buyer() *domain.Buyer {
	return s.buyer
}

// SetBuyer records the buyer selection. Passing nil clears it.
func (s *Session) SetBuyer(b *domain.Buyer) {
	s.buyer = b
}

// Options returns the current invoice options.
func (s *Session) Options() domain.InvoiceOptions {
	return s.options
}

// SetOptions replaces the invoice options.
func (s *Session) SetOptions(o domain.InvoiceOptions) {
	s.options = o
}

// Reset restores the session to a freshly computed default: empty ledger,
// no buyer, default options with the due date dueDays from now.
func (s *Session) Reset() {
	s.ledger.Clear()
	s.buyer = nil
	s.options = domain.DefaultOptions(s.now(), s.dueDays)
}

// EnsureFresh resets the session when the flow is entered with an empty
// ledger, so stale buyer or option state from an abandoned run cannot leak
// into a new invoice.
func (s *Session) EnsureFresh() {
	if s.ledger.Len() == 0 {
		s.Reset()
	}
}

// CanAdvance reports whether the flow may move past the items step.
func (s *Session) CanAdvance() error {
	if s.ledger.Len() == 0 {
		return ErrNoItems
	}
	return nil
}
