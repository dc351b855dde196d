package app

import (
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/scheduler"
	"github.com/google/uuid"
)

// ErrStaleTicket is returned when a derivation finishes after a newer
// submission started or after the pending one was cancelled.
var ErrStaleTicket = errors.New("submission superseded")

// Ticket identifies one submission.
type Ticket string

// Session is the display state of one run: the latest committed result and
// the ticket of the submission in flight. Only the current ticket may commit.
type Session struct {
	mu          sync.Mutex
	pending     Ticket
	result      *domain.DerivedResult
	dropped     []scheduler.Dropped
	generatedAt time.Time
}

func NewSession() *Session {
	return &Session{}
}

// Begin starts a submission and supersedes any pending one.
func (s *Session) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = Ticket(uuid.New().String())
	return s.pending
}

// Commit stores r if t is still the pending ticket.
func (s *Session) Commit(t Ticket, r *domain.DerivedResult, dropped []scheduler.Dropped, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == "" || t != s.pending {
		return ErrStaleTicket
	}
	s.pending = ""
	s.result = r
	s.dropped = dropped
	s.generatedAt = at
	return nil
}

// Cancel abandons the pending submission, if any. It reports whether one was pending.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.pending != ""
	s.pending = ""
	return had
}

// Pending reports whether t is the submission in flight.
func (s *Session) Pending(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t != "" && t == s.pending
}

// Current returns the last committed result.
func (s *Session) Current() (*domain.DerivedResult, []scheduler.Dropped, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.dropped, s.result != nil
}

// GeneratedAt returns when the current result was committed.
func (s *Session) GeneratedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generatedAt
}

// Clear drops the committed result and any pending submission.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = ""
	s.result = nil
	s.dropped = nil
	s.generatedAt = time.Time{}
}
