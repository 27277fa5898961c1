// Package session owns the single in-memory billing session shared by the
// HTTP handlers. The ledger itself is single-actor; the session serializes
// the concurrent requests of the HTTP surface in front of it.
package session

import (
	"sync"

	"github.com/villagekitchen/billing/internal/ledger"
)

type Session struct {
	mu sync.Mutex
	l  *ledger.Ledger
}

func New() *Session {
	return &Session{l: ledger.New()}
}

// With runs fn with exclusive access to the session ledger.
func (s *Session) With(fn func(l *ledger.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.l)
}

// Snapshot returns a value copy of the current ledger state.
func (s *Session) Snapshot() ledger.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.l.Snapshot()
}
