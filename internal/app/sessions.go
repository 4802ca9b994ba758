package app

import (
	"sync"

	"github.com/google/uuid"

	"hotelbook/internal/domain"
)

// Sessions is the registry of live wizard sessions. Each session owns its
// wizard; the registry only maps IDs to them.
type Sessions struct {
	search *SearchService
	ledger domain.Ledger
	opts   []WizardOption

	mu      sync.RWMutex
	wizards map[string]*Wizard
}

func NewSessions(search *SearchService, ledger domain.Ledger, opts ...WizardOption) *Sessions {
	return &Sessions{
		search:  search,
		ledger:  ledger,
		opts:    opts,
		wizards: make(map[string]*Wizard),
	}
}

// Create starts a new wizard session and returns its ID.
func (s *Sessions) Create() (string, *Wizard) {
	w := NewWizard(s.search, s.ledger, s.opts...)
	id := uuid.NewString()
	s.mu.Lock()
	s.wizards[id] = w
	s.mu.Unlock()
	return id, w
}

func (s *Sessions) Get(id string) (*Wizard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wizards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

// Delete drops a session. Deleting an unknown ID is a no-op.
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	delete(s.wizards, id)
	s.mu.Unlock()
}

// Len reports how many sessions are live.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wizards)
}
