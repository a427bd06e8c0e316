package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu    sync.RWMutex
	turns map[string][]domain.Turn
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		turns: make(map[string][]domain.Turn),
	}
}

// Create registers a new session.
func (s *SessionStore) Create(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.turns[session.ID]; ok {
		return fmt.Errorf("session %s: %w", session.ID, domain.ErrAlreadyExists)
	}
	s.turns[session.ID] = []domain.Turn{}
	return nil
}

// Exists reports whether the session is live.
func (s *SessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.turns[sessionID]
	return ok, nil
}

// AppendTurn records a turn.
func (s *SessionStore) AppendTurn(_ context.Context, turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns, ok := s.turns[turn.SessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", turn.SessionID, domain.ErrSessionNotFound)
	}
	turn.AgentsConsulted = append([]string(nil), turn.AgentsConsulted...)
	s.turns[turn.SessionID] = append(turns, turn)
	return nil
}

// Turns returns a copy of the session's turns in order.
func (s *SessionStore) Turns(_ context.Context, sessionID string) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns, ok := s.turns[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionNotFound)
	}
	return append([]domain.Turn(nil), turns...), nil
}

// Delete discards the session and its transcript.
func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.turns[sessionID]; !ok {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionNotFound)
	}
	delete(s.turns, sessionID)
	return nil
}
