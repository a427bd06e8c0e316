package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/counsel-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// sessionState is the live, in-process half of a session.
// mu serialises turns so a session answers one question at a time.
type sessionState struct {
	mu      sync.Mutex
	session domain.Session
	seq     int
}

// SessionService runs counseling sessions on top of a router.
// Student contexts live in memory and are never shared between sessions;
// transcripts go to the session store and are deleted on End.
type SessionService struct {
	router driving.Router
	store  driven.SessionStore

	mu       sync.RWMutex
	sessions map[string]*sessionState

	now   func() time.Time
	newID func() string
}

// NewSessionService creates a new session service.
func NewSessionService(router driving.Router, store driven.SessionStore) *SessionService {
	return &SessionService{
		router:   router,
		store:    store,
		sessions: make(map[string]*sessionState),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Start opens a session with an empty student context.
func (s *SessionService) Start(ctx context.Context) (*domain.Session, error) {
	session := domain.Session{
		ID:        s.newID(),
		StartedAt: s.now(),
		Context:   domain.NewStudentContext(),
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionState{session: session}
	s.mu.Unlock()

	logger.Debug("Session %s started", session.ID)
	return &session, nil
}

// Ask routes query with the session's context and records the turn.
func (s *SessionService) Ask(ctx context.Context, sessionID, query string) (domain.RoutingResult, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return domain.RoutingResult{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	result := s.router.Route(ctx, query, state.session.Context)

	state.seq++
	turn := domain.NewTurn(sessionID, state.seq, query, result, s.now())
	if err := s.store.AppendTurn(ctx, turn); err != nil {
		// The answer is still valid; only the transcript is incomplete.
		logger.Warn("Session %s: recording turn %d failed: %v", sessionID, turn.Seq, err)
	}

	return result, nil
}

// SetContext stores a student fact for the session.
func (s *SessionService) SetContext(_ context.Context, sessionID, key string, value any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("context key is empty: %w", domain.ErrInvalidInput)
	}

	state, err := s.state(sessionID)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Context[key] = value
	logger.Debug("Session %s: context %s=%v", sessionID, key, value)
	return nil
}

// Context returns a copy of the session's student context.
func (s *SessionService) Context(_ context.Context, sessionID string) (domain.StudentContext, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return state.session.Context.Clone(), nil
}

// History returns the session's turns in order.
func (s *SessionService) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	if _, err := s.state(sessionID); err != nil {
		return nil, err
	}

	turns, err := s.store.Turns(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return turns, nil
}

// End discards the session, its context and its transcript.
func (s *SessionService) End(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("end session %s: %w", sessionID, domain.ErrSessionNotFound)
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("end session %s: %w", sessionID, err)
	}

	logger.Debug("Session %s ended", sessionID)
	return nil
}

func (s *SessionService) state(sessionID string) (*sessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionNotFound)
	}
	return state, nil
}
