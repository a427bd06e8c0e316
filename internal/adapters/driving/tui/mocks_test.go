package tui

import (
	"context"
	"sync"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// MockSessionService implements driving.SessionService for testing.
type MockSessionService struct {
	mu        sync.Mutex
	StartErr  error
	AskResult domain.RoutingResult
	ended     []string
}

func (m *MockSessionService) Start(context.Context) (*domain.Session, error) {
	if m.StartErr != nil {
		return nil, m.StartErr
	}
	return &domain.Session{ID: "session-1", Context: domain.StudentContext{}}, nil
}

func (m *MockSessionService) Ask(context.Context, string, string) (domain.RoutingResult, error) {
	return m.AskResult, nil
}

func (m *MockSessionService) SetContext(context.Context, string, string, any) error {
	return nil
}

func (m *MockSessionService) Context(context.Context, string) (domain.StudentContext, error) {
	return domain.StudentContext{}, nil
}

func (m *MockSessionService) History(context.Context, string) ([]domain.Turn, error) {
	return nil, nil
}

func (m *MockSessionService) End(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ended = append(m.ended, sessionID)
	return nil
}

func (m *MockSessionService) Ended() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ended...)
}

// MockCatalog implements driving.SpecialistCatalog for testing.
type MockCatalog struct {
	List []domain.SpecialistInfo
}

func (m *MockCatalog) Specialists() []domain.SpecialistInfo {
	return m.List
}
