package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// mockSpecialist implements driven.Specialist for testing.
type mockSpecialist struct {
	mu       sync.Mutex
	answer   string
	err      error
	panicVal any
	calls    int
	queries  []string
	contexts []domain.StudentContext
}

func newMockSpecialist(answer string) *mockSpecialist {
	return &mockSpecialist{answer: answer}
}

func (m *mockSpecialist) Answer(_ context.Context, query string, student domain.StudentContext) (string, error) {
	m.mu.Lock()
	m.calls++
	m.queries = append(m.queries, query)
	m.contexts = append(m.contexts, student)
	m.mu.Unlock()

	if m.panicVal != nil {
		panic(m.panicVal)
	}
	return m.answer, m.err
}

func (m *mockSpecialist) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// describedSpecialist adds driven.Describer to mockSpecialist.
type describedSpecialist struct {
	*mockSpecialist
	info domain.SpecialistInfo
}

func (d *describedSpecialist) Info() domain.SpecialistInfo {
	return d.info
}

// mockScopeFilter implements driven.ScopeFilter for testing.
type mockScopeFilter struct {
	verdict domain.ScopeVerdict
	queries []string
}

func (m *mockScopeFilter) Classify(query string) domain.ScopeVerdict {
	m.queries = append(m.queries, query)
	return m.verdict
}
