package mcp

import (
	"context"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// mockRouter is a mock implementation of driving.Router.
type mockRouter struct {
	result  domain.RoutingResult
	verdict domain.ScopeVerdict

	queries  []string
	contexts []domain.StudentContext
}

func (m *mockRouter) Route(_ context.Context, query string, student domain.StudentContext) domain.RoutingResult {
	m.queries = append(m.queries, query)
	m.contexts = append(m.contexts, student)
	return m.result
}

func (m *mockRouter) Classify(query string) domain.ScopeVerdict {
	m.queries = append(m.queries, query)
	return m.verdict
}

// mockCatalog is a mock implementation of driving.SpecialistCatalog.
type mockCatalog struct {
	infos []domain.SpecialistInfo
}

func (m *mockCatalog) Specialists() []domain.SpecialistInfo {
	return m.infos
}
