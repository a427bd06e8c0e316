package cli

import (
	"context"
	"sync"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/services"
)

// MockRouter implements driving.Router for testing.
type MockRouter struct {
	mu       sync.Mutex
	Result   domain.RoutingResult
	Queries  []string
	Contexts []domain.StudentContext
}

func (m *MockRouter) Route(_ context.Context, query string, student domain.StudentContext) domain.RoutingResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, query)
	m.Contexts = append(m.Contexts, student.Clone())
	return m.Result
}

func (m *MockRouter) Classify(string) domain.ScopeVerdict {
	return domain.ScopeVerdict{Allowed: true, Category: domain.CategoryGeneral}
}

// MockCatalog implements driving.SpecialistCatalog for testing.
type MockCatalog struct {
	List []domain.SpecialistInfo
}

func (m *MockCatalog) Specialists() []domain.SpecialistInfo {
	return m.List
}

// MockPolicy implements driving.KeywordPolicy for testing.
type MockPolicy struct {
	KeywordTable domain.KeywordTable
}

func (m *MockPolicy) Table() domain.KeywordTable {
	return m.KeywordTable
}

func testAnswer() domain.RoutingResult {
	return domain.RoutingResult{
		Response:  "File the **FAFSA** by March 2.",
		AgentUsed: domain.SpecialistFinancialAid,
		Status:    domain.StatusSuccess,
	}
}

func testSpecialists() []domain.SpecialistInfo {
	return []domain.SpecialistInfo{
		{ID: domain.SpecialistFinancialAid, Title: "Financial Aid Specialist", Description: "FAFSA, Cal Grant, costs"},
		{ID: domain.SpecialistCareerCounselor, Title: "Career Counselor", Description: "Majors and careers"},
	}
}

// setupTestServices installs mock services and returns a cleanup function
// that restores flag state between tests.
func setupTestServices() (*MockRouter, func()) {
	mockRouter := &MockRouter{Result: testAnswer()}
	SetServices(&Services{
		Router:   mockRouter,
		Catalog:  &MockCatalog{List: testSpecialists()},
		Policy:   &MockPolicy{KeywordTable: domain.DefaultKeywordTable()},
		Sessions: services.NewSessionService(mockRouter, memory.NewSessionStore()),
	})

	originalTerminal := isTerminal
	originalStdin := stdinIsTerminal
	isTerminal = func(any) bool { return false }
	stdinIsTerminal = func() bool { return false }

	return mockRouter, func() {
		SetServices(nil)
		isTerminal = originalTerminal
		stdinIsTerminal = originalStdin
		askJSON = false
		askPlain = false
		askContext = nil
		specialistsJSON = false
		chatLineMode = false
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}
