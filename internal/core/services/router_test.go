package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/logger"
)

const (
	financialAnswer = "**FAFSA Guidance**\nSubmit by March 2."
	careerAnswer    = "**Major Selection**\nExplore your interests."
	courseAnswer    = "**Course Load**\n12 units is full time."
)

// newTestRouter builds a router over the default table with the given specialists registered.
func newTestRouter(t *testing.T, specialists map[string]*mockSpecialist) *Router {
	t.Helper()
	table := domain.DefaultKeywordTable()
	router := NewRouter(NewScopeFilter(table), table, nil)
	for _, id := range table.SpecialistIDs() {
		if s, ok := specialists[id]; ok {
			require.NoError(t, router.Register(id, s))
		}
	}
	return router
}

func allSpecialists() map[string]*mockSpecialist {
	return map[string]*mockSpecialist{
		domain.SpecialistFinancialAid:     newMockSpecialist(financialAnswer),
		domain.SpecialistCareerCounselor:  newMockSpecialist(careerAnswer),
		domain.SpecialistCourseDifficulty: newMockSpecialist(courseAnswer),
	}
}

// captureLogs redirects logger output for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	prev := logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(prev) })
	return buf
}

func TestRouter_BlockedQuery(t *testing.T) {
	specialists := allSpecialists()
	router := newTestRouter(t, specialists)

	queries := []string{
		"Can you diagnose my rash?",
		"What's the best video game this year?",
		"Do my homework on the FAFSA for me",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			result := router.Route(context.Background(), q, nil)

			assert.Equal(t, domain.StatusBlocked, result.Status)
			assert.Equal(t, domain.AgentCoordinator, result.AgentUsed)
			assert.Nil(t, result.AgentsConsulted)
			assert.Contains(t, result.Response, "I can't help with")
		})
	}

	for id, s := range specialists {
		assert.Zero(t, s.Calls(), "specialist %s must not be called", id)
	}
}

func TestRouter_ProfessionsInCareerQuestionsAreNotBlocked(t *testing.T) {
	router := newTestRouter(t, allSpecialists())

	queries := []string{
		"What major should I choose to become a lawyer?",
		"Is a film major good for a career in the movie industry?",
		"Which courses prepare me for a pharmacy career with prescription drugs?",
		"What major helps me diagnose patients as a doctor?",
		"Do celebrity chefs need a culinary degree for their career?",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			result := router.Route(context.Background(), q, nil)

			assert.Equal(t, domain.StatusSuccess, result.Status)
			consulted := append([]string{result.AgentUsed}, result.AgentsConsulted...)
			assert.Contains(t, consulted, domain.SpecialistCareerCounselor)
		})
	}
}

func TestRouter_BlockedResponseNamesReason(t *testing.T) {
	router := newTestRouter(t, allSpecialists())

	result := router.Route(context.Background(), "I want legal advice", nil)

	assert.Contains(t, result.Response, "I can't help with legal advice.")
}

func TestRouter_CoordinatorFallback(t *testing.T) {
	specialists := allSpecialists()
	router := newTestRouter(t, specialists)

	for _, q := range []string{"hello", "", "   ", "What is UC Berkeley like?"} {
		t.Run(q, func(t *testing.T) {
			result := router.Route(context.Background(), q, nil)

			assert.Equal(t, domain.StatusSuccess, result.Status)
			assert.Equal(t, domain.AgentCoordinator, result.AgentUsed)
			assert.Nil(t, result.AgentsConsulted)
			assert.Contains(t, result.Response, `For your question about: "`+q+`"`)
			assert.Contains(t, result.Response, "Financial Aid Specialist")
		})
	}

	for _, s := range specialists {
		assert.Zero(t, s.Calls())
	}
}

func TestRouter_SingleSpecialistPassthrough(t *testing.T) {
	tests := []struct {
		query string
		want  string
		text  string
	}{
		{"How much is tuition at UCLA?", domain.SpecialistFinancialAid, financialAnswer},
		{"What internship should I look for?", domain.SpecialistCareerCounselor, careerAnswer},
		{"I'm struggling in my chemistry class", domain.SpecialistCourseDifficulty, courseAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			router := newTestRouter(t, allSpecialists())

			result := router.Route(context.Background(), tt.query, nil)

			assert.Equal(t, domain.StatusSuccess, result.Status)
			assert.Equal(t, tt.want, result.AgentUsed)
			assert.Equal(t, tt.text, result.Response)
			assert.Nil(t, result.AgentsConsulted)
		})
	}
}

func TestRouter_MultiSpecialist(t *testing.T) {
	router := newTestRouter(t, allSpecialists())

	result := router.Route(context.Background(), "I need help with FAFSA and choosing a major", nil)

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, domain.AgentMultiAgent, result.AgentUsed)
	assert.Equal(t, []string{domain.SpecialistFinancialAid, domain.SpecialistCareerCounselor}, result.AgentsConsulted)

	fi := strings.Index(result.Response, financialAnswer)
	ci := strings.Index(result.Response, careerAnswer)
	require.GreaterOrEqual(t, fi, 0)
	require.GreaterOrEqual(t, ci, 0)
	assert.Less(t, fi, ci)
	assert.NotContains(t, result.Response, courseAnswer)
}

func TestRouter_MultiSpecialistFollowsTableOrder(t *testing.T) {
	router := newTestRouter(t, allSpecialists())
	require.Equal(t, domain.CategoryCareer, router.Classify("What career can I get in financial planning?").Category)

	result := router.Route(context.Background(), "What career can I get in financial planning?", nil)

	assert.Equal(t, domain.AgentMultiAgent, result.AgentUsed)
	assert.Equal(t, []string{domain.SpecialistFinancialAid, domain.SpecialistCareerCounselor}, result.AgentsConsulted)
}

func TestRouter_AllThreeSpecialists(t *testing.T) {
	router := newTestRouter(t, allSpecialists())

	result := router.Route(context.Background(),
		"Will a scholarship cover my course load while I look for a job?", nil)

	assert.Equal(t, domain.AgentMultiAgent, result.AgentUsed)
	assert.Equal(t, []string{
		domain.SpecialistFinancialAid,
		domain.SpecialistCareerCounselor,
		domain.SpecialistCourseDifficulty,
	}, result.AgentsConsulted)

	last := -1
	for _, text := range []string{financialAnswer, careerAnswer, courseAnswer} {
		i := strings.Index(result.Response, text)
		require.Greater(t, i, last)
		last = i
	}
}

func TestRouter_SkipsUnregisteredSpecialist(t *testing.T) {
	router := newTestRouter(t, map[string]*mockSpecialist{
		domain.SpecialistFinancialAid: newMockSpecialist(financialAnswer),
	})

	result := router.Route(context.Background(), "I need help with FAFSA and choosing a major", nil)

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, domain.SpecialistFinancialAid, result.AgentUsed)
	assert.Equal(t, financialAnswer, result.Response)
	assert.Nil(t, result.AgentsConsulted)
}

func TestRouter_AllCandidatesUnregistered(t *testing.T) {
	router := newTestRouter(t, nil)

	result := router.Route(context.Background(), "FAFSA and choosing a major", nil)

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, domain.AgentCoordinator, result.AgentUsed)
	assert.Contains(t, result.Response, "I can connect you with our specialized counselors")
}

func TestRouter_SpecialistError(t *testing.T) {
	logs := captureLogs(t)
	specialists := allSpecialists()
	specialists[domain.SpecialistFinancialAid].err = errors.New("template missing")
	router := newTestRouter(t, specialists)

	t.Run("single", func(t *testing.T) {
		result := router.Route(context.Background(), "How do loans work?", nil)

		assert.Equal(t, domain.StatusSuccess, result.Status)
		assert.Equal(t, domain.SpecialistFinancialAid, result.AgentUsed)
		assert.Contains(t, result.Response, "couldn't answer this part of your question")
		assert.NotContains(t, result.Response, "template missing")
	})

	t.Run("multi keeps remaining answers", func(t *testing.T) {
		result := router.Route(context.Background(), "How do loans affect my major?", nil)

		assert.Equal(t, domain.AgentMultiAgent, result.AgentUsed)
		assert.Equal(t, []string{domain.SpecialistFinancialAid, domain.SpecialistCareerCounselor}, result.AgentsConsulted)
		assert.Contains(t, result.Response, "couldn't answer this part of your question")
		assert.Contains(t, result.Response, careerAnswer)
	})

	assert.Contains(t, logs.String(), "[ERROR] specialist failed: financial_aid: template missing")
}

func TestRouter_SpecialistPanic(t *testing.T) {
	logs := captureLogs(t)
	specialists := allSpecialists()
	specialists[domain.SpecialistCareerCounselor].panicVal = "nil map"
	router := newTestRouter(t, specialists)

	var result domain.RoutingResult
	require.NotPanics(t, func() {
		result = router.Route(context.Background(), "FAFSA and choosing a major", nil)
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Contains(t, result.Response, financialAnswer)
	assert.Contains(t, result.Response, "Career Counselor specialist couldn't answer")
	assert.Contains(t, logs.String(), "career_counselor panicked: nil map")
}

func TestRouter_EmptyAnswerIsFailure(t *testing.T) {
	_ = captureLogs(t)
	router := newTestRouter(t, map[string]*mockSpecialist{
		domain.SpecialistFinancialAid: newMockSpecialist("  \n"),
	})

	result := router.Route(context.Background(), "fafsa", nil)

	assert.Equal(t, domain.SpecialistFinancialAid, result.AgentUsed)
	assert.Contains(t, result.Response, "couldn't answer")
}

func TestRouter_FailureUsesDescribedTitle(t *testing.T) {
	_ = captureLogs(t)
	table := domain.DefaultKeywordTable()
	router := NewRouter(NewScopeFilter(table), table, nil)
	failing := newMockSpecialist("")
	failing.err = errors.New("boom")
	require.NoError(t, router.Register(domain.SpecialistFinancialAid, &describedSpecialist{
		mockSpecialist: failing,
		info:           domain.SpecialistInfo{Title: "Financial Aid Specialist"},
	}))

	result := router.Route(context.Background(), "fafsa", nil)

	assert.Contains(t, result.Response, "Our Financial Aid Specialist couldn't answer")
}

func TestRouter_Idempotent(t *testing.T) {
	router := newTestRouter(t, allSpecialists())
	student := domain.StudentContext{domain.ContextResidency: "resident"}

	for _, q := range []string{"hello", "fafsa and major", "diagnose me", "tuition"} {
		first := router.Route(context.Background(), q, student)
		second := router.Route(context.Background(), q, student)
		assert.Equal(t, first, second, q)
	}
}

func TestRouter_PassesContextThroughUnchanged(t *testing.T) {
	specialists := allSpecialists()
	router := newTestRouter(t, specialists)
	student := domain.StudentContext{domain.ContextGPA: 3.2}

	router.Route(context.Background(), "fafsa and major", student)

	fin := specialists[domain.SpecialistFinancialAid]
	require.Len(t, fin.contexts, 1)
	fin.contexts[0]["probe"] = true
	assert.Equal(t, true, student["probe"], "specialist must receive the caller's context by reference")
	assert.Equal(t, []string{"fafsa and major"}, fin.queries)
	delete(student, "probe")
	assert.Equal(t, domain.StudentContext{domain.ContextGPA: 3.2}, student)
}

func TestRouter_ParallelDispatchPreservesOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	specialists := allSpecialists()
	sequential := newTestRouter(t, specialists)
	parallel := newTestRouter(t, allSpecialists())
	parallel.SetParallelDispatch(true)

	query := "Scholarship, career and course advice please"
	want := sequential.Route(context.Background(), query, nil)

	for range 25 {
		got := parallel.Route(context.Background(), query, nil)
		assert.Equal(t, want, got)
	}
}

func TestRouter_ParallelDispatchContainsPanics(t *testing.T) {
	defer goleak.VerifyNone(t)
	_ = captureLogs(t)

	specialists := allSpecialists()
	specialists[domain.SpecialistCourseDifficulty].panicVal = errors.New("index out of range")
	router := newTestRouter(t, specialists)
	router.SetParallelDispatch(true)

	result := router.Route(context.Background(), "scholarship for my course", nil)

	assert.Equal(t, []string{domain.SpecialistFinancialAid, domain.SpecialistCourseDifficulty}, result.AgentsConsulted)
	assert.Contains(t, result.Response, financialAnswer)
	assert.Contains(t, result.Response, "couldn't answer")
}

func TestRouter_RegisterAfterRouteIsRejected(t *testing.T) {
	router := newTestRouter(t, map[string]*mockSpecialist{
		domain.SpecialistFinancialAid: newMockSpecialist(financialAnswer),
	})
	router.Route(context.Background(), "hello", nil)

	err := router.Register(domain.SpecialistCareerCounselor, newMockSpecialist(careerAnswer))

	assert.True(t, errors.Is(err, domain.ErrRegistrySealed))
}

func TestRouter_SelectSpecialists(t *testing.T) {
	table := domain.DefaultKeywordTable()
	router := NewRouter(&mockScopeFilter{}, table, nil)

	tests := []struct {
		name     string
		category domain.TopicCategory
		query    string
		want     []string
	}{
		{"general no keywords", domain.CategoryGeneral, "hello", nil},
		{"category default only", domain.CategoryCareer, "what should I do after transferring", []string{
			domain.SpecialistCareerCounselor,
		}},
		{"category match keeps table order", domain.CategoryAcademic, "scholarship for my course", []string{
			domain.SpecialistFinancialAid, domain.SpecialistCourseDifficulty,
		}},
		{"duplicates collapse", domain.CategoryFinancialAid, "fafsa cost tuition", []string{
			domain.SpecialistFinancialAid,
		}},
		{"keywords without category", domain.CategoryGeneral, "a difficult job", []string{
			domain.SpecialistCareerCounselor, domain.SpecialistCourseDifficulty,
		}},
		{"case insensitive", domain.CategoryGeneral, "SALARY", []string{domain.SpecialistCareerCounselor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.SelectSpecialists(tt.category, tt.query))
		})
	}
}

func TestRouter_UsesInjectedFilter(t *testing.T) {
	filter := &mockScopeFilter{verdict: domain.ScopeVerdict{
		Allowed:  false,
		Category: domain.CategoryOutOfScope,
		Reason:   "weather forecasts",
	}}
	table := domain.DefaultKeywordTable()
	router := NewRouter(filter, table, nil)

	result := router.Route(context.Background(), "fafsa", nil)

	assert.Equal(t, []string{"fafsa"}, filter.queries)
	assert.True(t, result.IsBlocked())
	assert.Contains(t, result.Response, "weather forecasts")
	assert.Equal(t, filter.verdict, router.Classify("anything"))
}

func TestRouter_Specialists(t *testing.T) {
	router := newTestRouter(t, allSpecialists())

	infos := router.Specialists()

	require.Len(t, infos, 3)
	assert.Equal(t, domain.SpecialistFinancialAid, infos[0].ID)
	assert.Equal(t, "Career Counselor", infos[1].Title)
}

func TestRouter_TableIsCopy(t *testing.T) {
	router := newTestRouter(t, nil)

	table := router.Table()
	table.Specialists[0].Keywords = domain.KeywordSet{"hello"}

	assert.Nil(t, router.SelectSpecialists(domain.CategoryGeneral, "hello"))
}
