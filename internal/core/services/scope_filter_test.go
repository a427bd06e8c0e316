package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

func TestScopeFilter_Classify(t *testing.T) {
	filter := NewScopeFilter(domain.DefaultKeywordTable())

	tests := []struct {
		name     string
		query    string
		allowed  bool
		category domain.TopicCategory
	}{
		{"empty query", "", true, domain.CategoryGeneral},
		{"whitespace query", "   \t\n", true, domain.CategoryGeneral},
		{"greeting", "hello", true, domain.CategoryGeneral},
		{"fafsa", "How do I fill out the FAFSA?", true, domain.CategoryFinancialAid},
		{"career", "What can I do with a psychology major?", true, domain.CategoryCareer},
		{"academic", "I'm struggling in organic chemistry class", true, domain.CategoryAcademic},
		{"first category wins", "Does my GPA affect my scholarship?", true, domain.CategoryFinancialAid},
		{"career before academic", "Which course helps my career?", true, domain.CategoryCareer},
		{"medical blocked", "Can you diagnose my headache?", false, domain.CategoryOutOfScope},
		{"entertainment blocked", "Recommend a movie for tonight", false, domain.CategoryOutOfScope},
		{"legal blocked", "I need a lawyer to sue my landlord", false, domain.CategoryOutOfScope},
		{"profession named in career question", "What major should I choose to become a lawyer?", true, domain.CategoryCareer},
		{"disallowed short-circuits topic", "Can you write my essay about financial aid?", false, domain.CategoryOutOfScope},
		{"case insensitive block", "Best BITCOIN wallet?", false, domain.CategoryOutOfScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := filter.Classify(tt.query)
			assert.Equal(t, tt.allowed, verdict.Allowed)
			assert.Equal(t, tt.category, verdict.Category)
			if tt.allowed {
				assert.Empty(t, verdict.Reason)
			} else {
				assert.NotEmpty(t, verdict.Reason)
			}
		})
	}
}

func TestScopeFilter_ReasonNamesTopic(t *testing.T) {
	filter := NewScopeFilter(domain.DefaultKeywordTable())

	verdict := filter.Classify("I need legal advice about my lease")

	assert.False(t, verdict.Allowed)
	assert.Equal(t, "legal advice", verdict.Reason)
}

func TestScopeFilter_Deterministic(t *testing.T) {
	filter := NewScopeFilter(domain.DefaultKeywordTable())
	query := "Tuition for a career in nursing?"

	first := filter.Classify(query)
	for range 10 {
		assert.Equal(t, first, filter.Classify(query))
	}
}

func TestScopeFilter_UsesCustomTable(t *testing.T) {
	table, err := domain.DefaultKeywordTable().WithDisallowed("travel", []string{"vacation"})
	require.NoError(t, err)
	table, err = table.WithTopicKeywords(domain.CategoryAcademic, []string{"syllabus"})
	require.NoError(t, err)

	filter := NewScopeFilter(table)

	blocked := filter.Classify("Plan my vacation")
	assert.False(t, blocked.Allowed)
	assert.Equal(t, "travel", blocked.Reason)

	assert.Equal(t, domain.CategoryAcademic, filter.Classify("Where is the syllabus?").Category)
	// "class" is no longer an academic scope keyword
	assert.Equal(t, domain.CategoryGeneral, filter.Classify("which class").Category)
}

func TestScopeFilter_TableIsCopied(t *testing.T) {
	table := domain.DefaultKeywordTable()
	filter := NewScopeFilter(table)

	table.Disallowed[0].Keywords[0] = "hello"

	assert.True(t, filter.Classify("hello").Allowed)
}
