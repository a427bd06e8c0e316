package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

func TestKeywordsCmd_PrintsTable(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"keywords"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Out of scope:")
	assert.Contains(t, out, "Topics (first match wins):")
	assert.Contains(t, out, "Specialists:")
	assert.Contains(t, out, "fafsa")
	assert.Contains(t, out, domain.SpecialistCourseDifficulty)
}

func TestWriteKeywordTable(t *testing.T) {
	table := domain.KeywordTable{
		Disallowed: []domain.DisallowedRule{{Name: "cars", Keywords: domain.KeywordSet{"transmission"}}},
		Topics:     []domain.TopicRule{{Category: domain.CategoryGeneral, Keywords: domain.KeywordSet{"hello"}}},
		Specialists: []domain.SpecialistRule{
			{ID: "financial_aid", Category: domain.CategoryFinancialAid, Keywords: domain.KeywordSet{"fafsa", "cal grant"}},
			{ID: "tutor", Keywords: domain.KeywordSet{"homework"}},
		},
	}
	buf := new(bytes.Buffer)

	writeKeywordTable(buf, table)

	out := buf.String()
	assert.Contains(t, out, "cars")
	assert.Contains(t, out, "transmission")
	assert.Contains(t, out, "financial_aid [financial_aid]")
	assert.Contains(t, out, "fafsa, cal grant")
	assert.Contains(t, out, "tutor ")
	assert.NotContains(t, out, "tutor [")
}

func TestKeywordsCmd_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"keywords"})

	assert.EqualError(t, rootCmd.Execute(), "keyword policy not configured")
}
