package file

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

func TestLoadRoutingTable_Defaults(t *testing.T) {
	table, err := LoadRoutingTable(memory.NewConfigStore())

	require.NoError(t, err)
	if diff := cmp.Diff(domain.DefaultKeywordTable(), table); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRoutingTable_Overrides(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[routing.keywords]
career_counselor = ["Career", " job ", "career"]

[scope.keywords]
academic = ["syllabus"]

[scope.disallowed]
medical = ["doctor"]
car_repair = ["brakes", "oil change"]
`)
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	table, err := LoadRoutingTable(store)
	require.NoError(t, err)

	want := domain.DefaultKeywordTable()
	want.Specialists[1].Keywords = domain.KeywordSet{"career", "job"}
	want.Topics[2].Keywords = domain.KeywordSet{"syllabus"}
	want.Disallowed[1].Keywords = domain.KeywordSet{"doctor"}
	want.Disallowed = append(want.Disallowed, domain.DisallowedRule{
		Name:        "car_repair",
		Description: "car repair",
		Keywords:    domain.KeywordSet{"brakes", "oil change"},
	})

	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRoutingTable_DoesNotMutateDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("routing.keywords.financial_aid", []string{"pell"}))

	_, err := LoadRoutingTable(store)
	require.NoError(t, err)

	assert.Contains(t, domain.DefaultKeywordTable().Specialists[0].Keywords, "fafsa")
}

func TestLoadRoutingTable_InvalidOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value []string
	}{
		{"unknown specialist", "routing.keywords.housing", []string{"dorm"}},
		{"unknown category", "scope.keywords.sports", []string{"football"}},
		{"general carries no keywords", "scope.keywords.general", []string{"hello"}},
		{"empty specialist keywords", "routing.keywords.financial_aid", []string{}},
		{"blank disallowed keywords", "scope.disallowed.travel", []string{"  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			require.NoError(t, store.Set(tt.key, tt.value))

			_, err := LoadRoutingTable(store)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
