package file

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
)

// LoadRoutingTable builds the keyword table from the defaults plus the
// overrides found in store:
//
//	[routing.keywords]
//	financial_aid = ["fafsa", "pell grant"]   # replaces a specialist's keywords
//
//	[scope.keywords]
//	career = ["career", "job"]                # replaces a category's keywords
//
//	[scope.disallowed]
//	travel = ["vacation", "flight"]           # adds or replaces a blocked topic
//
// Unknown specialists or categories and empty keyword lists return
// domain.ErrInvalidInput.
func LoadRoutingTable(store driven.ConfigStore) (domain.KeywordTable, error) {
	table := domain.DefaultKeywordTable()
	var err error

	for _, key := range store.Keys(driven.ConfigSpecialistKeywordsPrefix) {
		id := strings.TrimPrefix(key, driven.ConfigSpecialistKeywordsPrefix)
		table, err = table.WithSpecialistKeywords(id, store.GetStringSlice(key))
		if err != nil {
			return domain.KeywordTable{}, fmt.Errorf("%s: %w", key, err)
		}
	}

	for _, key := range store.Keys(driven.ConfigTopicKeywordsPrefix) {
		category := domain.TopicCategory(strings.TrimPrefix(key, driven.ConfigTopicKeywordsPrefix))
		table, err = table.WithTopicKeywords(category, store.GetStringSlice(key))
		if err != nil {
			return domain.KeywordTable{}, fmt.Errorf("%s: %w", key, err)
		}
	}

	for _, key := range store.Keys(driven.ConfigDisallowedPrefix) {
		name := strings.TrimPrefix(key, driven.ConfigDisallowedPrefix)
		table, err = table.WithDisallowed(name, store.GetStringSlice(key))
		if err != nil {
			return domain.KeywordTable{}, fmt.Errorf("%s: %w", key, err)
		}
	}

	if err := table.Validate(); err != nil {
		return domain.KeywordTable{}, err
	}
	return table, nil
}
