package services

import (
	"strings"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/counsel-cli/internal/logger"
)

// Ensure ScopeFilter implements the interface.
var _ driven.ScopeFilter = (*ScopeFilter)(nil)

// ScopeFilter is the keyword guardrail in front of the router.
// It is stateless after construction and safe for concurrent use.
type ScopeFilter struct {
	disallowed []domain.DisallowedRule
	topics     []domain.TopicRule
}

// NewScopeFilter creates a scope filter from the table's disallowed and topic rules.
func NewScopeFilter(table domain.KeywordTable) *ScopeFilter {
	table = table.Clone()
	return &ScopeFilter{
		disallowed: table.Disallowed,
		topics:     table.Topics,
	}
}

// Classify returns the verdict for query.
// Disallowed topics are checked first and short-circuit topic matching.
// Queries matching no topic (including empty ones) are general and allowed.
func (f *ScopeFilter) Classify(query string) domain.ScopeVerdict {
	lower := strings.ToLower(query)
	if strings.TrimSpace(lower) == "" {
		logger.Debug("Scope: empty query, treating as general")
		return domain.ScopeVerdict{Allowed: true, Category: domain.CategoryGeneral}
	}

	for _, rule := range f.disallowed {
		if kw, ok := rule.Keywords.Match(lower); ok {
			logger.Info("Scope: blocked by %s (matched %q)", rule.Name, kw)
			return domain.ScopeVerdict{
				Allowed:  false,
				Category: domain.CategoryOutOfScope,
				Reason:   rule.Description,
			}
		}
	}

	for _, rule := range f.topics {
		if kw, ok := rule.Keywords.Match(lower); ok {
			logger.Debug("Scope: category %s (matched %q)", rule.Category, kw)
			return domain.ScopeVerdict{Allowed: true, Category: rule.Category}
		}
	}

	logger.Debug("Scope: no topic matched, category general")
	return domain.ScopeVerdict{Allowed: true, Category: domain.CategoryGeneral}
}
