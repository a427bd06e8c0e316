package driven

import "github.com/custodia-labs/counsel-cli/internal/core/domain"

// ScopeFilter is the guardrail consulted before any specialist.
// Implementations are pure: no I/O, bounded time, never fail.
type ScopeFilter interface {
	// Classify returns the verdict for query. Empty input is general and allowed.
	Classify(query string) domain.ScopeVerdict
}
