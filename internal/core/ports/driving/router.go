package driving

import (
	"context"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// Router screens a query, picks specialists and composes the answer.
type Router interface {
	// Route answers query. It never fails: blocked queries, missing
	// specialists and specialist failures all yield a normal result.
	// student is passed through to specialists untouched and may be nil.
	Route(ctx context.Context, query string, student domain.StudentContext) domain.RoutingResult

	// Classify exposes the scope filter's verdict without dispatching.
	Classify(query string) domain.ScopeVerdict
}

// SpecialistCatalog lists the specialists available to the router.
type SpecialistCatalog interface {
	// Specialists returns registered specialists in registration order.
	Specialists() []domain.SpecialistInfo
}

// KeywordPolicy exposes the keyword table the router selects with.
type KeywordPolicy interface {
	// Table returns a copy of the effective keyword table.
	Table() domain.KeywordTable
}
