package services

import (
	"context"
	"sync/atomic"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
)

// Ensure ReloadableRouter implements the interfaces.
var (
	_ driving.Router            = (*ReloadableRouter)(nil)
	_ driving.SpecialistCatalog = (*ReloadableRouter)(nil)
	_ driving.KeywordPolicy     = (*ReloadableRouter)(nil)
)

// ReloadableRouter forwards to a Router that can be replaced while serving.
// Each Router stays immutable once it routes; a configuration change builds a
// new one and Swap publishes it. Calls in flight finish on the old router.
type ReloadableRouter struct {
	current atomic.Pointer[Router]
}

// NewReloadableRouter creates a reloadable router serving initial.
func NewReloadableRouter(initial *Router) *ReloadableRouter {
	r := &ReloadableRouter{}
	r.current.Store(initial)
	return r
}

// Swap publishes next and returns the router it replaced.
// A nil next is ignored.
func (r *ReloadableRouter) Swap(next *Router) *Router {
	if next == nil {
		return r.current.Load()
	}
	return r.current.Swap(next)
}

// Current returns the router serving new calls.
func (r *ReloadableRouter) Current() *Router {
	return r.current.Load()
}

// Route answers query with the current router.
func (r *ReloadableRouter) Route(ctx context.Context, query string, student domain.StudentContext) domain.RoutingResult {
	return r.current.Load().Route(ctx, query, student)
}

// Classify uses the current router's scope filter.
func (r *ReloadableRouter) Classify(query string) domain.ScopeVerdict {
	return r.current.Load().Classify(query)
}

// Specialists lists the current router's specialists.
func (r *ReloadableRouter) Specialists() []domain.SpecialistInfo {
	return r.current.Load().Specialists()
}

// Table returns a copy of the current router's keyword table.
func (r *ReloadableRouter) Table() domain.KeywordTable {
	return r.current.Load().Table()
}
