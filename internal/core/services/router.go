package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/counsel-cli/internal/logger"
)

// Ensure Router implements the interfaces.
var (
	_ driving.Router            = (*Router)(nil)
	_ driving.SpecialistCatalog = (*Router)(nil)
	_ driving.KeywordPolicy     = (*Router)(nil)
)

// errEmptyAnswer marks a specialist that returned no text.
var errEmptyAnswer = errors.New("empty answer")

// Router is the transfer coordinator. It screens queries with the scope
// filter, selects specialists from the keyword table and composes their
// answers.
//
// Route never fails. Blocked queries, unregistered specialists and
// specialist errors or panics all degrade to a normal RoutingResult.
type Router struct {
	filter      driven.ScopeFilter
	table       domain.KeywordTable
	registry    *SpecialistRegistry
	synthesizer *Synthesizer
	parallel    bool
}

// NewRouter creates a router.
// If registry is nil an empty one is created; specialists can then be added
// with Register before the first query.
func NewRouter(filter driven.ScopeFilter, table domain.KeywordTable, registry *SpecialistRegistry) *Router {
	if registry == nil {
		registry = NewSpecialistRegistry()
	}
	return &Router{
		filter:      filter,
		table:       table.Clone(),
		registry:    registry,
		synthesizer: NewSynthesizer(),
	}
}

// SetParallelDispatch enables concurrent dispatch to multiple specialists.
// Answers are still combined in selection order.
func (r *Router) SetParallelDispatch(enabled bool) {
	r.parallel = enabled
}

// SetSynthesizer replaces the synthesizer used for multi-specialist answers.
func (r *Router) SetSynthesizer(s *Synthesizer) {
	if s != nil {
		r.synthesizer = s
	}
}

// Register adds a specialist. It must be called before the first Route.
func (r *Router) Register(id string, specialist driven.Specialist) error {
	return r.registry.Register(id, specialist)
}

// Specialists returns the registered specialists in registration order.
func (r *Router) Specialists() []domain.SpecialistInfo {
	return r.registry.Info()
}

// Table returns a copy of the keyword table the router selects with.
func (r *Router) Table() domain.KeywordTable {
	return r.table.Clone()
}

// Classify exposes the scope filter's verdict without dispatching.
func (r *Router) Classify(query string) domain.ScopeVerdict {
	return r.filter.Classify(query)
}

// Route answers query for a student.
func (r *Router) Route(ctx context.Context, query string, student domain.StudentContext) domain.RoutingResult {
	r.registry.Seal()

	logger.Section("Routing")
	logger.Debug("Query: %q", query)

	verdict := r.filter.Classify(query)
	if !verdict.Allowed {
		logger.Info("Blocked: %s", verdict.Reason)
		return domain.RoutingResult{
			Response:  redirectMessage(verdict),
			AgentUsed: domain.AgentCoordinator,
			Status:    domain.StatusBlocked,
		}
	}

	candidates := r.SelectSpecialists(verdict.Category, query)
	logger.Debug("Category: %s, candidates: %v", verdict.Category, candidates)

	selected := r.registered(candidates)

	switch len(selected) {
	case 0:
		logger.Info("No specialist selected, answering as coordinator")
		return domain.RoutingResult{
			Response:  coordinatorOverview(query),
			AgentUsed: domain.AgentCoordinator,
			Status:    domain.StatusSuccess,
		}

	case 1:
		id := selected[0]
		logger.Info("Routing to %s", id)
		return domain.RoutingResult{
			Response:  r.ask(ctx, id, query, student),
			AgentUsed: id,
			Status:    domain.StatusSuccess,
		}

	default:
		logger.Info("Consulting %d specialists: %v", len(selected), selected)
		answers := r.dispatch(ctx, selected, query, student)
		return domain.RoutingResult{
			Response:        r.synthesizer.Synthesize(answers),
			AgentUsed:       domain.AgentMultiAgent,
			AgentsConsulted: selected,
			Status:          domain.StatusSuccess,
		}
	}
}

// SelectSpecialists computes the candidate set for a classified query:
// every specialist whose category matches or whose keywords match, in table
// order. Each id appears once.
func (r *Router) SelectSpecialists(category domain.TopicCategory, query string) []string {
	lower := strings.ToLower(query)
	seen := make(map[string]bool, len(r.table.Specialists))
	var selected []string

	for _, rule := range r.table.Specialists {
		if seen[rule.ID] {
			continue
		}
		_, matched := rule.Keywords.Match(lower)
		if matched || (rule.Category != "" && rule.Category == category) {
			seen[rule.ID] = true
			selected = append(selected, rule.ID)
		}
	}

	return selected
}

// registered drops candidates missing from the registry.
func (r *Router) registered(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if !r.registry.Has(id) {
			logger.Debug("Skipping unregistered specialist %s", id)
			continue
		}
		out = append(out, id)
	}
	return out
}

// dispatch asks each specialist and returns answers in the order of ids.
func (r *Router) dispatch(
	ctx context.Context, ids []string, query string, student domain.StudentContext,
) []domain.SpecialistAnswer {
	answers := make([]domain.SpecialistAnswer, len(ids))

	if !r.parallel {
		for i, id := range ids {
			answers[i] = domain.SpecialistAnswer{SpecialistID: id, Text: r.ask(ctx, id, query, student)}
		}
		return answers
	}

	logger.Debug("Dispatching %d specialists in parallel", len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			answers[i] = domain.SpecialistAnswer{SpecialistID: id, Text: r.ask(gctx, id, query, student)}
			return nil
		})
	}
	_ = g.Wait() // ask never returns an error

	return answers
}

// ask calls one specialist, containing errors and panics.
func (r *Router) ask(ctx context.Context, id, query string, student domain.StudentContext) (answer string) {
	specialist, ok := r.registry.Get(id)
	if !ok {
		return apologyMessage(r.specialistTitle(id))
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("%v: %s panicked: %v", domain.ErrSpecialistFailed, id, rec)
			answer = apologyMessage(r.specialistTitle(id))
		}
	}()

	text, err := specialist.Answer(ctx, query, student)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyAnswer
	}
	if err != nil {
		logger.Error("%v", fmt.Errorf("%w: %s: %w", domain.ErrSpecialistFailed, id, err))
		return apologyMessage(r.specialistTitle(id))
	}

	return text
}

func (r *Router) specialistTitle(id string) string {
	if s, ok := r.registry.Get(id); ok {
		if d, ok := s.(driven.Describer); ok {
			if title := d.Info().Title; title != "" {
				return title
			}
		}
	}
	return domain.HumanizeID(id) + " specialist"
}
