package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
)

// SpecialistRegistry maps specialist ids to their implementations.
// Specialists are registered at startup; the router seals the registry
// when it serves its first query, after which it is read-only.
type SpecialistRegistry struct {
	mu          sync.RWMutex
	specialists map[string]driven.Specialist
	order       []string
	sealed      bool
}

// NewSpecialistRegistry creates an empty registry.
func NewSpecialistRegistry() *SpecialistRegistry {
	return &SpecialistRegistry{
		specialists: make(map[string]driven.Specialist),
	}
}

// Register adds a specialist under id.
// Returns ErrInvalidInput for an empty id or nil specialist, ErrAlreadyExists
// for a duplicate id, and ErrRegistrySealed once the registry is serving.
func (r *SpecialistRegistry) Register(id string, specialist driven.Specialist) error {
	id = strings.TrimSpace(id)
	if id == "" || specialist == nil {
		return fmt.Errorf("register specialist %q: %w", id, domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("register specialist %q: %w", id, domain.ErrRegistrySealed)
	}
	if _, exists := r.specialists[id]; exists {
		return fmt.Errorf("register specialist %q: %w", id, domain.ErrAlreadyExists)
	}

	r.specialists[id] = specialist
	r.order = append(r.order, id)
	return nil
}

// Get returns the specialist registered under id.
func (r *SpecialistRegistry) Get(id string) (driven.Specialist, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specialists[id]
	return s, ok
}

// Has returns true if a specialist is registered under id.
func (r *SpecialistRegistry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns registered ids in registration order.
func (r *SpecialistRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Seal stops further registration. Sealing twice is a no-op.
func (r *SpecialistRegistry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the registry is read-only.
func (r *SpecialistRegistry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Info describes every registered specialist in registration order.
// Specialists that don't implement driven.Describer get a humanised id.
func (r *SpecialistRegistry) Info() []domain.SpecialistInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]domain.SpecialistInfo, 0, len(r.order))
	for _, id := range r.order {
		info := domain.SpecialistInfo{ID: id, Title: domain.HumanizeID(id)}
		if d, ok := r.specialists[id].(driven.Describer); ok {
			info = d.Info()
			info.ID = id
		}
		infos = append(infos, info)
	}
	return infos
}
