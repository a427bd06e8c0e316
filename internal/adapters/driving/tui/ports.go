// Package tui provides an interactive terminal user interface for counsel.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sessions runs the counseling conversation.
	Sessions driving.SessionService

	// Catalog lists the specialists. Optional.
	Catalog driving.SpecialistCatalog
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(sessions driving.SessionService, catalog driving.SpecialistCatalog) *Ports {
	return &Ports{
		Sessions: sessions,
		Catalog:  catalog,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Sessions == nil {
		return ErrMissingSessionService
	}
	return nil
}
