package mcp

import (
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Router answers and classifies queries.
	Router driving.Router

	// Catalog lists registered specialists.
	Catalog driving.SpecialistCatalog
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Router == nil {
		return ErrMissingRouter
	}
	// Catalog is optional; the specialists resource is then empty
	return nil
}
