package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for counsel resources.
	uriScheme = "counsel://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "specialists",
		Name:        "specialists",
		Description: "Specialists the counselor can consult",
		MIMEType:    "application/json",
	}, s.handleSpecialistsResource)
}

// handleSpecialistsResource returns the registered specialists.
func (s *Server) handleSpecialistsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos := []domain.SpecialistInfo{}
	if s.ports.Catalog != nil {
		if listed := s.ports.Catalog.Specialists(); listed != nil {
			infos = listed
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling specialists: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
