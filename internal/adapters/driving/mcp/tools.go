package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// AskInput is the input schema for the ask_counselor tool.
type AskInput struct {
	Query   string         `json:"query" jsonschema:"the student's question"`
	Context map[string]any `json:"context,omitempty" jsonschema:"facts about the student such as residency, gpa, major or work_hours"`
}

// AskOutput is the output schema for the ask_counselor tool.
type AskOutput struct {
	Response        string   `json:"response"`
	AgentUsed       string   `json:"agent_used"`
	AgentsConsulted []string `json:"agents_consulted,omitempty"`
	Status          string   `json:"status"`
}

// ClassifyInput is the input schema for the classify_query tool.
type ClassifyInput struct {
	Query string `json:"query" jsonschema:"the query to screen"`
}

// ClassifyOutput is the output schema for the classify_query tool.
type ClassifyOutput struct {
	Allowed  bool   `json:"allowed"`
	Category string `json:"category"`
	Reason   string `json:"reason,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_counselor",
		Description: "Ask the UC/CSU transfer counselor a question about financial aid, careers or coursework",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_query",
		Description: "Check whether a question is in scope and which topic it belongs to",
	}, s.handleClassify)
}

// handleAsk handles the ask_counselor tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if err := s.limiter.Allow("ask_counselor"); err != nil {
		return nil, AskOutput{}, err
	}

	// Copy so the router never sees a map the caller still owns
	var student domain.StudentContext
	if len(input.Context) > 0 {
		student = domain.StudentContext(input.Context).Clone()
	}

	result := s.ports.Router.Route(ctx, strings.TrimSpace(input.Query), student)

	return nil, AskOutput{
		Response:        result.Response,
		AgentUsed:       result.AgentUsed,
		AgentsConsulted: result.AgentsConsulted,
		Status:          string(result.Status),
	}, nil
}

// handleClassify handles the classify_query tool invocation.
func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if err := s.limiter.Allow("classify_query"); err != nil {
		return nil, ClassifyOutput{}, err
	}

	verdict := s.ports.Router.Classify(input.Query)

	return nil, ClassifyOutput{
		Allowed:  verdict.Allowed,
		Category: verdict.Category.String(),
		Reason:   verdict.Reason,
	}, nil
}
