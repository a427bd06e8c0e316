package domain

// Agent labels used in RoutingResult.AgentUsed besides specialist ids.
const (
	// AgentCoordinator marks blocked queries and the coordinator overview.
	AgentCoordinator = "coordinator"

	// AgentMultiAgent marks a synthesized answer from several specialists.
	AgentMultiAgent = "multi_agent"
)

// RoutingStatus is the outcome of a routing call.
type RoutingStatus string

const (
	// StatusSuccess means the query was answered (including the fallback overview).
	StatusSuccess RoutingStatus = "success"

	// StatusBlocked means the scope filter rejected the query.
	StatusBlocked RoutingStatus = "blocked"
)

// RoutingResult is what the coordinator returns for one query.
//
// Invariants:
//   - Status == StatusBlocked implies AgentUsed == AgentCoordinator.
//   - AgentsConsulted is non-nil only when AgentUsed == AgentMultiAgent.
type RoutingResult struct {
	// Response is the text to show the student.
	Response string `json:"response"`

	// AgentUsed is "coordinator", "multi_agent" or a specialist id.
	AgentUsed string `json:"agent_used"`

	// AgentsConsulted lists specialist ids in selection order (multi-agent only).
	AgentsConsulted []string `json:"agents_consulted,omitempty"`

	// Status is "success" or "blocked".
	Status RoutingStatus `json:"status"`
}

// IsBlocked reports whether the scope filter rejected the query.
func (r RoutingResult) IsBlocked() bool {
	return r.Status == StatusBlocked
}

// IsMultiAgent reports whether the response was synthesized from several specialists.
func (r RoutingResult) IsMultiAgent() bool {
	return r.AgentUsed == AgentMultiAgent
}

// AgentDisplayName returns AgentUsed as title-cased words for display.
func (r RoutingResult) AgentDisplayName() string {
	return HumanizeID(r.AgentUsed)
}
