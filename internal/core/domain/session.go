package domain

import "time"

// Session is one interactive counseling session.
// Its context and transcript are discarded when the session ends.
type Session struct {
	// ID is the unique identifier for the session.
	ID string

	// StartedAt is when the session began.
	StartedAt time.Time

	// Context holds the student's facts for this session only.
	Context StudentContext
}

// Turn is one question/answer exchange within a session.
type Turn struct {
	// SessionID references the owning session.
	SessionID string `json:"session_id"`

	// Seq is the 1-based position of the turn in the session.
	Seq int `json:"seq"`

	// Query is the student's question as typed.
	Query string `json:"query"`

	// AgentUsed mirrors RoutingResult.AgentUsed.
	AgentUsed string `json:"agent_used"`

	// AgentsConsulted mirrors RoutingResult.AgentsConsulted.
	AgentsConsulted []string `json:"agents_consulted,omitempty"`

	// Status mirrors RoutingResult.Status.
	Status RoutingStatus `json:"status"`

	// Response is the text that was shown.
	Response string `json:"response"`

	// At is when the turn was answered.
	At time.Time `json:"at"`
}

// NewTurn records a routing result as the next turn of a session.
func NewTurn(sessionID string, seq int, query string, result RoutingResult, at time.Time) Turn {
	return Turn{
		SessionID:       sessionID,
		Seq:             seq,
		Query:           query,
		AgentUsed:       result.AgentUsed,
		AgentsConsulted: result.AgentsConsulted,
		Status:          result.Status,
		Response:        result.Response,
		At:              at,
	}
}
