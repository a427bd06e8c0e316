package driving

import (
	"context"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// SessionService runs interactive counseling sessions.
// Each session has its own StudentContext; nothing is shared between sessions
// and nothing outlives End.
type SessionService interface {
	// Start opens a session with an empty context.
	Start(ctx context.Context) (*domain.Session, error)

	// Ask routes query with the session's context and records the turn.
	Ask(ctx context.Context, sessionID, query string) (domain.RoutingResult, error)

	// SetContext stores a student fact for the session.
	SetContext(ctx context.Context, sessionID, key string, value any) error

	// Context returns a copy of the session's student context.
	Context(ctx context.Context, sessionID string) (domain.StudentContext, error)

	// History returns the session's turns in order.
	History(ctx context.Context, sessionID string) ([]domain.Turn, error)

	// End discards the session, its context and its transcript.
	End(ctx context.Context, sessionID string) error
}
