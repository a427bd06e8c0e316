package driven

import (
	"context"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// SessionStore keeps the transcript of live sessions.
// Data lives only as long as the session: Delete removes everything
// recorded for it, and nothing is expected to survive the process.
type SessionStore interface {
	// Create registers a new session.
	// Returns domain.ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, session domain.Session) error

	// Exists reports whether the session is live.
	Exists(ctx context.Context, sessionID string) (bool, error)

	// AppendTurn records a turn. Returns domain.ErrSessionNotFound for unknown sessions.
	AppendTurn(ctx context.Context, turn domain.Turn) error

	// Turns returns the session's turns ordered by Seq.
	// Returns domain.ErrSessionNotFound for unknown sessions.
	Turns(ctx context.Context, sessionID string) ([]domain.Turn, error)

	// Delete discards the session and its transcript.
	// Returns domain.ErrSessionNotFound for unknown sessions.
	Delete(ctx context.Context, sessionID string) error
}
