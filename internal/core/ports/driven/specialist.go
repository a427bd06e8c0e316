package driven

import (
	"context"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// Specialist answers questions for one topic domain.
//
// Implementations must treat student as read-only. A returned error or a
// panic is contained by the router and replaced with an apology, so
// implementations should still aim to always return text.
type Specialist interface {
	// Answer returns the specialist's response to query.
	// student may be nil.
	Answer(ctx context.Context, query string, student domain.StudentContext) (string, error)
}

// Describer is an optional interface for specialists that describe themselves.
type Describer interface {
	// Info returns the specialist's id, title and description.
	Info() domain.SpecialistInfo
}

// SpecialistFunc adapts a plain function to the Specialist interface.
type SpecialistFunc func(ctx context.Context, query string, student domain.StudentContext) (string, error)

// Answer calls f.
func (f SpecialistFunc) Answer(ctx context.Context, query string, student domain.StudentContext) (string, error) {
	return f(ctx, query, student)
}
