package chat

import "errors"

// Error definitions for the chat view.
var (
	// ErrNoSessionService indicates that no session service was provided.
	ErrNoSessionService = errors.New("session service is required")

	// ErrNoSession indicates a question was asked before a session started.
	ErrNoSession = errors.New("no active session")
)
