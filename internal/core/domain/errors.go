package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Routing itself never fails: out-of-scope queries, unregistered specialists
// and specialist failures all resolve to a normal RoutingResult.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Registry Errors.

	// ErrRegistrySealed indicates a registration attempt after the router began serving.
	ErrRegistrySealed = errors.New("specialist registry is sealed")

	// ErrSpecialistFailed indicates a specialist returned an error or panicked.
	// The router never surfaces it; it is logged and replaced with an apology.
	ErrSpecialistFailed = errors.New("specialist failed")

	// Session Errors.

	// ErrSessionNotFound indicates the session does not exist or has ended.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRateLimited indicates the caller exceeded the allowed request rate.
	ErrRateLimited = errors.New("rate limited")
)
