// Package domain defines the core business entities for counsel.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TopicCategory: The coarse bucket a query is classified into
//   - ScopeVerdict: The guardrail decision for a single query
//   - KeywordTable: The declarative matching policy (scope, disallowed, specialists)
//   - RoutingResult: What the coordinator hands back to the caller
//   - StudentContext: Per-session facts about the student
//   - Session, Turn: An interactive session and its transcript
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
