// Package driven defines the interfaces that core calls OUT to collaborators.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Specialist: Answers questions for a single topic domain
//   - ScopeFilter: Decides whether a query is in scope and assigns a category
//   - SessionStore: Session transcript storage (in-memory or SQLite, session-lifetime only)
//   - ConfigStore: Application configuration
//   - TemplateSource: Markdown templates the built-in specialists render
//
// # Optional Interfaces
//
// Specialists may additionally implement Describer so listings show a title
// and description. Without it the id is humanised.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or specialist package
package driven
