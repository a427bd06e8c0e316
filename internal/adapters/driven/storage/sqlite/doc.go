// Package sqlite provides a SQLite-based implementation of driven.SessionStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// The database lives in memory only. Transcripts are deleted when their session
// ends and nothing is written to disk, so no conversation outlives the process.
//
// # Thread Safety
//
// All operations are thread-safe. The store holds a single connection, which
// serialises access to the in-memory database.
package sqlite
