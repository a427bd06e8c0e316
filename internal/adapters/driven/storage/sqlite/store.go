package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/counsel-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a SQLite-backed transcript store.
type Store struct {
	db *sql.DB
}

// NewStore creates a new in-memory SQLite store and applies migrations.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every pooled connection would get its own empty :memory: database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection, discarding all data.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return memoryDSN
}

// SessionStore returns a SessionStore interface backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_sessions.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Session Store ====================

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Create registers a new session.
func (s *sessionStore) Create(ctx context.Context, session domain.Session) error {
	return s.store.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := sessionExists(ctx, tx, session.ID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("session %s: %w", session.ID, domain.ErrAlreadyExists)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO sessions (id, started_at) VALUES (?, ?)",
			session.ID, session.StartedAt.UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("inserting session: %w", err)
		}
		return nil
	})
}

// Exists reports whether the session is live.
func (s *sessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions WHERE id = ?", sessionID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying session: %w", err)
	}
	return count > 0, nil
}

// AppendTurn records a turn.
func (s *sessionStore) AppendTurn(ctx context.Context, turn domain.Turn) error {
	consulted, err := json.Marshal(turn.AgentsConsulted)
	if err != nil {
		return fmt.Errorf("marshalling consulted agents: %w", err)
	}

	return s.store.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := sessionExists(ctx, tx, turn.SessionID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("session %s: %w", turn.SessionID, domain.ErrSessionNotFound)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO turns (session_id, seq, query, agent_used, agents_consulted, status, response, answered_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			turn.SessionID, turn.Seq, turn.Query, turn.AgentUsed,
			string(consulted), string(turn.Status), turn.Response, turn.At.UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("inserting turn: %w", err)
		}
		return nil
	})
}

// Turns returns the session's turns ordered by Seq.
func (s *sessionStore) Turns(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	exists, err := s.Exists(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionNotFound)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT seq, query, agent_used, agents_consulted, status, response, answered_at
		FROM turns WHERE session_id = ? ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var (
			turn       domain.Turn
			consulted  string
			status     string
			answeredAt int64
		)
		if err := rows.Scan(
			&turn.Seq, &turn.Query, &turn.AgentUsed, &consulted, &status, &turn.Response, &answeredAt,
		); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}

		if consulted != jsonNull {
			if err := json.Unmarshal([]byte(consulted), &turn.AgentsConsulted); err != nil {
				return nil, fmt.Errorf("unmarshalling consulted agents: %w", err)
			}
		}
		turn.SessionID = sessionID
		turn.Status = domain.RoutingStatus(status)
		turn.At = time.Unix(0, answeredAt)
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}

	return turns, nil
}

// Delete discards the session and its transcript.
func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionNotFound)
	}
	return nil
}

// withTx runs fn in a transaction, committing if it returns nil.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func sessionExists(ctx context.Context, tx *sql.Tx, sessionID string) (bool, error) {
	var count int
	err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions WHERE id = ?", sessionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying session: %w", err)
	}
	return count > 0, nil
}
