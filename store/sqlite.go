package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agentkeeper-ai/sdk/memory"
)

const createAgentsTableSQL = `
CREATE TABLE IF NOT EXISTS agents (
    agent_id   TEXT PRIMARY KEY,
    state_json TEXT NOT NULL,
    created_at TEXT,
    updated_at TEXT
);
`

// SQLiteStore implements Store backed by a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the schema exists. Parent directories are created as needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}

	// WAL improves concurrent read behavior for shared hosts.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}

	if _, err := db.Exec(createAgentsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save upserts the state's document.
func (s *SQLiteStore) Save(ctx context.Context, state *memory.CognitiveState) error {
	data, err := state.MarshalDocument()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO agents (agent_id, state_json, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		state.AgentID(),
		string(data),
		state.CreatedAt().Format(time.RFC3339Nano),
		state.UpdatedAt().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store: save agent %s: %w", state.AgentID(), err)
	}
	return nil
}

// Load returns the state for agentID, or ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context, agentID string) (*memory.CognitiveState, error) {
	var stateJSON string
	err := s.db.QueryRowContext(ctx,
		"SELECT state_json FROM agents WHERE agent_id = ?", agentID,
	).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: load agent %s: %w", agentID, err)
	}
	return memory.UnmarshalDocument([]byte(stateJSON))
}

// Delete removes the state for agentID, if present.
func (s *SQLiteStore) Delete(ctx context.Context, agentID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM agents WHERE agent_id = ?", agentID); err != nil {
		return fmt.Errorf("store: delete agent %s: %w", agentID, err)
	}
	return nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
