package store

import (
	"context"
	"errors"

	"github.com/agentkeeper-ai/sdk/memory"
)

// Common errors returned by store operations.
var (
	// ErrNotFound is returned by Load when no state exists for the agent
	// identifier. Callers must surface this distinguishably, never
	// substitute an empty state.
	ErrNotFound = errors.New("store: agent not found")
)

// Store is the persistence gateway for cognitive state.
//
// Implementations may block on I/O; each call is treated as an atomic,
// all-or-nothing operation by the core. Implementations must be safe for
// concurrent use; the store is shared infrastructure even when individual
// agents are externally serialized.
type Store interface {
	// Save upserts the state's document, keyed by its agent identifier.
	// Saving the same state twice is idempotent.
	Save(ctx context.Context, state *memory.CognitiveState) error

	// Load returns the state persisted for agentID, or ErrNotFound.
	Load(ctx context.Context, agentID string) (*memory.CognitiveState, error)

	// Delete removes the state persisted for agentID. Deleting an absent
	// agent is a no-op, not an error.
	Delete(ctx context.Context, agentID string) error

	// Close releases the backend connection.
	Close() error
}
