package store

import (
	"context"
	"sync"

	"github.com/agentkeeper-ai/sdk/memory"
)

// MemStore is an in-memory Store for tests and ephemeral agents. Documents
// are kept serialized so round-trip semantics match the durable backends.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

// Save upserts the state's document.
func (s *MemStore) Save(ctx context.Context, state *memory.CognitiveState) error {
	data, err := state.MarshalDocument()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[state.AgentID()] = data
	s.mu.Unlock()
	return nil
}

// Load returns the state for agentID, or ErrNotFound.
func (s *MemStore) Load(ctx context.Context, agentID string) (*memory.CognitiveState, error) {
	s.mu.RLock()
	data, ok := s.docs[agentID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return memory.UnmarshalDocument(data)
}

// Delete removes the state for agentID, if present.
func (s *MemStore) Delete(ctx context.Context, agentID string) error {
	s.mu.Lock()
	delete(s.docs, agentID)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error {
	return nil
}
