package store

import (
	"context"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/agentkeeper-ai/sdk/memory"
)

// etcdKeyPrefix namespaces agent documents in the etcd keyspace.
const etcdKeyPrefix = "/agentkeeper/agents/"

// EtcdOptions configures the etcd connection.
type EtcdOptions struct {
	// Endpoints is the list of etcd cluster endpoints.
	Endpoints []string

	// DialTimeout is the maximum time to wait for connection establishment.
	// Defaults to 5s.
	DialTimeout time.Duration
}

// EtcdStore implements Store on an etcd cluster, one key per agent. Useful
// when agent state must be shared across hosts that already run etcd.
type EtcdStore struct {
	client *clientv3.Client
}

// NewEtcdStore creates an etcd-backed store.
func NewEtcdStore(opts EtcdOptions) (*EtcdStore, error) {
	if len(opts.Endpoints) == 0 {
		return nil, fmt.Errorf("store: etcd endpoints cannot be empty")
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   opts.Endpoints,
		DialTimeout: opts.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("store: create etcd client: %w", err)
	}
	return &EtcdStore{client: client}, nil
}

// etcdKey builds the etcd key for an agent identifier.
func etcdKey(agentID string) string {
	return etcdKeyPrefix + agentID
}

// Save upserts the state's document.
func (s *EtcdStore) Save(ctx context.Context, state *memory.CognitiveState) error {
	data, err := state.MarshalDocument()
	if err != nil {
		return err
	}
	if _, err := s.client.Put(ctx, etcdKey(state.AgentID()), string(data)); err != nil {
		return fmt.Errorf("store: save agent %s: %w", state.AgentID(), err)
	}
	return nil
}

// Load returns the state for agentID, or ErrNotFound.
func (s *EtcdStore) Load(ctx context.Context, agentID string) (*memory.CognitiveState, error) {
	resp, err := s.client.Get(ctx, etcdKey(agentID))
	if err != nil {
		return nil, fmt.Errorf("store: load agent %s: %w", agentID, err)
	}
	if len(resp.Kvs) == 0 {
		return nil, ErrNotFound
	}
	return memory.UnmarshalDocument(resp.Kvs[0].Value)
}

// Delete removes the state for agentID, if present.
func (s *EtcdStore) Delete(ctx context.Context, agentID string) error {
	if _, err := s.client.Delete(ctx, etcdKey(agentID)); err != nil {
		return fmt.Errorf("store: delete agent %s: %w", agentID, err)
	}
	return nil
}

// Close closes the etcd client.
func (s *EtcdStore) Close() error {
	return s.client.Close()
}
