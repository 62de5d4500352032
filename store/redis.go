package store

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agentkeeper-ai/sdk/memory"
)

// agentKeyPrefix namespaces agent documents in Redis.
const agentKeyPrefix = "keeper:agent:"

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	// URL is the Redis connection string (e.g. "redis://localhost:6379").
	URL string

	// TLS configuration for secure connections.
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment.
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations.
	WriteTimeout time.Duration
}

// RedisStore implements Store using go-redis/v9, one key per agent.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store and verifies connectivity with
// a ping.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("store: parse Redis URL: %w", err)
	}

	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store: connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// agentKey builds the Redis key for an agent identifier.
func agentKey(agentID string) string {
	return agentKeyPrefix + agentID
}

// Save upserts the state's document.
func (s *RedisStore) Save(ctx context.Context, state *memory.CognitiveState) error {
	data, err := state.MarshalDocument()
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, agentKey(state.AgentID()), data, 0).Err(); err != nil {
		return fmt.Errorf("store: save agent %s: %w", state.AgentID(), err)
	}
	return nil
}

// Load returns the state for agentID, or ErrNotFound.
func (s *RedisStore) Load(ctx context.Context, agentID string) (*memory.CognitiveState, error) {
	data, err := s.client.Get(ctx, agentKey(agentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: load agent %s: %w", agentID, err)
	}
	return memory.UnmarshalDocument(data)
}

// Delete removes the state for agentID, if present.
func (s *RedisStore) Delete(ctx context.Context, agentID string) error {
	if err := s.client.Del(ctx, agentKey(agentID)).Err(); err != nil {
		return fmt.Errorf("store: delete agent %s: %w", agentID, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
