package keeper

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentkeeper-ai/sdk/memory"
	"github.com/agentkeeper-ai/sdk/store"
)

// Create makes a new agent with an empty cognitive state. If agentID is
// empty a fresh UUID identifies the agent. The agent is not persisted until
// Save is called.
func Create(agentID string, opts ...Option) (*Agent, error) {
	s := newSettings(opts)
	return newAgent(memory.NewState(agentID), s), nil
}

// Load restores an agent from the configured store. An agent identifier
// with no persisted state yields an error matching ErrAgentNotFound; it is
// never silently replaced with an empty agent.
func Load(ctx context.Context, agentID string, opts ...Option) (*Agent, error) {
	s := newSettings(opts)
	if s.store == nil {
		return nil, newError("Load", KindConfiguration, ErrNoStore)
	}

	state, err := s.store.Load(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError("Load", KindNotFound, fmt.Errorf("%w: %q", ErrAgentNotFound, agentID))
		}
		return nil, newError("Load", KindNetwork, err)
	}

	s.logger.Debug("agent loaded",
		"agent_id", state.AgentID(),
		"facts", state.Len())
	return newAgent(state, s), nil
}

// Delete removes an agent's persisted state. Deleting an agent that was
// never saved is a no-op.
func Delete(ctx context.Context, agentID string, opts ...Option) error {
	s := newSettings(opts)
	if s.store == nil {
		return newError("Delete", KindConfiguration, ErrNoStore)
	}
	if err := s.store.Delete(ctx, agentID); err != nil {
		return newError("Delete", KindNetwork, err)
	}
	return nil
}
