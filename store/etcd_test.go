package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtcdKey(t *testing.T) {
	assert.Equal(t, "/agentkeeper/agents/agent-1", etcdKey("agent-1"))
	assert.Equal(t, "/agentkeeper/agents/", etcdKey(""))
}

func TestNewEtcdStoreValidation(t *testing.T) {
	_, err := NewEtcdStore(EtcdOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoints cannot be empty")
}
