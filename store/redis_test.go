package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisStore starts a miniredis instance and returns a connected store.
func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	st, err := NewRedisStore(RedisOptions{
		URL:            fmt.Sprintf("redis://%s", mr.Addr()),
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st, mr
}

func TestNewRedisStore(t *testing.T) {
	t.Run("successful connection", func(t *testing.T) {
		st, _ := setupRedisStore(t)
		require.NotNil(t, st)
	})

	t.Run("connection failure", func(t *testing.T) {
		_, err := NewRedisStore(RedisOptions{
			URL:            "redis://localhost:1",
			ConnectTimeout: 100 * time.Millisecond,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connect to Redis")
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := NewRedisStore(RedisOptions{URL: "invalid://url"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse Redis URL")
	})
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load round trip", func(t *testing.T) {
		st, _ := setupRedisStore(t)
		state := seededState(t)
		require.NoError(t, st.Save(ctx, state))

		loaded, err := st.Load(ctx, state.AgentID())
		require.NoError(t, err)
		assertRoundTrip(t, state, loaded)
	})

	t.Run("keys are namespaced", func(t *testing.T) {
		st, mr := setupRedisStore(t)
		state := seededState(t)
		require.NoError(t, st.Save(ctx, state))

		assert.True(t, mr.Exists("keeper:agent:"+state.AgentID()))
	})

	t.Run("load absent agent", func(t *testing.T) {
		st, _ := setupRedisStore(t)
		_, err := st.Load(ctx, "ghost")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		st, _ := setupRedisStore(t)
		state := seededState(t)
		require.NoError(t, st.Save(ctx, state))
		require.NoError(t, st.Delete(ctx, state.AgentID()))

		_, err := st.Load(ctx, state.AgentID())
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, st.Delete(ctx, state.AgentID()), "second delete is a no-op")
	})

	t.Run("upsert replaces prior state", func(t *testing.T) {
		st, _ := setupRedisStore(t)
		state := seededState(t)
		require.NoError(t, st.Save(ctx, state))
		state.AddFact("another", true)
		require.NoError(t, st.Save(ctx, state))

		loaded, err := st.Load(ctx, state.AgentID())
		require.NoError(t, err)
		assert.Equal(t, 4, loaded.Len())
	})
}
