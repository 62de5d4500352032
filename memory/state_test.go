package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Run("explicit agent id", func(t *testing.T) {
		state := NewState("agent-1")
		assert.Equal(t, "agent-1", state.AgentID())
		assert.Equal(t, 0, state.Len())
		assert.Equal(t, state.CreatedAt(), state.UpdatedAt())
	})

	t.Run("empty agent id generates uuid", func(t *testing.T) {
		a := NewState("")
		b := NewState("")
		assert.NotEmpty(t, a.AgentID())
		assert.NotEqual(t, a.AgentID(), b.AgentID())
	})
}

func TestAddFact(t *testing.T) {
	t.Run("appends in insertion order", func(t *testing.T) {
		state := NewState("agent-1")
		f1 := state.AddFact("first", false)
		f2 := state.AddFact("second", true)
		f3 := state.AddFact("third", false)

		facts := state.Facts()
		require.Len(t, facts, 3)
		assert.Equal(t, []*Fact{f1, f2, f3}, facts)
	})

	t.Run("assigns unique ids", func(t *testing.T) {
		state := NewState("agent-1")
		seen := make(map[string]struct{})
		for i := 0; i < 50; i++ {
			f := state.AddFact("same content", false)
			_, dup := seen[f.ID]
			require.False(t, dup, "duplicate fact id %q", f.ID)
			seen[f.ID] = struct{}{}
		}
	})

	t.Run("refreshes updated at", func(t *testing.T) {
		state := NewState("agent-1")
		before := state.UpdatedAt()
		time.Sleep(time.Millisecond)
		state.AddFact("fact", false)
		assert.True(t, state.UpdatedAt().After(before))
	})

	t.Run("empty content accepted", func(t *testing.T) {
		state := NewState("agent-1")
		f := state.AddFact("", true)
		assert.NotEmpty(t, f.ID)
		assert.Equal(t, 1, state.Len())
	})
}

func TestRemoveFact(t *testing.T) {
	t.Run("removes by id", func(t *testing.T) {
		state := NewState("agent-1")
		f1 := state.AddFact("keep", false)
		f2 := state.AddFact("drop", false)
		f3 := state.AddFact("keep too", true)

		require.True(t, state.RemoveFact(f2.ID))
		facts := state.Facts()
		require.Len(t, facts, 2)
		assert.Equal(t, f1.ID, facts[0].ID)
		assert.Equal(t, f3.ID, facts[1].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		state := NewState("agent-1")
		state.AddFact("fact", false)
		updated := state.UpdatedAt()

		time.Sleep(time.Millisecond)
		assert.False(t, state.RemoveFact("no-such-id"))
		assert.Equal(t, updated, state.UpdatedAt(), "no-op removal must not touch UpdatedAt")
	})

	t.Run("removal refreshes updated at", func(t *testing.T) {
		state := NewState("agent-1")
		f := state.AddFact("fact", false)
		updated := state.UpdatedAt()

		time.Sleep(time.Millisecond)
		require.True(t, state.RemoveFact(f.ID))
		assert.True(t, state.UpdatedAt().After(updated))
	})
}

func TestFactLookup(t *testing.T) {
	state := NewState("agent-1")
	f := state.AddFact("needle", true)

	got, ok := state.Fact(f.ID)
	require.True(t, ok)
	assert.Equal(t, f, got)

	_, ok = state.Fact("missing")
	assert.False(t, ok)
}

func TestCriticalFacts(t *testing.T) {
	state := NewState("agent-1")
	c1 := state.AddFact("critical one", true)
	state.AddFact("plain", false)
	c2 := state.AddFact("critical two", true)

	criticals := state.CriticalFacts()
	require.Len(t, criticals, 2)
	assert.Equal(t, c1.ID, criticals[0].ID)
	assert.Equal(t, c2.ID, criticals[1].ID)

	assert.Empty(t, NewState("empty").CriticalFacts())
}

func TestFactsReturnsCopy(t *testing.T) {
	state := NewState("agent-1")
	f1 := state.AddFact("one", false)
	f2 := state.AddFact("two", false)

	facts := state.Facts()
	facts[0], facts[1] = facts[1], facts[0]

	// Source ordering is untouched.
	again := state.Facts()
	assert.Equal(t, f1.ID, again[0].ID)
	assert.Equal(t, f2.ID, again[1].ID)
}

func TestDocumentRoundTrip(t *testing.T) {
	state := NewState("agent-rt")
	state.AddFact("budget: 50k EUR", true)
	state.AddFact("client: Acme Corp", true)
	state.AddFact("prefers short answers", false)

	data, err := state.MarshalDocument()
	require.NoError(t, err)

	restored, err := UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, state.AgentID(), restored.AgentID())
	assert.True(t, state.CreatedAt().Equal(restored.CreatedAt()))
	assert.True(t, state.UpdatedAt().Equal(restored.UpdatedAt()))

	orig := state.Facts()
	got := restored.Facts()
	require.Len(t, got, len(orig))
	for i := range orig {
		assert.Equal(t, orig[i].ID, got[i].ID)
		assert.Equal(t, orig[i].Content, got[i].Content)
		assert.Equal(t, orig[i].Critical, got[i].Critical)
	}
}

func TestUnmarshalDocument(t *testing.T) {
	valid := `{
		"agent_id": "agent-1",
		"memory_facts": [
			{"id": "f1", "content": "a", "critical": true, "token_count": 0},
			{"id": "f2", "content": "b", "critical": false, "token_count": 3}
		],
		"created_at": "2026-08-25T09:00:00Z",
		"updated_at": "2026-08-25T09:01:30Z"
	}`

	t.Run("valid document", func(t *testing.T) {
		state, err := UnmarshalDocument([]byte(valid))
		require.NoError(t, err)
		assert.Equal(t, "agent-1", state.AgentID())
		require.Equal(t, 2, state.Len())
		assert.True(t, state.Facts()[0].Critical)
	})

	t.Run("stale token counts are carried", func(t *testing.T) {
		state, err := UnmarshalDocument([]byte(valid))
		require.NoError(t, err)
		// Recomputation happens at selection time, not here.
		assert.Equal(t, 3, state.Facts()[1].TokenCount)
	})

	t.Run("missing agent id", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`{"created_at":"2026-08-25T09:00:00Z","updated_at":"2026-08-25T09:00:00Z"}`))
		require.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("missing timestamps", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`{"agent_id":"a"}`))
		require.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("bad timestamp format", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`{"agent_id":"a","created_at":"yesterday","updated_at":"2026-08-25T09:00:00Z"}`))
		require.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("duplicate fact ids", func(t *testing.T) {
		doc := `{
			"agent_id": "a",
			"memory_facts": [{"id":"f1","content":"x"},{"id":"f1","content":"y"}],
			"created_at": "2026-08-25T09:00:00Z",
			"updated_at": "2026-08-25T09:00:00Z"
		}`
		_, err := UnmarshalDocument([]byte(doc))
		require.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("fact without id", func(t *testing.T) {
		doc := `{
			"agent_id": "a",
			"memory_facts": [{"content":"x"}],
			"created_at": "2026-08-25T09:00:00Z",
			"updated_at": "2026-08-25T09:00:00Z"
		}`
		_, err := UnmarshalDocument([]byte(doc))
		require.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("no facts array", func(t *testing.T) {
		doc := `{"agent_id":"a","created_at":"2026-08-25T09:00:00Z","updated_at":"2026-08-25T09:00:00Z"}`
		state, err := UnmarshalDocument([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, 0, state.Len())
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`{`))
		require.ErrorIs(t, err, ErrInvalidDocument)
	})
}
