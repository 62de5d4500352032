package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider(t *testing.T) {
	t.Run("echoes system context", func(t *testing.T) {
		mock := NewMockProvider()
		resp, err := mock.Query(context.Background(), "memory goes here", "question")
		require.NoError(t, err)
		assert.Equal(t, "Based on my memory: memory goes here", resp)
	})

	t.Run("records last system context", func(t *testing.T) {
		mock := NewMockProvider()
		_, err := mock.Query(context.Background(), "first", "q")
		require.NoError(t, err)
		_, err = mock.Query(context.Background(), "second", "q")
		require.NoError(t, err)
		assert.Equal(t, "second", mock.LastSystemContext())
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewMockProvider().Query(ctx, "system", "q")
		require.ErrorIs(t, err, context.Canceled)
	})
}
