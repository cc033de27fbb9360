package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue(t *testing.T) {
	t.Run("PushPop", func(t *testing.T) {
		q := NewInMemoryQueue()

		require.NoError(t, q.Push(context.Background(), "group", "a"))
		require.NoError(t, q.Push(context.Background(), "group", "b"))

		elem, err := q.Pop(context.Background(), "group")
		require.NoError(t, err)
		assert.Equal(t, "a", elem)

		elem, err = q.Pop(context.Background(), "group")
		require.NoError(t, err)
		assert.Equal(t, "b", elem)
	})

	t.Run("PopEmpty", func(t *testing.T) {
		q := NewInMemoryQueue()

		elem, err := q.Pop(context.Background(), "group")
		require.NoError(t, err)
		assert.Empty(t, elem)
	})

	t.Run("PopAll", func(t *testing.T) {
		q := NewInMemoryQueue()

		require.NoError(t, q.Push(context.Background(), "group", "a"))
		require.NoError(t, q.Push(context.Background(), "group", "b"))
		require.NoError(t, q.Push(context.Background(), "other", "c"))

		elems, err := q.PopAll(context.Background(), "group")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, elems)

		// The group is drained, other groups untouched.
		elems, err = q.PopAll(context.Background(), "group")
		require.NoError(t, err)
		assert.Empty(t, elems)

		elem, err := q.Pop(context.Background(), "other")
		require.NoError(t, err)
		assert.Equal(t, "c", elem)
	})
}
