package ttlcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTTLCache(t *testing.T) {
	t.Run("SetGet", func(t *testing.T) {
		c := NewInMemoryTTLCache()

		require.NoError(t, c.Set(context.Background(), "key", "value", time.Minute))

		value, err := c.Get(context.Background(), "key")
		require.NoError(t, err)
		assert.Equal(t, "value", value.OrEmpty())
	})

	t.Run("Missing", func(t *testing.T) {
		c := NewInMemoryTTLCache()

		value, err := c.Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.True(t, value.IsAbsent())
	})

	t.Run("Expires", func(t *testing.T) {
		c := NewInMemoryTTLCache()

		require.NoError(t, c.Set(context.Background(), "key", "value", 50*time.Millisecond))

		require.Eventually(t, func() bool {
			value, err := c.Get(context.Background(), "key")

			return err == nil && value.IsAbsent()
		}, time.Second, 10*time.Millisecond)
	})
}
