package dogbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	t.Run("Duplicate", func(t *testing.T) {
		registry := NewRegistry()

		require.NoError(t, registry.Register(Command{Command: "ping"}))
		require.ErrorIs(t, registry.Register(Command{Command: "ping"}), ErrDuplicateCommand)

		assert.Equal(t, 1, registry.Len())
	})

	t.Run("EmptyName", func(t *testing.T) {
		registry := NewRegistry()

		require.Error(t, registry.Register(Command{}))
	})

	t.Run("MustRegisterPanicsOnDuplicate", func(t *testing.T) {
		registry := NewRegistry()
		registry.MustRegister(Command{Command: "ping"})

		assert.Panics(t, func() {
			registry.MustRegister(Command{Command: "ping"})
		})
	})
}

func TestRegistryMatch(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(Command{Command: "env"})
	registry.MustRegister(Command{Command: ".env"})
	registry.MustRegister(Command{Command: "grok"})
	registry.MustRegister(Command{Command: "grok_think"})

	t.Run("ExactToken", func(t *testing.T) {
		cmd, args, ok := registry.Match("/env", "dogbot")
		require.True(t, ok)
		assert.Equal(t, "env", cmd.Command)
		assert.Empty(t, args)
	})

	t.Run("DottedCommand", func(t *testing.T) {
		cmd, _, ok := registry.Match("/.env", "dogbot")
		require.True(t, ok)
		assert.Equal(t, ".env", cmd.Command)
	})

	t.Run("Args", func(t *testing.T) {
		cmd, args, ok := registry.Match("/grok what is the answer", "dogbot")
		require.True(t, ok)
		assert.Equal(t, "grok", cmd.Command)
		assert.Equal(t, "what is the answer", args)
	})

	t.Run("PrefixIsNotAMatch", func(t *testing.T) {
		cmd, _, ok := registry.Match("/grok_think hello", "dogbot")
		require.True(t, ok)
		assert.Equal(t, "grok_think", cmd.Command)
	})

	t.Run("BotMention", func(t *testing.T) {
		cmd, args, ok := registry.Match("/grok@dogbot hello", "dogbot")
		require.True(t, ok)
		assert.Equal(t, "grok", cmd.Command)
		assert.Equal(t, "hello", args)

		_, _, ok = registry.Match("/grok@otherbot hello", "dogbot")
		assert.False(t, ok)
	})

	t.Run("NotACommand", func(t *testing.T) {
		_, _, ok := registry.Match("hello there", "dogbot")
		assert.False(t, ok)
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		_, _, ok := registry.Match("/unknown", "dogbot")
		assert.False(t, ok)
	})
}

func TestRegistryFirstRegisteredWins(t *testing.T) {
	registry := NewRegistry()

	first := Command{Command: "ping", HelpMessage: func(*Context) string { return "first" }}
	registry.MustRegister(first)

	cmd, _, ok := registry.Match("/ping", "dogbot")
	require.True(t, ok)
	assert.Equal(t, "first", cmd.HelpMessage(nil))
}
