package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRegisterProvider(t *testing.T) {
	client := NewClient()

	require.NoError(t, client.RegisterProvider("openai", &Stub{}))
	require.ErrorIs(t, client.RegisterProvider("openai", &Stub{}), ErrProviderAlreadyRegistered)

	assert.True(t, client.HasProvider("openai"))
	assert.False(t, client.HasProvider("deepseek"))
	assert.Equal(t, []string{"openai"}, client.Providers())
}

func TestClientComplete(t *testing.T) {
	client := NewClient()
	require.NoError(t, client.RegisterProvider("openai", &Stub{Response: "canned"}))

	t.Run("Registered", func(t *testing.T) {
		answer, err := client.Complete(context.Background(), Request{Provider: "openai", Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "canned", answer)
	})

	t.Run("NotRegistered", func(t *testing.T) {
		_, err := client.Complete(context.Background(), Request{Provider: "grok", Prompt: "hi"})
		require.ErrorIs(t, err, ErrProviderNotRegistered)
	})
}

// completeOnlyProvider has no streaming support, CompleteStream must fall
// back to one Complete call.
type completeOnlyProvider struct {
	answer string
}

func (p *completeOnlyProvider) Complete(ctx context.Context, req Request) (string, error) {
	return p.answer, nil
}

func TestClientCompleteStream(t *testing.T) {
	t.Run("StreamingProvider", func(t *testing.T) {
		client := NewClient()
		require.NoError(t, client.RegisterProvider("openai", &Stub{Response: "streamed answer"}))

		var partials []string

		answer, err := client.CompleteStream(context.Background(), Request{Provider: "openai", Prompt: "hi"}, func(partial string) {
			partials = append(partials, partial)
		})
		require.NoError(t, err)
		assert.Equal(t, "streamed answer", answer)

		require.NotEmpty(t, partials)
		assert.Equal(t, answer, partials[len(partials)-1])

		// Partials only ever grow.
		for i := 1; i < len(partials); i++ {
			assert.True(t, len(partials[i]) >= len(partials[i-1]))
		}
	})

	t.Run("FallbackWithoutStreaming", func(t *testing.T) {
		client := NewClient()
		require.NoError(t, client.RegisterProvider("openai", &completeOnlyProvider{answer: "whole answer"}))

		var partials []string

		answer, err := client.CompleteStream(context.Background(), Request{Provider: "openai", Prompt: "hi"}, func(partial string) {
			partials = append(partials, partial)
		})
		require.NoError(t, err)
		assert.Equal(t, "whole answer", answer)
		assert.Equal(t, []string{"whole answer"}, partials)
	})

	t.Run("NotRegistered", func(t *testing.T) {
		_, err := NewClient().CompleteStream(context.Background(), Request{Provider: "grok", Prompt: "hi"}, nil)
		require.ErrorIs(t, err, ErrProviderNotRegistered)
	})
}

func TestStub(t *testing.T) {
	t.Run("EchoesPrompt", func(t *testing.T) {
		answer, err := (&Stub{}).Complete(context.Background(), Request{Prompt: "hello"})
		require.NoError(t, err)
		assert.Contains(t, answer, "Prompt received: hello")
	})

	t.Run("HonorsCancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := (&Stub{Delay: time.Minute}).Complete(ctx, Request{Prompt: "hello"})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("StreamsGrowingPartials", func(t *testing.T) {
		var partials []string

		answer, err := (&Stub{}).CompleteStream(context.Background(), Request{Prompt: "hello"}, func(partial string) {
			partials = append(partials, partial)
		})
		require.NoError(t, err)
		require.NotEmpty(t, partials)
		assert.Equal(t, answer, partials[len(partials)-1])
	})
}
