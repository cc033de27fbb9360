package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/llm"
)

func newStubClient(t *testing.T, providers ...string) *llm.Client {
	t.Helper()

	client := llm.NewClient()
	for _, name := range providers {
		require.NoError(t, client.RegisterProvider(name, &llm.Stub{}))
	}

	return client
}

func TestLLMCommandEmptyPrompt(t *testing.T) {
	h := NewCommands(NewCommandsParams{
		Logger: newTestLogger(t),
		LLM:    newStubClient(t, "openai"),
	})

	c := newTestContext(t, nil, "/gpt")
	c.WithCommand(context.Background(), "gpt", "")

	response, err := h.llmCommand("openai", "", "Usage: /gpt <prompt>")(c)
	require.NoError(t, err)

	message, ok := response.(dogbot.MessageResponse)
	require.True(t, ok)
	assert.Equal(t, "Usage: /gpt <prompt>", message.Text())
}

func TestLLMCommand(t *testing.T) {
	f, bot := newFakeBot(t)

	h := NewCommands(NewCommandsParams{
		Logger: newTestLogger(t),
		LLM:    newStubClient(t, "openai"),
	})

	c := newTestContext(t, bot.Bot(), "/gpt hello")
	c.WithCommand(context.Background(), "gpt", "hello")

	response, err := h.llmCommand("openai", "", "Usage: /gpt <prompt>")(c)
	require.NoError(t, err)
	require.Nil(t, response)

	sent := f.SentTexts()
	require.Len(t, sent, 1)
	assert.Equal(t, "Processing, please wait...", sent[0])

	// Streamed partial edits first, the full answer last.
	edited := f.EditedTexts()
	require.NotEmpty(t, edited)
	assert.Contains(t, edited[len(edited)-1], "Prompt received: hello")
}

func TestLLMCommandFailureEditedIntoPlaceholder(t *testing.T) {
	f, bot := newFakeBot(t)

	h := NewCommands(NewCommandsParams{
		Logger: newTestLogger(t),
		LLM:    newStubClient(t),
	})

	c := newTestContext(t, bot.Bot(), "/gpt hello")
	c.WithCommand(context.Background(), "gpt", "hello")

	// The placeholder turns into the failure text, no separate error reply.
	response, err := h.llmCommand("openai", "", "Usage: /gpt <prompt>")(c)
	require.NoError(t, err)
	require.Nil(t, response)

	sent := f.SentTexts()
	require.Len(t, sent, 1)
	assert.Equal(t, "Processing, please wait...", sent[0])

	edited := f.EditedTexts()
	require.Len(t, edited, 1)
	assert.Contains(t, edited[0], "Sorry, something went wrong")
}

func TestLLMCommandCancelled(t *testing.T) {
	f, bot := newFakeBot(t)

	client := llm.NewClient()
	require.NoError(t, client.RegisterProvider("openai", &llm.Stub{Delay: time.Minute}))

	h := NewCommands(NewCommandsParams{
		Logger: newTestLogger(t),
		LLM:    client,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestContext(t, bot.Bot(), "/gpt hello")
	c.WithCommand(ctx, "gpt", "hello")

	// A cancelled completion ends quietly, no error and no answer edit.
	response, err := h.llmCommand("openai", "", "Usage: /gpt <prompt>")(c)
	require.NoError(t, err)
	require.Nil(t, response)

	assert.Empty(t, f.EditedTexts())
}
