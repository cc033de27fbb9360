package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/config"
)

func TestEnv(t *testing.T) {
	h := NewCommands(NewCommandsParams{
		Logger: newTestLogger(t),
		Config: &config.Config{Environment: "test"},
	})

	response, err := h.env(newTestContext(t, nil, "/env"))
	require.NoError(t, err)

	message, ok := response.(dogbot.MessageResponse)
	require.True(t, ok)

	assert.Contains(t, message.Text(), "Environment: TEST")
	assert.Contains(t, message.Text(), "OS: ")
	assert.Equal(t, 1, message.ReplyToMessageID())
}

func TestTest(t *testing.T) {
	h := NewCommands(NewCommandsParams{Logger: newTestLogger(t)})

	response, err := h.test(newTestContext(t, nil, "/test"))
	require.NoError(t, err)

	message, ok := response.(dogbot.MessageResponse)
	require.True(t, ok)

	assert.Equal(t, "Bot is running! This is a test response.", message.Text())
}

func TestHiDog(t *testing.T) {
	h := NewCommands(NewCommandsParams{Logger: newTestLogger(t)})

	response, err := h.hiDog(newTestContext(t, nil, "/hi_dog"))
	require.NoError(t, err)

	message, ok := response.(dogbot.MessageResponse)
	require.True(t, ok)

	assert.NotEmpty(t, message.Text())
}

func TestPing(t *testing.T) {
	f, bot := newFakeBot(t)

	h := NewCommands(NewCommandsParams{Logger: newTestLogger(t)})

	response, err := h.ping(newTestContext(t, bot.Bot(), "/ping"))
	require.NoError(t, err)
	require.Nil(t, response)

	sent := f.SentTexts()
	require.Len(t, sent, 1)
	assert.Equal(t, "Pinging...", sent[0])

	edited := f.EditedTexts()
	require.Len(t, edited, 1)
	assert.Regexp(t, `^\d+ms\n`, edited[0])
	assert.Contains(t, edited[0], "Service: ")
	assert.Contains(t, edited[0], "Location: Unknown")
}
