package dogbot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextLanguage(t *testing.T) {
	t.Run("FromSender", func(t *testing.T) {
		c := NewContext(nil, newCommandUpdate(1, 1, "/ping"), newTestLogger(t), newTestI18n(t))
		assert.Equal(t, "en", c.Language())
	})

	t.Run("FallbackWithoutSender", func(t *testing.T) {
		c := NewContext(nil, tgbotapi.Update{}, newTestLogger(t), newTestI18n(t))
		assert.Equal(t, "en", c.Language())
	})

	t.Run("FallbackWithoutLanguageCode", func(t *testing.T) {
		update := newCommandUpdate(1, 1, "/ping")
		update.Message.From.LanguageCode = ""

		c := NewContext(nil, update, newTestLogger(t), newTestI18n(t))
		assert.Equal(t, "en", c.Language())
	})
}

func TestContextT(t *testing.T) {
	t.Run("En", func(t *testing.T) {
		c := NewContext(nil, newCommandUpdate(1, 1, "/ping"), newTestLogger(t), newTestI18n(t))
		assert.Equal(t, "Basic Commands", c.T("telegram.system.commands.groups.basic.name"))
	})

	t.Run("ZhHK", func(t *testing.T) {
		update := newCommandUpdate(1, 1, "/ping")
		update.Message.From.LanguageCode = "zh-HK"

		c := NewContext(nil, update, newTestLogger(t), newTestI18n(t))
		assert.Equal(t, "基本指令", c.T("telegram.system.commands.groups.basic.name"))
	})

	t.Run("UnknownKeyRendersKey", func(t *testing.T) {
		c := NewContext(nil, newCommandUpdate(1, 1, "/ping"), newTestLogger(t), newTestI18n(t))
		assert.Equal(t, "not.a.key", c.T("not.a.key"))
	})
}

func TestContextWithCommand(t *testing.T) {
	c := NewContext(nil, newCommandUpdate(1, 1, "/gpt tell me a story"), newTestLogger(t), newTestI18n(t))

	require.Empty(t, c.CommandName())
	require.Empty(t, c.CommandArgs())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.WithCommand(ctx, "gpt", "tell me a story")

	assert.Equal(t, "gpt", c.CommandName())
	assert.Equal(t, "tell me a story", c.CommandArgs())
	assert.Equal(t, ctx, c.Context())
}

func TestContextResponseConstructors(t *testing.T) {
	c := NewContext(nil, newCommandUpdate(7, 9, "/ping"), newTestLogger(t), newTestI18n(t))

	message := c.NewMessage("hello")
	assert.Equal(t, int64(9), message.ChatID())
	assert.Equal(t, "hello", message.Text())

	reply := c.NewMessageReplyTo("hello", 7)
	assert.Equal(t, 7, reply.ReplyToMessageID())

	edit := c.NewEditMessageText(7, "edited")
	assert.Equal(t, "edited", edit.Text())
}
