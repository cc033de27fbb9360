package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/nekomeowww/xo/logger"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/locales"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	l, err := logger.NewLogger(logger.WithLevel(zapcore.DebugLevel), logger.WithAppName("dogbot"), logger.WithNamespace("message-bot-dogv"))
	require.NoError(t, err)

	return l
}

type fakeTelegram struct {
	server *httptest.Server

	mutex       sync.Mutex
	sentTexts   []string
	editedTexts []string
}

func (f *fakeTelegram) SentTexts() []string {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return append([]string{}, f.sentTexts...)
}

func (f *fakeTelegram) EditedTexts() []string {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return append([]string{}, f.editedTexts...)
}

// newFakeBot stands up an in-process Telegram API and a bot pointed at it,
// so handlers that send and edit messages run against a real transport.
func newFakeBot(t *testing.T) (*fakeTelegram, *dogbot.Bot) {
	t.Helper()

	f := &fakeTelegram{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		var result any

		switch path.Base(r.URL.Path) {
		case "getMe":
			result = tgbotapi.User{ID: 1, IsBot: true, FirstName: "dog", UserName: "dogbot"}
		case "sendMessage":
			f.mutex.Lock()
			f.sentTexts = append(f.sentTexts, r.Form.Get("text"))
			messageID := len(f.sentTexts)
			f.mutex.Unlock()

			result = tgbotapi.Message{MessageID: messageID, Chat: &tgbotapi.Chat{ID: 1}}
		case "editMessageText":
			f.mutex.Lock()
			f.editedTexts = append(f.editedTexts, r.Form.Get("text"))
			f.mutex.Unlock()

			result = tgbotapi.Message{MessageID: 1, Chat: &tgbotapi.Chat{ID: 1}}
		case "getUpdates":
			result = []tgbotapi.Update{}
		case "getWebhookInfo":
			result = tgbotapi.WebhookInfo{}
		default:
			result = true
		}

		raw, err := json.Marshal(result)
		require.NoError(t, err)

		_ = json.NewEncoder(w).Encode(tgbotapi.APIResponse{Ok: true, Result: raw})
	}))
	t.Cleanup(f.server.Close)

	bot, err := dogbot.NewBot(
		dogbot.WithToken("42:token"),
		dogbot.WithAPIEndpoint(f.server.URL),
		dogbot.WithLogger(newTestLogger(t)),
	)
	require.NoError(t, err)
	t.Cleanup(bot.StopReceivingUpdates)

	return f, bot
}

func newCommandUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: 700, FirstName: "Tester", LanguageCode: "en"},
			Chat:      &tgbotapi.Chat{ID: 1, Type: "private"},
			Text:      text,
		},
	}
}

// newTestContext builds a handler context. botAPI may be nil for handlers
// that never touch the transport.
func newTestContext(t *testing.T, botAPI *dogbot.BotAPI, text string) *dogbot.Context {
	t.Helper()

	i18n, err := locales.NewI18n()
	require.NoError(t, err)

	return dogbot.NewContext(botAPI, newCommandUpdate(text), newTestLogger(t), i18n)
}

func TestRegister(t *testing.T) {
	tracker := dogbot.NewTaskTracker(newTestLogger(t))
	dispatcher := dogbot.NewDispatcher(newTestLogger(t), tracker)

	h := NewCommands(NewCommandsParams{Logger: newTestLogger(t)})
	h.Register(dispatcher)

	for _, name := range []string{"ping", "test", "env", ".env", "hi_dog", "gpt", "deepseek", "r1", "grok", "grok_think", "unwire", "help", "cancel"} {
		_, _, ok := dispatcher.Registry().Match("/"+name, "dogbot")
		require.True(t, ok, "command %q is not registered", name)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	tracker := dogbot.NewTaskTracker(newTestLogger(t))
	dispatcher := dogbot.NewDispatcher(newTestLogger(t), tracker)

	h := NewCommands(NewCommandsParams{Logger: newTestLogger(t)})
	h.Register(dispatcher)

	require.Panics(t, func() {
		h.Register(dispatcher)
	})
}
