package dogbot

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newWebhookServer(path string, port string, updateChan chan tgbotapi.Update) *http.Server {
	if path == "" {
		path = "/"
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, 1024*1024))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var update tgbotapi.Update

		err = json.Unmarshal(body, &update)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		updateChan <- update

		w.WriteHeader(http.StatusOK)
	})

	return &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func setWebhook(webhookURL string, bot *tgbotapi.BotAPI) error {
	webhookConfig, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return err
	}

	_, err = bot.Request(webhookConfig)

	return err
}
