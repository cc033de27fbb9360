package commands

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/arts"
)

// ping measures the round trip of the bot's own reply call and edits the
// measurement into the placeholder. The measured quantity is the send call
// latency, not Telegram's server-side timing.
func (h *Commands) ping(c *dogbot.Context) (dogbot.Response, error) {
	message := c.Update.Message

	start := time.Now()

	placeholder := c.Bot.MaySend(c.NewMessageReplyTo("Pinging...", message.MessageID).Chattable())

	latency := time.Since(start)

	if placeholder == nil || placeholder.MessageID == 0 {
		return nil, fmt.Errorf("failed to send ping placeholder message")
	}

	text := fmt.Sprintf("%dms\nService: %s\nLocation: Unknown", latency.Milliseconds(), serviceName())
	c.Bot.MayRequest(c.NewEditMessageText(placeholder.MessageID, text).Chattable())

	return nil, nil
}

func serviceName() string {
	if os.Getenv("WEBSITE_SITE_NAME") != "" {
		return "Azure"
	}

	return "Local"
}

func (h *Commands) test(c *dogbot.Context) (dogbot.Response, error) {
	return c.NewMessage("Bot is running! This is a test response."), nil
}

func (h *Commands) env(c *dogbot.Context) (dogbot.Response, error) {
	text := fmt.Sprintf("Environment: %s\nOS: %s/%s\nRuntime: %s",
		strings.ToUpper(h.config.Environment),
		runtime.GOOS,
		runtime.GOARCH,
		runtime.Version(),
	)

	return c.NewMessageReplyTo(text, c.Update.Message.MessageID), nil
}

func (h *Commands) hiDog(c *dogbot.Context) (dogbot.Response, error) {
	return c.NewMessage(arts.RandomDogArt()), nil
}
