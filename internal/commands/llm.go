package commands

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/llm"
)

const defaultSystemPrompt = "You are a helpful assistant. Answer concisely and use plain text, not markdown."

// One chat may run an LLM command this many times per window before getting
// a cooldown reply.
const (
	llmCommandRateLimit       = 5
	llmCommandRateLimitWindow = time.Minute
)

// llmCommand builds the shared prompt-to-completion handler. provider picks
// the registered provider, model overrides its default when non-empty. The
// completion streams into the placeholder message as it arrives, throttled
// so the edits stay under Telegram's flood control.
func (h *Commands) llmCommand(provider string, model string, usage string) dogbot.HandleFunc {
	return func(c *dogbot.Context) (dogbot.Response, error) {
		message := c.Update.Message

		prompt := c.CommandArgs()
		if prompt == "" {
			return c.NewMessageReplyTo(usage, message.MessageID), nil
		}

		_, ok, err := c.RateLimitForCommand(message.Chat.ID, c.CommandName(), llmCommandRateLimit, llmCommandRateLimitWindow)
		if err != nil {
			h.logger.Error("failed to count rate limit for command",
				zap.String("command", c.CommandName()),
				zap.Int64("chat_id", message.Chat.ID),
				zap.Error(err),
			)
		}
		if !ok {
			return c.NewMessageReplyTo(c.T("telegram.system.commands.tooFrequent"), message.MessageID), nil
		}

		placeholder := c.Bot.MaySend(c.NewMessageReplyTo(c.T("telegram.system.commands.processing"), message.MessageID).Chattable())
		if placeholder != nil && placeholder.MessageID != 0 {
			_ = c.Bot.PushOneDeleteLaterMessage(message.From.ID, message.Chat.ID, placeholder.MessageID)
		}

		placeholderID := placeholderMessageID(placeholder)
		limiter := rate.NewLimiter(streamEditInterval, 1)

		answer, err := h.llm.CompleteStream(c.Context(), llm.Request{
			Provider:     provider,
			Model:        model,
			Prompt:       prompt,
			SystemPrompt: defaultSystemPrompt,
		}, func(partial string) {
			h.editPartial(c, placeholderID, limiter, partial)
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				// Cancelled through /cancel or shutdown, nothing to answer.
				return nil, nil
			}

			return nil, h.failOverPlaceholder(c, placeholderID, err)
		}

		h.deliverAnswer(c, placeholderID, message.Chat.ID, answer)

		return nil, nil
	}
}

func placeholderMessageID(message *tgbotapi.Message) int {
	if message == nil {
		return 0
	}

	return message.MessageID
}

// editPartial puts in-flight completion text on the placeholder. Edits past
// the limiter are skipped, the next partial carries their text anyway.
func (h *Commands) editPartial(c *dogbot.Context, placeholderID int, limiter *rate.Limiter, partial string) {
	if placeholderID == 0 || partial == "" {
		return
	}
	if !limiter.Allow() {
		return
	}

	c.Bot.MayRequest(c.NewEditMessageText(placeholderID, dogbot.SplitMessage(partial)[0]).Chattable())
}

// failOverPlaceholder edits the generic failure text into the placeholder so
// "Processing, please wait..." never stays behind next to a separate error
// reply. Without a placeholder the error propagates to the dispatcher.
func (h *Commands) failOverPlaceholder(c *dogbot.Context, placeholderID int, err error) error {
	if placeholderID == 0 {
		return err
	}

	h.logger.Error("command failed after placeholder was sent",
		zap.String("command", c.CommandName()),
		zap.Error(err),
	)
	c.Bot.MayRequest(c.NewEditMessageText(placeholderID, c.T("telegram.system.commands.failed")).Chattable())

	return nil
}

// deliverAnswer edits the completion into the placeholder when one exists,
// spilling over into follow-up messages when the text exceeds Telegram's
// message length cap.
func (h *Commands) deliverAnswer(c *dogbot.Context, placeholderID int, chatID int64, answer string) {
	if answer == "" {
		answer = "(the model returned an empty response)"
	}

	chunks := dogbot.SplitMessage(answer)

	if placeholderID != 0 {
		c.Bot.MayRequest(c.NewEditMessageText(placeholderID, chunks[0]).Chattable())
		chunks = chunks[1:]
	}

	for _, chunk := range chunks {
		c.Bot.SendLongMessage(chatID, chunk)
	}
}
