package commands

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/arts"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/llm"
)

// Telegram floods easily on message edits, keep animation frames and
// streamed partial edits well under one edit per second.
var streamEditInterval = rate.Every(1500 * time.Millisecond)

// grokThink is /grok with showmanship: an ASCII art placeholder, an animated
// thinking indicator until the first streamed text arrives, partial output
// edited in as it streams, and a fallback to deepseek when grok is
// unavailable.
func (h *Commands) grokThink(c *dogbot.Context) (dogbot.Response, error) {
	message := c.Update.Message

	prompt := c.CommandArgs()
	if prompt == "" {
		return c.NewMessageReplyTo("Usage: /grok_think <prompt>", message.MessageID), nil
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

	placeholderID := h.sendThinkingPlaceholder(c, message.MessageID)
	if placeholderID != 0 {
		_ = c.Bot.PushOneDeleteLaterMessage(message.From.ID, message.Chat.ID, placeholderID)
	}

	animationCtx, stopAnimation := context.WithCancel(c.Context())
	defer stopAnimation()

	animationDone := make(chan struct{})

	if placeholderID != 0 {
		go func() {
			defer close(animationDone)

			h.animateThinking(animationCtx, c, placeholderID)
		}()
	} else {
		close(animationDone)
	}

	// The animation must be fully stopped before any answer text lands on
	// the placeholder, or a late frame would overwrite it.
	var joinOnce sync.Once

	joinAnimation := func() {
		joinOnce.Do(func() {
			stopAnimation()
			<-animationDone
		})
	}

	limiter := rate.NewLimiter(streamEditInterval, 1)

	answer, err := h.completeWithFallback(c.Context(), prompt, func(partial string) {
		if partial == "" {
			return
		}

		joinAnimation()
		h.editPartial(c, placeholderID, limiter, partial)
	})

	joinAnimation()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, nil
		}

		return nil, h.failOverPlaceholder(c, placeholderID, err)
	}

	h.deliverAnswer(c, placeholderID, message.Chat.ID, answer)

	return nil, nil
}

// sendThinkingPlaceholder tries the full ASCII art first. When Telegram
// answers with flood control, it falls back to the plain text variant
// instead of waiting out the cooldown.
func (h *Commands) sendThinkingPlaceholder(c *dogbot.Context, replyToMessageID int) int {
	sent, err := c.Bot.Send(c.NewMessageReplyTo(arts.InitialMessageArt, replyToMessageID).Chattable())
	if err == nil {
		return sent.MessageID
	}

	if seconds, ok := c.Bot.IsRetryAfterErr(err); ok {
		h.logger.Warn("flood control on thinking art, falling back to plain placeholder",
			zap.Int("retry_after_seconds", seconds),
		)
	} else {
		h.logger.Error("failed to send thinking art placeholder", zap.Error(err))
	}

	fallback := c.Bot.MaySend(c.NewMessageReplyTo(arts.SimpleInitialMessage, replyToMessageID).Chattable())

	return placeholderMessageID(fallback)
}

func (h *Commands) animateThinking(ctx context.Context, c *dogbot.Context, placeholderID int) {
	limiter := rate.NewLimiter(streamEditInterval, 1)

	for frame := 0; ; frame++ {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		text := arts.ThinkingFrames[frame%len(arts.ThinkingFrames)]
		c.Bot.MayRequest(c.NewEditMessageText(placeholderID, text).Chattable())
	}
}

func (h *Commands) completeWithFallback(ctx context.Context, prompt string, onPartial llm.StreamHandler) (string, error) {
	answer, err := h.llm.CompleteStream(ctx, llm.Request{
		Provider:     "grok",
		Prompt:       prompt,
		SystemPrompt: defaultSystemPrompt,
	}, onPartial)
	if err == nil {
		return answer, nil
	}
	if errors.Is(err, context.Canceled) {
		return "", err
	}

	h.logger.Warn("grok completion failed, falling back to deepseek", zap.Error(err))

	return h.llm.CompleteStream(ctx, llm.Request{
		Provider:     "deepseek",
		Prompt:       prompt,
		SystemPrompt: defaultSystemPrompt,
	}, onPartial)
}
