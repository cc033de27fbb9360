package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/unwire"
)

const invalidDateReply = "Invalid date format... Please use YYYY-MM-DD (e.g. 2024-01-15)."

const maxRecentDays = 7

// unwire handles /unwire [YYYY-MM-DD | recent | N | URL]. A malformed date
// argument gets exactly one reply and triggers no fetch.
func (h *Commands) unwire(c *dogbot.Context) (dogbot.Response, error) {
	message := c.Update.Message
	arg := c.CommandArgs()

	var text string
	var err error

	switch {
	case arg == "":
		text, err = h.news.News(c.Context(), "")
	case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"):
		text, err = h.news.Article(c.Context(), arg)
	case strings.EqualFold(arg, "recent"):
		text, err = h.news.Recent(c.Context(), 3)
	case isPositiveInteger(arg):
		days, _ := strconv.Atoi(arg)
		if days > maxRecentDays {
			days = maxRecentDays
		}

		text, err = h.news.Recent(c.Context(), days)
	default:
		if _, dateErr := unwire.NormalizeDate(arg); dateErr != nil {
			return c.NewMessageReplyTo(invalidDateReply, message.MessageID), nil
		}

		text, err = h.news.News(c.Context(), arg)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, nil
		}

		return nil, err
	}

	return c.NewMessageReplyTo(text, message.MessageID).
		WithParseModeHTML().
		WithDisableWebPagePreview(), nil
}

func isPositiveInteger(s string) bool {
	n, err := strconv.Atoi(s)

	return err == nil && n > 0
}
