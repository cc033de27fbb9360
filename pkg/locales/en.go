package locales

import (
	i18nv2 "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/i18n"
)

// NewI18n builds an i18n instance with every bundled locale registered.
func NewI18n() (*i18n.I18n, error) {
	i := i18n.NewI18n()

	if err := i.RegisterMessages(language.English, RegisterEn()); err != nil {
		return nil, err
	}
	if err := i.RegisterMessages(language.MustParse("zh-HK"), RegisterZhHK()); err != nil {
		return nil, err
	}

	return i, nil
}

func RegisterEn() []*i18nv2.Message {
	return []*i18nv2.Message{
		{
			ID:    "telegram.system.commands.groups.basic.name",
			Other: "Basic Commands",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.help.help",
			Other: "Display help information",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.help.message",
			Other: "Here are the available commands:\n\n{{ .Commands }}",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.cancel.help",
			Other: "Cancel your in-flight commands.",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.cancel.alreadyCancelledAll",
			Other: "No in-flight commands to cancel",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.cancel.cancelled",
			Other: "Cancelled {{ .Count }} in-flight command(s)",
		},
		{
			ID:    "telegram.system.commands.failed",
			Other: "Sorry, something went wrong while handling your command. Please try again later.",
		},
		{
			ID:    "telegram.system.commands.rateLimited",
			Other: "Telegram rate limit triggered, need to wait {{ .Seconds }} seconds. Please try again later.",
		},
		{
			ID:    "telegram.system.commands.tooFrequent",
			Other: "This command was used too frequently in this chat, please wait a moment and try again.",
		},
		{
			ID:    "telegram.system.commands.processing",
			Other: "Processing, please wait...",
		},
	}
}
