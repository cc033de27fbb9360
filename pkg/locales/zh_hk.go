package locales

import (
	i18nv2 "github.com/nicksnyder/go-i18n/v2/i18n"
)

func RegisterZhHK() []*i18nv2.Message {
	return []*i18nv2.Message{
		{
			ID:    "telegram.system.commands.groups.basic.name",
			Other: "基本指令",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.help.help",
			Other: "顯示幫助訊息",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.help.message",
			Other: "可用指令如下：\n\n{{ .Commands }}",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.cancel.help",
			Other: "取消你正在執行的指令。",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.cancel.alreadyCancelledAll",
			Other: "沒有正在執行的指令可以取消",
		},
		{
			ID:    "telegram.system.commands.groups.basic.commands.cancel.cancelled",
			Other: "已取消 {{ .Count }} 個正在執行的指令",
		},
		{
			ID:    "telegram.system.commands.failed",
			Other: "抱歉，處理指令時出錯了，請稍後再試。",
		},
		{
			ID:    "telegram.system.commands.rateLimited",
			Other: "Telegram 速率限制已觸發，需要等待 {{ .Seconds }} 秒。請稍後再試。",
		},
		{
			ID:    "telegram.system.commands.tooFrequent",
			Other: "此指令在本聊天中使用太頻繁，請稍等片刻後再試。",
		},
		{
			ID:    "telegram.system.commands.processing",
			Other: "處理中，請稍等...",
		},
	}
}
