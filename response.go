package dogbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Response is what a command handler hands back to the dispatcher to be sent.
// A nil Response means the handler already sent everything it wanted to.
type Response interface {
	Chattable() tgbotapi.Chattable
}

type MessageResponse struct {
	messageConfig tgbotapi.MessageConfig
}

func NewMessage(chatID int64, text string) MessageResponse {
	return MessageResponse{messageConfig: tgbotapi.NewMessage(chatID, text)}
}

func NewMessageReplyTo(chatID int64, text string, replyToMessageID int) MessageResponse {
	messageConfig := tgbotapi.NewMessage(chatID, text)
	messageConfig.ReplyToMessageID = replyToMessageID

	return MessageResponse{messageConfig: messageConfig}
}

func (r MessageResponse) WithParseModeHTML() MessageResponse {
	r.messageConfig.ParseMode = tgbotapi.ModeHTML

	return r
}

func (r MessageResponse) WithDisableWebPagePreview() MessageResponse {
	r.messageConfig.DisableWebPagePreview = true

	return r
}

func (r MessageResponse) Text() string {
	return r.messageConfig.Text
}

func (r MessageResponse) ChatID() int64 {
	return r.messageConfig.ChatID
}

func (r MessageResponse) ReplyToMessageID() int {
	return r.messageConfig.ReplyToMessageID
}

func (r MessageResponse) Chattable() tgbotapi.Chattable {
	return r.messageConfig
}

type EditMessageResponse struct {
	editConfig tgbotapi.EditMessageTextConfig
}

func NewEditMessageText(chatID int64, messageID int, text string) EditMessageResponse {
	return EditMessageResponse{editConfig: tgbotapi.NewEditMessageText(chatID, messageID, text)}
}

func (r EditMessageResponse) WithParseModeHTML() EditMessageResponse {
	r.editConfig.ParseMode = tgbotapi.ModeHTML

	return r
}

func (r EditMessageResponse) Text() string {
	return r.editConfig.Text
}

func (r EditMessageResponse) Chattable() tgbotapi.Chattable {
	return r.editConfig
}
