package dogbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gookit/color"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/i18n"
	"github.com/nekomeowww/xo/logger"
)

type Dispatcher struct {
	logger  *logger.Logger
	tracker *TaskTracker

	registry      *Registry
	helpCommand   *helpCommandHandler
	cancelCommand *cancelCommandHandler

	middlewares               []MiddlewareFunc
	channelPostHandlers       []Handler
	leftChatMemberHandlers    []Handler
	newChatMembersHandlers    []Handler
	myChatMemberHandlers      []Handler
	chatMigrationFromHandlers []Handler
}

func NewDispatcher(logger *logger.Logger, tracker *TaskTracker) *Dispatcher {
	d := &Dispatcher{
		logger:                    logger,
		tracker:                   tracker,
		registry:                  NewRegistry(),
		helpCommand:               newHelpCommandHandler(),
		cancelCommand:             newCancelCommandHandler(tracker),
		middlewares:               make([]MiddlewareFunc, 0),
		channelPostHandlers:       make([]Handler, 0),
		leftChatMemberHandlers:    make([]Handler, 0),
		newChatMembersHandlers:    make([]Handler, 0),
		myChatMemberHandlers:      make([]Handler, 0),
		chatMigrationFromHandlers: make([]Handler, 0),
	}

	d.OnCommandGroup(func(c *Context) string {
		return c.T("telegram.system.commands.groups.basic.name")
	}, []Command{
		{Command: d.helpCommand.Command(), HelpMessage: d.helpCommand.CommandHelp, Handler: NewHandler(d.helpCommand.handle)},
		{Command: d.cancelCommand.Command(), HelpMessage: d.cancelCommand.CommandHelp, Handler: NewHandler(d.cancelCommand.handle)},
	})

	return d
}

// Registry exposes the command registry, registration order included.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

func (d *Dispatcher) Use(middleware MiddlewareFunc) {
	d.middlewares = append(d.middlewares, middleware)
}

// OnCommand registers one command. Registering the same name twice panics:
// matching is first registered wins, so the second registration could never
// run and is always a programming error.
func (d *Dispatcher) OnCommand(cmd string, commandHelp func(c *Context) string, h Handler) {
	command := Command{
		Command:     cmd,
		HelpMessage: commandHelp,
		Handler:     h,
	}

	d.registry.MustRegister(command)
	d.helpCommand.defaultGroup.commands = append(d.helpCommand.defaultGroup.commands, command)
}

func (d *Dispatcher) OnCommandGroup(groupName func(*Context) string, group []Command) {
	for _, c := range group {
		d.registry.MustRegister(c)
	}

	d.helpCommand.commandGroups = append(d.helpCommand.commandGroups, commandGroup{name: groupName, commands: group})
}

func (d *Dispatcher) dispatchMessage(c *Context) {
	message := c.Update.Message

	identityStrings := make([]string, 0)
	identityStrings = append(identityStrings, FullNameFromFirstAndLastName(message.From.FirstName, message.From.LastName))

	if message.From.UserName != "" {
		identityStrings = append(identityStrings, "@"+message.From.UserName)
	}
	if message.Chat.Type == "private" {
		d.logger.Debug(fmt.Sprintf("[message|%s] %s (%s): %s",
			MapChatTypeToText(ChatType(message.Chat.Type)),
			strings.Join(identityStrings, " "),
			color.FgYellow.Render(message.From.ID),
			lo.Ternary(message.Text == "", "<empty or contains medias>", message.Text)),
		)
	} else {
		d.logger.Debug(fmt.Sprintf("[message|%s] [%s (%s)] %s (%s): %s",
			MapChatTypeToText(ChatType(message.Chat.Type)),
			color.FgGreen.Render(message.Chat.Title),
			color.FgYellow.Render(message.Chat.ID),
			strings.Join(identityStrings, " "),
			color.FgYellow.Render(message.From.ID),
			lo.Ternary(message.Text == "", "<empty or contains medias>", message.Text)),
		)
	}

	cmd, args, ok := d.registry.Match(message.Text, c.Bot.Self.UserName)
	if !ok {
		// Plain chatter and unknown commands are ignored on purpose.
		return
	}

	taskID := TaskID(c.Update.UpdateID, time.Now())

	err := d.tracker.Spawn(taskID, cmd.Command, message.Chat.ID, func(ctx context.Context) {
		c.WithCommand(ctx, cmd.Command, args)

		response, err := cmd.Handler.Handle(c)
		if err != nil {
			d.logger.Error("command handler failed",
				zap.String("command", cmd.Command),
				zap.String("task_id", taskID),
				zap.Error(err),
			)
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("command", cmd.Command)
				sentry.CaptureException(err)
			})
			c.Bot.MaySend(c.NewMessageReplyTo(c.T("telegram.system.commands.failed"), message.MessageID).Chattable())

			return
		}
		if response != nil {
			c.Bot.MaySend(response.Chattable())
		}
	})
	if err != nil {
		d.logger.Error("failed to spawn task for command",
			zap.String("command", cmd.Command),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) OnChannelPost(handler Handler) {
	d.channelPostHandlers = append(d.channelPostHandlers, handler)
}

func (d *Dispatcher) dispatchChannelPost(c *Context) {
	d.logger.Debug(fmt.Sprintf("[channel post|%s] [%s (%s)]: %s",
		MapChatTypeToText(ChatType(c.Update.ChannelPost.Chat.Type)),
		color.FgGreen.Render(c.Update.ChannelPost.Chat.Title),
		color.FgYellow.Render(c.Update.ChannelPost.Chat.ID),
		lo.Ternary(c.Update.ChannelPost.Text == "", "<empty or contains medias>", c.Update.ChannelPost.Text),
	))

	d.dispatchInGoroutine(func() {
		for _, h := range d.channelPostHandlers {
			_, _ = h.Handle(c)
		}
	})
}

func (d *Dispatcher) OnMyChatMember(handler Handler) {
	d.myChatMemberHandlers = append(d.myChatMemberHandlers, handler)
}

func (d *Dispatcher) dispatchMyChatMember(c *Context) {
	identityStrings := make([]string, 0)
	identityStrings = append(identityStrings, FullNameFromFirstAndLastName(c.Update.MyChatMember.From.FirstName, c.Update.MyChatMember.From.LastName))

	if c.Update.MyChatMember.From.UserName != "" {
		identityStrings = append(identityStrings, "@"+c.Update.MyChatMember.From.UserName)
	}

	oldMemberStatus := MemberStatus(c.Update.MyChatMember.OldChatMember.Status)
	newMemberStatus := MemberStatus(c.Update.MyChatMember.NewChatMember.Status)

	d.logger.Debug(fmt.Sprintf("[my chat member|%s] [%s (%s)] %s (%s): member status changed from %s to %s",
		MapChatTypeToText(ChatType(c.Update.MyChatMember.Chat.Type)),
		color.FgGreen.Render(c.Update.MyChatMember.Chat.Title),
		color.FgYellow.Render(c.Update.MyChatMember.Chat.ID),
		strings.Join(identityStrings, " "),
		color.FgYellow.Render(c.Update.MyChatMember.From.ID),
		MapMemberStatusToText(oldMemberStatus),
		MapMemberStatusToText(newMemberStatus),
	))

	d.dispatchInGoroutine(func() {
		for _, h := range d.myChatMemberHandlers {
			_, _ = h.Handle(c)
		}
	})
}

func (d *Dispatcher) OnLeftChatMember(h Handler) {
	d.leftChatMemberHandlers = append(d.leftChatMemberHandlers, h)
}

func (d *Dispatcher) dispatchLeftChatMember(c *Context) {
	identityStrings := make([]string, 0)
	identityStrings = append(identityStrings, FullNameFromFirstAndLastName(c.Update.Message.LeftChatMember.FirstName, c.Update.Message.LeftChatMember.LastName))

	if c.Update.Message.LeftChatMember.UserName != "" {
		identityStrings = append(identityStrings, "@"+c.Update.Message.LeftChatMember.UserName)
	}

	d.logger.Debug(fmt.Sprintf("[chat member|%s] [%s (%s)] %s (%s) left the chat",
		MapChatTypeToText(ChatType(c.Update.Message.Chat.Type)),
		color.FgGreen.Render(c.Update.Message.Chat.Title),
		color.FgYellow.Render(c.Update.Message.Chat.ID),
		strings.Join(identityStrings, " "),
		color.FgYellow.Render(c.Update.Message.LeftChatMember.ID),
	))

	d.dispatchInGoroutine(func() {
		for _, h := range d.leftChatMemberHandlers {
			_, _ = h.Handle(c)
		}
	})
}

func (d *Dispatcher) OnNewChatMember(h Handler) {
	d.newChatMembersHandlers = append(d.newChatMembersHandlers, h)
}

func (d *Dispatcher) dispatchNewChatMember(c *Context) {
	identities := make([]string, 0, len(c.Update.Message.NewChatMembers))

	for _, identity := range c.Update.Message.NewChatMembers {
		identityStrings := make([]string, 0)
		identityStrings = append(identityStrings, FullNameFromFirstAndLastName(identity.FirstName, identity.LastName))

		if identity.UserName != "" {
			identityStrings = append(identityStrings, "@"+identity.UserName)
		}

		identityStrings = append(identityStrings, fmt.Sprintf("(%s)", color.FgYellow.Render(identity.ID)))
		identities = append(identities, strings.Join(identityStrings, " "))
	}

	d.logger.Debug(fmt.Sprintf("[chat member|%s] [%s (%s)] %s joined the chat",
		MapChatTypeToText(ChatType(c.Update.Message.Chat.Type)),
		color.FgGreen.Render(c.Update.Message.Chat.Title),
		color.FgYellow.Render(c.Update.Message.Chat.ID),
		strings.Join(identities, ", "),
	))

	d.dispatchInGoroutine(func() {
		for _, h := range d.newChatMembersHandlers {
			_, _ = h.Handle(c)
		}
	})
}

func (d *Dispatcher) OnChatMigrationFrom(h Handler) {
	d.chatMigrationFromHandlers = append(d.chatMigrationFromHandlers, h)
}

func (d *Dispatcher) dispatchChatMigrationFrom(c *Context) {
	d.logger.Debug(fmt.Sprintf("[chat migration] supergroup [%s (%s)] migrated from group [%s (%s)]",
		color.FgGreen.Render(c.Update.Message.Chat.Title),
		color.FgYellow.Render(c.Update.Message.Chat.ID),
		color.FgGreen.Render(c.Update.Message.Chat.Title),
		color.FgYellow.Render(c.Update.Message.MigrateFromChatID),
	))

	d.dispatchInGoroutine(func() {
		for _, h := range d.chatMigrationFromHandlers {
			_, _ = h.Handle(c)
		}
	})
}

func (d *Dispatcher) dispatchChatMigrationTo(c *Context) {
	d.logger.Debug(fmt.Sprintf("[chat migration] group [%s (%s)] migrated to supergroup [%s (%s)]",
		color.FgGreen.Render(c.Update.Message.Chat.Title),
		color.FgYellow.Render(c.Update.Message.Chat.ID),
		color.FgGreen.Render(c.Update.Message.Chat.Title),
		color.FgYellow.Render(c.Update.Message.MigrateToChatID),
	))
}

func (d *Dispatcher) Dispatch(botAPI *BotAPI, i18n *i18n.I18n, update tgbotapi.Update) {
	for _, m := range d.middlewares {
		m(NewContext(botAPI, update, d.logger, i18n), func() {})
	}

	ctx := NewContext(botAPI, update, d.logger, i18n)
	switch ctx.UpdateType() {
	case UpdateTypeMessage:
		d.dispatchMessage(ctx)
	case UpdateTypeEditedMessage:
		d.logger.Debug("edited message is not supported yet")
	case UpdateTypeChannelPost:
		d.dispatchChannelPost(ctx)
	case UpdateTypeEditedChannelPost:
		d.logger.Debug("edited channel post is not supported yet")
	case UpdateTypeMyChatMember:
		d.dispatchMyChatMember(ctx)
	case UpdateTypeChatMember:
		d.logger.Debug("chat member is not supported yet")
	case UpdateTypeLeftChatMember:
		d.dispatchLeftChatMember(ctx)
	case UpdateTypeNewChatMembers:
		d.dispatchNewChatMember(ctx)
	case UpdateTypeChatJoinRequest:
		d.logger.Debug("chat join request is not supported yet")
	case UpdateTypeChatMigrationFrom:
		d.dispatchChatMigrationFrom(ctx)
	case UpdateTypeChatMigrationTo:
		d.dispatchChatMigrationTo(ctx)
	case UpdateTypeUnknown:
		d.logger.Debug("unable to dispatch update due to unknown update type")
	default:
		d.logger.Debug("unable to dispatch update due to unknown update type", zap.String("update_type", string(ctx.UpdateType())))
	}
}

func (d *Dispatcher) dispatchInGoroutine(f func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				d.logger.Error("panic recovered from dispatcher",
					zap.Error(fmt.Errorf("panic error: %v", err)),
					zap.Stack("stack"),
				)
			}
		}()

		f()
	}()
}
