package dogbot

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type helpCommandHandler struct {
	defaultGroup  commandGroup
	commandGroups []commandGroup
}

func newHelpCommandHandler() *helpCommandHandler {
	return &helpCommandHandler{
		commandGroups: make([]commandGroup, 0),
	}
}

func (h *helpCommandHandler) Command() string {
	return "help"
}

func (h *helpCommandHandler) CommandHelp(c *Context) string {
	return c.T("telegram.system.commands.groups.basic.commands.help.help")
}

func (h *helpCommandHandler) handle(c *Context) (Response, error) {
	// Copy before appending the default group, concurrent /help dispatches
	// must not share the backing array.
	groups := append([]commandGroup(nil), h.commandGroups...)
	if len(h.defaultGroup.commands) > 0 {
		groups = append(groups, h.defaultGroup)
	}

	var sb strings.Builder

	for _, group := range groups {
		if group.name != nil {
			if name := group.name(c); name != "" {
				sb.WriteString(name)
				sb.WriteString("\n")
			}
		}

		for _, cmd := range group.commands {
			helpMessage := ""
			if cmd.HelpMessage != nil {
				helpMessage = cmd.HelpMessage(c)
			}

			fmt.Fprintf(&sb, "/%s - %s\n", cmd.Command, helpMessage)
		}

		sb.WriteString("\n")
	}

	return c.NewMessage(c.T("telegram.system.commands.groups.basic.commands.help.message", map[string]any{
		"Commands": strings.TrimSpace(sb.String()),
	})), nil
}

type cancelCommandHandler struct {
	tracker *TaskTracker
}

func newCancelCommandHandler(tracker *TaskTracker) *cancelCommandHandler {
	return &cancelCommandHandler{tracker: tracker}
}

func (h *cancelCommandHandler) Command() string {
	return "cancel"
}

func (h *cancelCommandHandler) CommandHelp(c *Context) string {
	return c.T("telegram.system.commands.groups.basic.commands.cancel.help")
}

func (h *cancelCommandHandler) handle(c *Context) (Response, error) {
	chatID := c.Update.FromChat().ID

	// The cancel command runs as a tracked task itself and must not count
	// or cancel its own execution.
	cancelled := 0

	for _, task := range h.tracker.Tasks() {
		if task.ChatID != chatID || task.Command == h.Command() {
			continue
		}

		task.cancel()
		cancelled++
	}

	if sentFrom := c.Update.SentFrom(); sentFrom != nil {
		err := c.Bot.DeleteAllDeleteLaterMessages(sentFrom.ID)
		if err != nil {
			c.Logger.Error("failed to delete placeholder messages", zap.Error(err))
		}
	}

	if cancelled == 0 {
		return c.NewMessage(c.T("telegram.system.commands.groups.basic.commands.cancel.alreadyCancelledAll")), nil
	}

	return c.NewMessage(c.T("telegram.system.commands.groups.basic.commands.cancel.cancelled", map[string]any{
		"Count": cancelled,
	})), nil
}
