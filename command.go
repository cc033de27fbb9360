package dogbot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateCommand is returned when a command name is registered twice.
// Registration order is the dispatch order, so a silent overwrite would make
// one of the two handlers unreachable.
var ErrDuplicateCommand = errors.New("command already registered")

type Command struct {
	Command     string
	HelpMessage func(*Context) string
	Handler     Handler
}

type commandGroup struct {
	name     func(*Context) string
	commands []Command
}

// Registry keeps commands in registration order. Matching walks that order
// and the first command whose name matches the message wins.
type Registry struct {
	commands []Command
	names    map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make([]Command, 0),
		names:    make(map[string]struct{}),
	}
}

func (r *Registry) Register(cmd Command) error {
	if cmd.Command == "" {
		return errors.New("command name must not be empty")
	}
	if _, ok := r.names[cmd.Command]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Command)
	}

	r.names[cmd.Command] = struct{}{}
	r.commands = append(r.commands, cmd)

	return nil
}

func (r *Registry) MustRegister(cmd Command) {
	err := r.Register(cmd)
	if err != nil {
		panic(err)
	}
}

func (r *Registry) Commands() []Command {
	return r.commands
}

func (r *Registry) Len() int {
	return len(r.commands)
}

// Match resolves a message text to a registered command and the argument
// string that follows it. Matching is done on the raw text rather than the
// parsed bot command entity: names like ".env" never produce a command
// entity but are still dispatchable.
func (r *Registry) Match(text string, botUserName string) (Command, string, bool) {
	if !strings.HasPrefix(text, "/") {
		return Command{}, "", false
	}

	token, args, _ := strings.Cut(text[1:], " ")
	if mention := strings.LastIndex(token, "@"); mention >= 0 {
		if botUserName != "" && !strings.EqualFold(token[mention+1:], botUserName) {
			return Command{}, "", false
		}

		token = token[:mention]
	}

	for _, cmd := range r.commands {
		if cmd.Command == token {
			return cmd, strings.TrimSpace(args), true
		}
	}

	return Command{}, "", false
}
