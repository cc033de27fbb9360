// Package commands holds the bot's slash command handlers and their wiring
// into the dispatcher.
package commands

import (
	"context"

	"github.com/nekomeowww/xo/logger"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/config"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/llm"
)

// NewsFetcher is the unwire.hk surface the /unwire handler needs. The
// concrete implementation is pkg/unwire.Fetcher.
type NewsFetcher interface {
	News(ctx context.Context, date string) (string, error)
	Recent(ctx context.Context, days int) (string, error)
	Article(ctx context.Context, url string) (string, error)
}

type Commands struct {
	logger *logger.Logger
	config *config.Config
	llm    *llm.Client
	news   NewsFetcher
}

type NewCommandsParams struct {
	Logger *logger.Logger
	Config *config.Config
	LLM    *llm.Client
	News   NewsFetcher
}

func NewCommands(params NewCommandsParams) *Commands {
	return &Commands{
		logger: params.Logger,
		config: params.Config,
		llm:    params.LLM,
		news:   params.News,
	}
}

// Register wires every command into the dispatcher. Registration order is
// dispatch order; a name registered twice panics at startup.
func (h *Commands) Register(dispatcher *dogbot.Dispatcher) {
	dispatcher.OnCommandGroup(func(c *dogbot.Context) string {
		return "Diagnostics"
	}, []dogbot.Command{
		{Command: "ping", HelpMessage: helpText("Measure the bot's reply latency"), Handler: dogbot.NewHandler(h.ping)},
		{Command: "test", HelpMessage: helpText("Check that the bot is running"), Handler: dogbot.NewHandler(h.test)},
		{Command: "env", HelpMessage: helpText("Show the runtime environment"), Handler: dogbot.NewHandler(h.env)},
		{Command: ".env", HelpMessage: helpText("Alias of /env"), Handler: dogbot.NewHandler(h.env)},
		{Command: "hi_dog", HelpMessage: helpText("Say hi to a random dog"), Handler: dogbot.NewHandler(h.hiDog)},
	})

	dispatcher.OnCommandGroup(func(c *dogbot.Context) string {
		return "AI"
	}, []dogbot.Command{
		{Command: "gpt", HelpMessage: helpText("Ask OpenAI GPT"), Handler: dogbot.NewHandler(h.llmCommand("openai", "", "Usage: /gpt <prompt>"))},
		{Command: "deepseek", HelpMessage: helpText("Ask DeepSeek"), Handler: dogbot.NewHandler(h.llmCommand("deepseek", "", "Usage: /deepseek <prompt>"))},
		{Command: "r1", HelpMessage: helpText("Ask DeepSeek R1 (reasoner)"), Handler: dogbot.NewHandler(h.llmCommand("deepseek", "deepseek-reasoner", "Usage: /r1 <prompt>"))},
		{Command: "grok", HelpMessage: helpText("Ask Grok"), Handler: dogbot.NewHandler(h.llmCommand("grok", "", "Usage: /grok <prompt>"))},
		{Command: "grok_think", HelpMessage: helpText("Ask Grok with a visible thinking animation"), Handler: dogbot.NewHandler(h.grokThink)},
	})

	dispatcher.OnCommand("unwire", helpText("unwire.hk news digest: /unwire [YYYY-MM-DD | recent | N | URL]"), dogbot.NewHandler(h.unwire))
}

func helpText(text string) func(*dogbot.Context) string {
	return func(*dogbot.Context) string {
		return text
	}
}
