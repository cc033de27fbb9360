package main

import (
	"context"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nekomeowww/xo/logger"

	dogbot "github.com/TonnyWong1052/Message-Bot-dogv"
	"github.com/TonnyWong1052/Message-Bot-dogv/internal/commands"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/config"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/llm"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/unwire"
)

func main() {
	cfg, err := config.Load("config")
	if err != nil {
		panic(err)
	}

	logLevel := zapcore.InfoLevel
	if cfg.IsTestEnvironment() {
		logLevel = zapcore.DebugLevel
	}

	log, err := logger.NewLogger(logger.WithLevel(logLevel), logger.WithAppName("dogbot"), logger.WithNamespace("message-bot-dogv"))
	if err != nil {
		panic(err)
	}

	if cfg.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		})
		if err != nil {
			log.Error("failed to initialize sentry, continuing without it", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	tracker := dogbot.NewTaskTracker(log)
	dispatcher := dogbot.NewDispatcher(log, tracker)

	llmClient := llm.NewClient()
	registerProviders(log, cfg, llmClient)

	cmds := commands.NewCommands(commands.NewCommandsParams{
		Logger: log,
		Config: cfg,
		LLM:    llmClient,
		News:   unwire.NewFetcher(),
	})
	cmds.Register(dispatcher)

	botOptions := []dogbot.CallOption{
		dogbot.WithToken(cfg.TelegramBotToken),
		dogbot.WithAPIEndpoint(cfg.TelegramAPIEndpoint),
		dogbot.WithLogger(log),
		dogbot.WithDispatcher(dispatcher),
		dogbot.WithTaskTracker(tracker),
	}
	if cfg.WebhookURL != "" {
		botOptions = append(botOptions,
			dogbot.WithWebhookURL(cfg.WebhookURL),
			dogbot.WithWebhookPort(cfg.WebhookPort),
		)
	}
	if cfg.RedisAddress != "" {
		redisClient, err := rueidis.NewClient(rueidis.ClientOption{
			InitAddress: []string{cfg.RedisAddress},
		})
		if err != nil {
			log.Error("failed to connect to redis, falling back to in-memory storage", zap.Error(err))
		} else {
			defer redisClient.Close()
			botOptions = append(botOptions, dogbot.WithRueidis(redisClient))
		}
	}

	bot, err := dogbot.NewBot(botOptions...)
	if err != nil {
		log.Fatal("failed to create bot", zap.Error(err))
	}

	log.Info("bot is up",
		zap.String("username", bot.Self.UserName),
		zap.String("environment", cfg.Environment),
	)

	err = bot.Bootstrap(context.Background())
	if err != nil {
		log.Error("bot stopped with error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("bot stopped")
}

// registerProviders wires one LLM provider per configured API key. In the
// test environment every provider is the stub, so commands answer without
// touching any real endpoint.
func registerProviders(log *logger.Logger, cfg *config.Config, client *llm.Client) {
	if cfg.IsTestEnvironment() {
		stub := llm.NewStub()

		for _, name := range []string{"openai", "deepseek", "grok", "github"} {
			if err := client.RegisterProvider(name, stub); err != nil {
				log.Fatal("failed to register stub provider", zap.String("provider", name), zap.Error(err))
			}
		}

		log.Info("test environment, all llm providers are stubbed")

		return
	}

	providers := map[string]llm.Provider{}
	if cfg.OpenAIAPIKey != "" {
		providers["openai"] = llm.NewOpenAI(cfg.OpenAIAPIKey)
	} else if cfg.GitHubAPIKey != "" {
		// GitHub Models serves the same models when no OpenAI key is
		// configured.
		providers["openai"] = llm.NewGitHubModels(cfg.GitHubAPIKey)
	}
	if cfg.DeepSeekAPIKey != "" {
		providers["deepseek"] = llm.NewDeepSeek(cfg.DeepSeekAPIKey)
	}
	if cfg.GrokAPIKey != "" {
		providers["grok"] = llm.NewGrok(cfg.GrokAPIKey)
	}
	if cfg.GitHubAPIKey != "" {
		providers["github"] = llm.NewGitHubModels(cfg.GitHubAPIKey)
	}

	for name, provider := range providers {
		if err := client.RegisterProvider(name, provider); err != nil {
			log.Fatal("failed to register llm provider", zap.String("provider", name), zap.Error(err))
		}
	}

	log.Info("registered llm providers", zap.Strings("providers", client.Providers()))
}
