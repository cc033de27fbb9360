// Package config loads the read-only configuration snapshot the bot is
// constructed with. Values come from environment variables, optionally seeded
// from config/.env, with a YAML credentials file as fallback for API keys.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is built once at startup and passed by reference into the bot
// wiring. Nothing mutates it afterwards.
type Config struct {
	TelegramBotToken    string
	TelegramAPIEndpoint string
	WebhookURL          string
	WebhookPort         string

	Environment string

	OpenAIAPIKey   string
	DeepSeekAPIKey string
	GitHubAPIKey   string
	GrokAPIKey     string

	RedisAddress string
	SentryDSN    string
}

type credentialsFile struct {
	OpenAI   credentialsEntry `yaml:"openai"`
	DeepSeek credentialsEntry `yaml:"deepseek"`
	GitHub   credentialsEntry `yaml:"github"`
	Grok     credentialsEntry `yaml:"grok"`
}

type credentialsEntry struct {
	APIKey string `yaml:"api_key"`
}

// Load builds the snapshot. configDir is where .env and credentials.yaml
// live; an absent file is not an error, environment variables alone are a
// valid configuration.
func Load(configDir string) (*Config, error) {
	if configDir != "" {
		// Ignore a missing .env, godotenv errors on it but env vars may
		// already be set by the deployment.
		_ = godotenv.Load(filepath.Join(configDir, ".env"))
	}

	cfg := &Config{
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAPIEndpoint: os.Getenv("TELEGRAM_API_ENDPOINT"),
		WebhookURL:          os.Getenv("TELEGRAM_WEBHOOK_URL"),
		WebhookPort:         getEnvOr("TELEGRAM_WEBHOOK_PORT", "8443"),
		Environment:         getEnvOr("ENVIRONMENT", "test"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		DeepSeekAPIKey:      os.Getenv("DEEPSEEK_API_KEY"),
		GitHubAPIKey:        os.Getenv("GITHUB_API_KEY"),
		GrokAPIKey:          os.Getenv("GROK_API_KEY"),
		RedisAddress:        os.Getenv("REDIS_ADDRESS"),
		SentryDSN:           os.Getenv("SENTRY_DSN"),
	}

	if configDir != "" {
		if err := cfg.loadCredentialsFallback(filepath.Join(configDir, "credentials.yaml")); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadCredentialsFallback fills API keys that the environment left empty from
// the credentials file. Environment variables always win.
func (c *Config) loadCredentialsFallback(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	var creds credentialsFile
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return err
	}

	if c.OpenAIAPIKey == "" {
		c.OpenAIAPIKey = creds.OpenAI.APIKey
	}
	if c.DeepSeekAPIKey == "" {
		c.DeepSeekAPIKey = creds.DeepSeek.APIKey
	}
	if c.GitHubAPIKey == "" {
		c.GitHubAPIKey = creds.GitHub.APIKey
	}
	if c.GrokAPIKey == "" {
		c.GrokAPIKey = creds.Grok.APIKey
	}

	return nil
}

// IsTestEnvironment reports whether the bot runs in the test environment, in
// which LLM commands short-circuit through the stub provider.
func (c *Config) IsTestEnvironment() bool {
	return strings.EqualFold(c.Environment, "test")
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
