package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "42:token")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "42:token", cfg.TelegramBotToken)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "sk-env", cfg.OpenAIAPIKey)
	assert.Equal(t, "8443", cfg.WebhookPort)
	assert.False(t, cfg.IsTestEnvironment())
}

func TestLoadDefaultsToTestEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.True(t, cfg.IsTestEnvironment())
}

func TestCredentialsFallback(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "credentials.yaml"), []byte(`
openai:
  api_key: sk-file
deepseek:
  api_key: ds-file
`), 0o600)
	require.NoError(t, err)

	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("DEEPSEEK_API_KEY", "")

	cfg, err := Load(dir)
	require.NoError(t, err)

	// Environment wins, the file only fills gaps.
	assert.Equal(t, "sk-env", cfg.OpenAIAPIKey)
	assert.Equal(t, "ds-file", cfg.DeepSeekAPIKey)
}

func TestCredentialsFileMissingIsFine(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestCredentialsFileMalformed(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "credentials.yaml"), []byte("{not yaml"), 0o600)
	require.NoError(t, err)

	_, err = Load(dir)
	require.Error(t, err)
}

func TestIsTestEnvironmentCaseInsensitive(t *testing.T) {
	assert.True(t, (&Config{Environment: "TEST"}).IsTestEnvironment())
	assert.True(t, (&Config{Environment: "Test"}).IsTestEnvironment())
	assert.False(t, (&Config{Environment: "production"}).IsTestEnvironment())
}
