package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com/")
	t.Setenv("AZURE_OPENAI_API_KEY", "test-key")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "gpt-4o")
}

func TestParseConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))
	require.NoError(t, validateConfig(cfg))

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "gpt-4o", cfg.OpenAICfg.DeploymentName)
	assert.Equal(t, "2024-02-15-preview", cfg.OpenAICfg.APIVersion)
	assert.Equal(t, 120*time.Second, cfg.OpenAICfg.RequestTimeout)
	assert.Equal(t, "web", cfg.WebDir)
	assert.False(t, cfg.EnableMocks)
	assert.Equal(t, 2*time.Hour, cfg.TelegramCfg.StateTTL)
}

func TestValidateConfigBackendCredentials(t *testing.T) {
	t.Run("required without mocks", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("AZURE_OPENAI_API_KEY", "")

		cfg := &Config{}
		require.NoError(t, env.Parse(cfg))

		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AZURE_OPENAI_API_KEY")
	})

	t.Run("mock mode needs no credentials", func(t *testing.T) {
		t.Setenv("ENABLE_MOCKS", "true")

		cfg := &Config{}
		require.NoError(t, env.Parse(cfg))
		require.NoError(t, validateConfig(cfg))

		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func TestValidateConfigBounds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_RATE_LIMIT_PER_MINUTE", "0")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_RATE_LIMIT_PER_MINUTE")
}

func TestValidateServer(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.ValidateServer())

	cfg.ServerAddr = ":8080"
	require.NoError(t, cfg.ValidateServer())
}

func TestValidateTelegram(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.ValidateTelegram())

	cfg.TelegramCfg.BotToken = "123:abc"
	require.NoError(t, cfg.ValidateTelegram())
}

func TestGetEnvFile(t *testing.T) {
	assert.Equal(t, ".env.local", getEnvFile("local"))
	assert.Equal(t, ".env.local", getEnvFile("dev"))
	assert.Equal(t, ".env.prod", getEnvFile("production"))
	assert.Equal(t, ".env.staging", getEnvFile("staging"))
}
