package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/sitebrief/requirements-backend/internal/pkg/retry"
)

// Config holds the application configuration. Everything is loaded once at
// startup and passed into constructors; missing required fields abort the
// process instead of failing lazily on the first completion call. Fields a
// single entrypoint needs are checked by that entrypoint (ValidateServer,
// ValidateTelegram), not at load time.
type Config struct {
	// Server configuration (validated only when the HTTP server is built)
	ServerAddr string `env:"SERVER_ADDR"`

	// Completion backend configuration (not required when mocks are enabled)
	OpenAICfg OpenAIConfig `envPrefix:"AZURE_OPENAI_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Static page served at GET /
	WebDir string `env:"WEB_DIR" envDefault:"web"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Telegram bot configuration (validated only when the bot is built)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// OpenAIConfig describes the Azure OpenAI chat-completions deployment
type OpenAIConfig struct {
	HTTPClientConfig
	Endpoint       string `env:"ENDPOINT"`
	APIKey         string `env:"API_KEY"`
	DeploymentName string `env:"DEPLOYMENT_NAME"`
	APIVersion     string `env:"API_VERSION" envDefault:"2024-02-15-preview"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken           string               `env:"BOT_TOKEN"`
	UpdateTimeout      int                  `env:"UPDATE_TIMEOUT" envDefault:"30"`
	RateLimitPerMinute int                  `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	RateLimitBurst     int                  `env:"RATE_LIMIT_BURST" envDefault:"5"`
	ShutdownTimeout    int                  `env:"SHUTDOWN_TIMEOUT" envDefault:"30"` // seconds
	StateTTL           time.Duration        `env:"STATE_TTL" envDefault:"2h"`
	SendRetry          pkgRetry.RetryConfig `envPrefix:"SEND_RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"120s"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if !cfg.EnableMocks {
		switch {
		case cfg.OpenAICfg.Endpoint == "":
			return fmt.Errorf("AZURE_OPENAI_ENDPOINT must be set unless ENABLE_MOCKS=true")
		case cfg.OpenAICfg.APIKey == "":
			return fmt.Errorf("AZURE_OPENAI_API_KEY must be set unless ENABLE_MOCKS=true")
		case cfg.OpenAICfg.DeploymentName == "":
			return fmt.Errorf("AZURE_OPENAI_DEPLOYMENT_NAME must be set unless ENABLE_MOCKS=true")
		}
	}

	if cfg.TelegramCfg.RateLimitPerMinute < 1 || cfg.TelegramCfg.RateLimitPerMinute > 60 {
		return fmt.Errorf("TELEGRAM_RATE_LIMIT_PER_MINUTE must be between 1 and 60, got %d", cfg.TelegramCfg.RateLimitPerMinute)
	}

	if cfg.TelegramCfg.RateLimitBurst < 1 || cfg.TelegramCfg.RateLimitBurst > 20 {
		return fmt.Errorf("TELEGRAM_RATE_LIMIT_BURST must be between 1 and 20, got %d", cfg.TelegramCfg.RateLimitBurst)
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		return fmt.Errorf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout)
	}

	return nil
}

// ValidateServer checks the fields only the HTTP server entrypoint needs
func (cfg *Config) ValidateServer() error {
	if cfg.ServerAddr == "" {
		return fmt.Errorf("SERVER_ADDR must be set to run the server")
	}
	return nil
}

// ValidateTelegram checks the fields only the bot entrypoint needs
func (cfg *Config) ValidateTelegram() error {
	if cfg.TelegramCfg.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN must be set to run the bot")
	}
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
