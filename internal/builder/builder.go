package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sitebrief/requirements-backend/internal/api"
	elicitationapi "github.com/sitebrief/requirements-backend/internal/api/elicitation"
	"github.com/sitebrief/requirements-backend/internal/config"
	"github.com/sitebrief/requirements-backend/internal/integration/openai"
	"github.com/sitebrief/requirements-backend/internal/pkg/validator"
	"github.com/sitebrief/requirements-backend/internal/telegram"
	"github.com/sitebrief/requirements-backend/internal/usecase/elicitation"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateServer(); err != nil {
		return nil, err
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	elicitationUC := buildUsecase(cfg, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	elicitationHandler := elicitationapi.NewHandler(elicitationUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(elicitationHandler, cfg.WebDir, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateTelegram(); err != nil {
		return nil, nil, err
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
	)

	elicitationUC := buildUsecase(cfg, logger)
	logger.Info("Use cases initialized")

	bot, err := telegram.NewBot(&cfg.TelegramCfg, elicitationUC, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, logger, nil
}

// BuildConsoleUsecase wires the stages for the interactive console entrypoint.
func BuildConsoleUsecase() (*elicitation.Usecase, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	return buildUsecase(cfg, logger), logger, nil
}

func buildUsecase(cfg *config.Config, logger *zap.Logger) *elicitation.Usecase {
	var completionClient elicitation.CompletionClient
	if cfg.EnableMocks {
		logger.Info("Using mock connector for the completion backend")
		completionClient = openai.NewMockConnector(logger)
	} else {
		logger.Info("Using real connector for the completion backend")
		completionClient = openai.NewConnector(cfg.OpenAICfg, logger)
	}

	return elicitation.NewUsecase(completionClient, validator.New(), logger)
}
