package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sitebrief/requirements-backend/internal/config"
	"github.com/sitebrief/requirements-backend/internal/telegram/bot"
	"github.com/sitebrief/requirements-backend/internal/telegram/handlers"
	"github.com/sitebrief/requirements-backend/internal/telegram/keyboard"
	"github.com/sitebrief/requirements-backend/internal/telegram/state"
	"github.com/sitebrief/requirements-backend/internal/usecase/elicitation"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot initializes the telegram bot with all dependencies
func NewBot(
	cfg *config.TelegramConfig,
	usecase *elicitation.Usecase,
	logger *zap.Logger,
) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	api.Debug = false

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	states := state.NewManager(state.NewCacheStorage(cfg.StateTTL))
	sender := handlers.NewMessageSender(api, &cfg.SendRetry, logger)

	b := bot.New(cfg, states, sender, api, logger)

	registerHandlers(b, api, states, sender, usecase, logger)

	logger.Info("telegram bot initialized successfully")

	return b, nil
}

// registerHandlers registers all handlers with the bot
func registerHandlers(
	b *bot.Bot,
	api *tgbotapi.BotAPI,
	states *state.Manager,
	sender *handlers.MessageSender,
	usecase *elicitation.Usecase,
	logger *zap.Logger,
) {
	flow := handlers.NewFlow(api, states, sender, keyboard.NewBuilder(), logger)

	// Callback handler (handles all button clicks)
	// The bot always asks choice questions: buttons suit chat better than
	// long typed answers.
	b.RegisterHandler(handlers.NewCallbackHandler(flow, usecase, true))

	// Description handler (AWAITING_DESCRIPTION phase)
	b.RegisterHandler(handlers.NewDescriptionHandler(flow))

	// Answers handler (ANSWERING_QUESTIONS phase)
	b.RegisterHandler(handlers.NewAnswersHandler(flow))

	logger.Info("telegram handlers registered",
		zap.Int("handler_count", 3),
	)
}
