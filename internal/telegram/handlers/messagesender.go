package handlers

import (
	"fmt"

	"github.com/avast/retry-go/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	pkgretry "github.com/sitebrief/requirements-backend/internal/pkg/retry"
	"go.uber.org/zap"
)

// MessageSender provides centralized message sending with retries. Telegram
// delivery is the one outbound path that does retry; the completion backend
// is never wrapped this way.
type MessageSender struct {
	bot       *tgbotapi.BotAPI
	retryOpts []retry.Option
	logger    *zap.Logger
}

// NewMessageSender creates a new MessageSender
func NewMessageSender(bot *tgbotapi.BotAPI, retryCfg *pkgretry.RetryConfig, logger *zap.Logger) *MessageSender {
	return &MessageSender{
		bot:       bot,
		retryOpts: retryCfg.ToRetryOptions(),
		logger:    logger,
	}
}

// Send sends a message to the specified chat
func (s *MessageSender) Send(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	err := retry.Do(func() error {
		_, sendErr := s.bot.Send(msg)
		return sendErr
	}, s.retryOpts...)
	if err != nil {
		s.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendDocument sends a file attachment
func (s *MessageSender) SendDocument(chatID int64, filename string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	})

	err := retry.Do(func() error {
		_, sendErr := s.bot.Send(doc)
		return sendErr
	}, s.retryOpts...)
	if err != nil {
		s.logger.Error("failed to send document",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("filename", filename),
		)
		return fmt.Errorf("send document: %w", err)
	}

	return nil
}

// EditMarkup replaces the inline keyboard of an existing message. Used to
// refresh multi-choice toggles in place.
func (s *MessageSender) EditMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup)
	if _, err := s.bot.Send(edit); err != nil {
		s.logger.Warn("failed to edit message markup",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
		)
		return fmt.Errorf("edit markup: %w", err)
	}

	return nil
}
