package keyboard

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sitebrief/requirements-backend/internal/entity"
)

// Builder creates inline keyboards
type Builder struct{}

// NewBuilder creates a keyboard builder
func NewBuilder() *Builder {
	return &Builder{}
}

// StartKeyboard creates the initial start button
func (b *Builder) StartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚀 Describe your website", EncodeCallback(ActionStart, "start")),
		),
	)
}

// QuestionKeyboard builds the keyboard for one follow-up question. Choice
// questions get a button per option; multi-choice ones also get a Done
// button to submit the toggled set. Every question can be skipped.
func (b *Builder) QuestionKeyboard(q *entity.FollowUpQuestion, selections map[string]bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}

	for _, opt := range q.Options {
		label := opt.Text
		if q.InputMode == entity.InputModeMultiChoice && selections[opt.ID] {
			label = "✅ " + label
		}
		if q.InputMode == entity.InputModeSingleChoice && opt.IsDefault {
			label = label + " (recommended)"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, EncodeCallback(ActionOption, q.ID+":"+opt.ID)),
		))
	}

	if q.InputMode == entity.InputModeMultiChoice {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✔️ Done", EncodeCallback(ActionDone, q.ID)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", EncodeCallback(ActionSkip, q.ID)),
	))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// GenerateKeyboard offers document generation once all questions are done
func (b *Builder) GenerateKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Generate requirements", EncodeCallback(ActionGenerate, "now")),
		),
	)
}

// DownloadKeyboard creates document download buttons
func (b *Builder) DownloadKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 Download .md", EncodeCallback(ActionDownload, "markdown")),
			tgbotapi.NewInlineKeyboardButtonData("📕 Download .pdf", EncodeCallback(ActionDownload, "pdf")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗂 Download .json", EncodeCallback(ActionDownload, "json")),
			tgbotapi.NewInlineKeyboardButtonData("📘 Download .docx", EncodeCallback(ActionDownload, "docx")),
		),
	)
}

// CancelConfirmKeyboard asks the user to confirm dropping their progress
func (b *Builder) CancelConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, cancel", EncodeCallback(ActionConfirm, "cancel")),
			tgbotapi.NewInlineKeyboardButtonData("❌ No, continue", EncodeCallback(ActionConfirm, "continue")),
		),
	)
}
