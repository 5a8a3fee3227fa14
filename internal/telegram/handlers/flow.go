package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/pkg/formatter"
	"github.com/sitebrief/requirements-backend/internal/telegram/keyboard"
	"github.com/sitebrief/requirements-backend/internal/telegram/render"
	"github.com/sitebrief/requirements-backend/internal/telegram/state"
	"go.uber.org/zap"
)

// Flow carries the shared dependencies and dialog transitions used by every
// handler. Handlers embed it instead of wiring each dependency separately.
type Flow struct {
	api       *tgbotapi.BotAPI
	states    *state.Manager
	sender    *MessageSender
	keyboard  *keyboard.Builder
	formatter *formatter.Factory
	logger    *zap.Logger
}

func NewFlow(
	api *tgbotapi.BotAPI,
	states *state.Manager,
	sender *MessageSender,
	kb *keyboard.Builder,
	logger *zap.Logger,
) *Flow {
	return &Flow{
		api:       api,
		states:    states,
		sender:    sender,
		keyboard:  kb,
		formatter: formatter.NewFactory(),
		logger:    logger,
	}
}

// askCurrentQuestion sends the question at the session's current index
func (f *Flow) askCurrentQuestion(session *state.ChatSession) error {
	questions := session.Workflow.Questions()
	if session.QuestionIndex >= len(questions) {
		return f.offerGeneration(session)
	}

	q := &questions[session.QuestionIndex]
	text := render.Question(q, session.QuestionIndex+1, len(questions))

	var markup interface{}
	if len(q.Options) > 0 {
		markup = f.keyboard.QuestionKeyboard(q, session.Selections)
	}

	return f.sender.Send(session.ChatID, text, markup)
}

// advanceQuestion moves to the next question or to the generation offer
func (f *Flow) advanceQuestion(session *state.ChatSession) error {
	session.QuestionIndex++
	f.states.ResetSelections(session)

	if session.QuestionIndex >= len(session.Workflow.Questions()) {
		return f.offerGeneration(session)
	}

	return f.askCurrentQuestion(session)
}

// offerGeneration closes the answering phase and shows the generate button
func (f *Flow) offerGeneration(session *state.ChatSession) error {
	if session.Workflow.State() == entity.WorkflowStateAwaitingAnswers {
		if err := session.Workflow.FinishAnswers(); err != nil {
			return err
		}
	}
	f.states.Save(session)

	return f.sender.Send(session.ChatID, render.MsgAllAnswered, f.keyboard.GenerateKeyboard())
}

// generateDocument runs the generation stage and presents the result
func (f *Flow) generateDocument(ctx context.Context, session *state.ChatSession) error {
	if err := f.sender.Send(session.ChatID, render.MsgGenerating, nil); err != nil {
		return err
	}

	typing := NewTypingNotifier(f.api, session.ChatID, f.logger)
	typing.Start(ctx)
	defer typing.Stop()

	doc, err := session.Workflow.Generate(ctx)
	if err != nil {
		ctxzap.Error(ctx, "document generation failed", zap.Error(err))
		return f.sender.Send(session.ChatID, userFacingError(err), nil)
	}

	session.Phase = state.PhaseDone
	f.states.Save(session)

	return f.sender.Send(session.ChatID, render.DocumentSummary(doc), f.keyboard.DownloadKeyboard())
}

// sendDocumentFile renders the generated document and sends it as a file
func (f *Flow) sendDocumentFile(session *state.ChatSession, format entity.ResultFormat) error {
	doc := session.Workflow.Document()
	if doc == nil {
		return f.sender.Send(session.ChatID, render.ErrInvalidState, nil)
	}

	fmtr, err := f.formatter.Create(format)
	if err != nil {
		return f.sender.Send(session.ChatID, render.ErrGeneric, nil)
	}

	rendered, err := fmtr.Format(doc)
	if err != nil {
		f.logger.Error("failed to format document",
			zap.Error(err),
			zap.String("format", string(format)),
		)
		return f.sender.Send(session.ChatID, render.ErrGeneric, nil)
	}

	filename := fmt.Sprintf("website_requirements%s", fmtr.FileExtension())
	return f.sender.SendDocument(session.ChatID, filename, rendered)
}
