package handlers

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/telegram/keyboard"
	"github.com/sitebrief/requirements-backend/internal/telegram/render"
	"github.com/sitebrief/requirements-backend/internal/telegram/state"
	"github.com/sitebrief/requirements-backend/internal/usecase/elicitation"
	"go.uber.org/zap"
)

// CallbackHandler handles all inline button clicks
type CallbackHandler struct {
	*Flow
	usecase    *elicitation.Usecase
	choiceMode bool
}

func NewCallbackHandler(flow *Flow, usecase *elicitation.Usecase, choiceMode bool) *CallbackHandler {
	return &CallbackHandler{
		Flow:       flow,
		usecase:    usecase,
		choiceMode: choiceMode,
	}
}

func (h *CallbackHandler) Phase() string {
	return HandlerPhaseCallback
}

func (h *CallbackHandler) Handle(ctx context.Context, msg *Message) error {
	data, err := keyboard.ParseCallback(msg.CallbackData)
	if err != nil {
		ctxzap.Warn(ctx, "invalid callback data",
			zap.Error(err),
			zap.String("data", msg.CallbackData),
		)
		return h.sender.Send(msg.ChatID, render.ErrGeneric, nil)
	}

	switch data.Action {
	case keyboard.ActionStart:
		return h.handleStart(msg)
	case keyboard.ActionOption:
		return h.handleOption(ctx, msg, data.Value)
	case keyboard.ActionDone:
		return h.handleDone(ctx, msg, data.Value)
	case keyboard.ActionSkip:
		return h.handleSkip(msg, data.Value)
	case keyboard.ActionGenerate:
		return h.handleGenerate(ctx, msg)
	case keyboard.ActionDownload:
		return h.handleDownload(msg, data.Value)
	case keyboard.ActionConfirm:
		return h.handleConfirm(msg, data.Value)
	default:
		ctxzap.Warn(ctx, "unknown callback action", zap.String("action", data.Action))
		return h.sender.Send(msg.ChatID, render.ErrGeneric, nil)
	}
}

func (h *CallbackHandler) handleStart(msg *Message) error {
	session := h.states.New(msg.UserID, msg.ChatID)
	session.Workflow = elicitation.NewWorkflow(h.usecase, h.choiceMode)
	session.Phase = state.PhaseAwaitingDescription
	h.states.Save(session)

	return h.sender.Send(msg.ChatID, render.MsgAskDescription, nil)
}

// handleOption processes a click on one option button. Single-choice answers
// are recorded immediately; multi-choice clicks toggle the selection and
// refresh the keyboard in place.
func (h *CallbackHandler) handleOption(ctx context.Context, msg *Message, value string) error {
	session, ok := h.states.Get(msg.UserID)
	if !ok {
		return h.sender.Send(msg.ChatID, render.MsgNoSession, nil)
	}

	questionID, optionID := keyboard.SplitValue(value)
	q := h.currentQuestion(session)
	if q == nil || q.ID != questionID {
		// Click on a stale keyboard from an earlier question
		return h.askCurrentQuestion(session)
	}

	if q.InputMode == entity.InputModeMultiChoice {
		session.Selections[optionID] = !session.Selections[optionID]
		h.states.Save(session)
		return h.sender.EditMarkup(msg.ChatID, msg.MessageID, h.keyboard.QuestionKeyboard(q, session.Selections))
	}

	if err := session.Workflow.RecordSelections(questionID, []string{optionID}); err != nil {
		ctxzap.Error(ctx, "failed to record selection",
			zap.Error(err),
			zap.String("question_id", questionID),
		)
		return h.sender.Send(msg.ChatID, userFacingError(err), nil)
	}

	return h.advanceQuestion(session)
}

// handleDone submits the toggled multi-choice set for the current question
func (h *CallbackHandler) handleDone(ctx context.Context, msg *Message, questionID string) error {
	session, ok := h.states.Get(msg.UserID)
	if !ok {
		return h.sender.Send(msg.ChatID, render.MsgNoSession, nil)
	}

	q := h.currentQuestion(session)
	if q == nil || q.ID != questionID {
		return h.askCurrentQuestion(session)
	}

	selected := make([]string, 0, len(session.Selections))
	for _, opt := range q.Options {
		if session.Selections[opt.ID] {
			selected = append(selected, opt.ID)
		}
	}

	// Nothing toggled counts as a skip
	if len(selected) == 0 {
		return h.advanceQuestion(session)
	}

	if err := session.Workflow.RecordSelections(questionID, selected); err != nil {
		ctxzap.Error(ctx, "failed to record selections",
			zap.Error(err),
			zap.String("question_id", questionID),
		)
		return h.sender.Send(msg.ChatID, userFacingError(err), nil)
	}

	return h.advanceQuestion(session)
}

func (h *CallbackHandler) handleSkip(msg *Message, questionID string) error {
	session, ok := h.states.Get(msg.UserID)
	if !ok {
		return h.sender.Send(msg.ChatID, render.MsgNoSession, nil)
	}

	q := h.currentQuestion(session)
	if q == nil || q.ID != questionID {
		return h.askCurrentQuestion(session)
	}

	return h.advanceQuestion(session)
}

func (h *CallbackHandler) handleGenerate(ctx context.Context, msg *Message) error {
	session, ok := h.states.Get(msg.UserID)
	if !ok {
		return h.sender.Send(msg.ChatID, render.MsgNoSession, nil)
	}

	return h.generateDocument(ctx, session)
}

func (h *CallbackHandler) handleDownload(msg *Message, format string) error {
	session, ok := h.states.Get(msg.UserID)
	if !ok {
		return h.sender.Send(msg.ChatID, render.MsgNoSession, nil)
	}

	return h.sendDocumentFile(session, entity.ResultFormat(format))
}

func (h *CallbackHandler) handleConfirm(msg *Message, value string) error {
	if value != "cancel" {
		return h.sender.Send(msg.ChatID, "👍 Continuing where we left off.", nil)
	}

	h.states.Delete(msg.UserID)
	return h.sender.Send(msg.ChatID, render.MsgSessionClosed, nil)
}

func (h *CallbackHandler) currentQuestion(session *state.ChatSession) *entity.FollowUpQuestion {
	if session.Workflow == nil {
		return nil
	}
	questions := session.Workflow.Questions()
	if session.QuestionIndex >= len(questions) {
		return nil
	}
	return &questions[session.QuestionIndex]
}
