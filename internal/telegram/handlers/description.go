package handlers

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/telegram/render"
	"github.com/sitebrief/requirements-backend/internal/telegram/state"
	"go.uber.org/zap"
)

// DescriptionHandler handles the AWAITING_DESCRIPTION phase: the user's
// first message is the website description fed into the analysis stage.
type DescriptionHandler struct {
	*Flow
}

func NewDescriptionHandler(flow *Flow) *DescriptionHandler {
	return &DescriptionHandler{Flow: flow}
}

func (h *DescriptionHandler) Phase() string {
	return state.PhaseAwaitingDescription
}

func (h *DescriptionHandler) Handle(ctx context.Context, msg *Message) error {
	session, ok := h.states.Get(msg.UserID)
	if !ok {
		return h.sender.Send(msg.ChatID, render.MsgNoSession, nil)
	}

	if msg.Text == "" {
		return h.sender.Send(msg.ChatID, render.MsgAskDescription, nil)
	}

	if err := h.sender.Send(msg.ChatID, render.MsgAnalyzing, nil); err != nil {
		return err
	}

	typing := NewTypingNotifier(h.api, msg.ChatID, h.logger)
	typing.Start(ctx)
	defer typing.Stop()

	if err := session.Workflow.Submit(ctx, msg.Text); err != nil {
		ctxzap.Error(ctx, "analysis failed", zap.Error(err))
		return h.sender.Send(msg.ChatID, userFacingError(err), nil)
	}

	analysis := session.Workflow.Analysis()
	if err := h.sender.Send(msg.ChatID, render.Understood(analysis), nil); err != nil {
		return err
	}

	if len(analysis.Questions) == 0 {
		session.Phase = state.PhaseAnsweringQuestions
		h.states.Save(session)
		return h.sender.Send(msg.ChatID, render.MsgNoQuestions, h.keyboard.GenerateKeyboard())
	}

	session.Phase = state.PhaseAnsweringQuestions
	session.QuestionIndex = 0
	h.states.Save(session)

	return h.askCurrentQuestion(session)
}
