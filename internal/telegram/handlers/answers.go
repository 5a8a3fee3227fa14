package handlers

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/telegram/render"
	"github.com/sitebrief/requirements-backend/internal/telegram/state"
	"go.uber.org/zap"
)

// AnswersHandler handles the ANSWERING_QUESTIONS phase: typed replies are
// free-text answers to the current question. Choice questions are answered
// through buttons and land in the callback handler instead.
type AnswersHandler struct {
	*Flow
}

func NewAnswersHandler(flow *Flow) *AnswersHandler {
	return &AnswersHandler{Flow: flow}
}

func (h *AnswersHandler) Phase() string {
	return state.PhaseAnsweringQuestions
}

func (h *AnswersHandler) Handle(ctx context.Context, msg *Message) error {
	session, ok := h.states.Get(msg.UserID)
	if !ok {
		return h.sender.Send(msg.ChatID, render.MsgNoSession, nil)
	}

	questions := session.Workflow.Questions()
	if session.QuestionIndex >= len(questions) {
		// All questions are done; only the generate button is expected here
		return h.offerGeneration(session)
	}

	if msg.Text == "" {
		return h.askCurrentQuestion(session)
	}

	q := &questions[session.QuestionIndex]
	if err := session.Workflow.RecordAnswer(q.ID, msg.Text); err != nil {
		ctxzap.Error(ctx, "failed to record answer",
			zap.Error(err),
			zap.String("question_id", q.ID),
		)
		return h.sender.Send(msg.ChatID, userFacingError(err), nil)
	}

	return h.advanceQuestion(session)
}
