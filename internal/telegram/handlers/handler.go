package handlers

import (
	"context"

	"github.com/sitebrief/requirements-backend/internal/telegram/state"
)

// Message represents a normalized Telegram message
type Message struct {
	ChatID       int64
	UserID       int64
	MessageID    int
	Text         string
	CallbackData string
	CallbackID   string
}

// Handler defines the interface for phase-specific handlers
type Handler interface {
	// Handle processes a message for this phase
	Handle(ctx context.Context, msg *Message) error

	// Phase returns the chat phase this handler manages
	Phase() string
}

// HandlerPhaseCallback routes all button clicks regardless of chat phase
const HandlerPhaseCallback = "CALLBACK"

// validPhases defines all valid handler phases
var validPhases = map[string]bool{
	HandlerPhaseCallback:           true,
	state.PhaseAwaitingDescription: true,
	state.PhaseAnsweringQuestions:  true,
}

// IsValidPhase checks if a phase is valid for handler registration
func IsValidPhase(phase string) bool {
	_, ok := validPhases[phase]
	return ok
}
