package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager manages telegram chat sessions
type Manager struct {
	storage Storage
	locks   sync.Map // userID -> *sync.Mutex
}

// NewManager creates a new state manager
func NewManager(storage Storage) *Manager {
	return &Manager{
		storage: storage,
	}
}

// LockUser returns the mutex serializing update handling for one user.
// A session and its workflow hold plain maps, so updates for the same
// user must run one at a time.
func (m *Manager) LockUser(userID int64) *sync.Mutex {
	mu, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Get retrieves the chat session for a user, if one exists
func (m *Manager) Get(userID int64) (*ChatSession, bool) {
	return m.storage.Get(userID)
}

// Save stores the chat session, refreshing its update timestamp
func (m *Manager) Save(session *ChatSession) {
	session.UpdatedAt = time.Now()
	m.storage.Set(session)
}

// New creates a fresh session for a user, replacing any existing one
func (m *Manager) New(userID, chatID int64) *ChatSession {
	session := &ChatSession{
		ID:         uuid.NewString(),
		UserID:     userID,
		ChatID:     chatID,
		Phase:      PhaseIdle,
		Selections: make(map[string]bool),
		CreatedAt:  time.Now(),
	}
	m.Save(session)
	return session
}

// Delete removes the chat session for a user
func (m *Manager) Delete(userID int64) {
	m.storage.Delete(userID)
}

// ResetSelections clears the multi-choice toggles between questions
func (m *Manager) ResetSelections(session *ChatSession) {
	session.Selections = make(map[string]bool)
	m.Save(session)
}
