package state

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sitebrief/requirements-backend/internal/usecase/elicitation"
)

// Chat phases route incoming messages to the right handler
const (
	PhaseIdle                = "IDLE"
	PhaseAwaitingDescription = "AWAITING_DESCRIPTION"
	PhaseAnsweringQuestions  = "ANSWERING_QUESTIONS"
	PhaseDone                = "DONE"
)

// ChatSession holds one user's elicitation dialog. The workflow carries the
// domain state; the rest is Telegram UI bookkeeping.
type ChatSession struct {
	// ID correlates log lines across one dialog
	ID       string
	UserID   int64
	ChatID   int64
	Phase    string
	Workflow *elicitation.Workflow

	// Position in the follow-up question batch
	QuestionIndex int

	// Toggled option ids for the current multi-choice question
	Selections map[string]bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Storage defines the interface for chat session persistence
type Storage interface {
	Get(userID int64) (*ChatSession, bool)
	Set(session *ChatSession)
	Delete(userID int64)
}

// CacheStorage keeps chat sessions in memory with a TTL. An expired session
// simply disappears; the user starts over with /start.
type CacheStorage struct {
	cache *cache.Cache
}

func NewCacheStorage(ttl time.Duration) *CacheStorage {
	return &CacheStorage{
		cache: cache.New(ttl, ttl/2),
	}
}

func (s *CacheStorage) Get(userID int64) (*ChatSession, bool) {
	value, ok := s.cache.Get(key(userID))
	if !ok {
		return nil, false
	}

	session, ok := value.(*ChatSession)
	return session, ok
}

func (s *CacheStorage) Set(session *ChatSession) {
	s.cache.SetDefault(key(session.UserID), session)
}

func (s *CacheStorage) Delete(userID int64) {
	s.cache.Delete(key(userID))
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
