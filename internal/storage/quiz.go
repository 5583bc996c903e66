package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/quiz-engine/internal/quiz"
)

// Session is one chat's quiz. The engine itself is not synchronized, so all
// access goes through Do.
type Session struct {
	mu        sync.Mutex
	engine    *quiz.Engine
	StartedAt time.Time
}

// NewSession wraps engine in a session started now.
func NewSession(engine *quiz.Engine) *Session {
	return &Session{
		engine:    engine,
		StartedAt: time.Now(),
	}
}

// Do runs fn with exclusive access to the session's engine.
func (s *Session) Do(fn func(e *quiz.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// QuizStorage provides in-memory storage for quiz sessions by chat ID.
// Every chat gets its own engine; nothing is shared between chats.
type QuizStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		sessions: make(map[int64]*Session),
	}
}

// Store saves the session for a chat, replacing any previous one.
func (s *QuizStorage) Store(chatID int64, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a chat.
func (s *QuizStorage) Get(chatID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// Delete removes the session for a chat.
func (s *QuizStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of stored sessions.
func (s *QuizStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
