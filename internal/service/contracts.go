package service

import (
	"github.com/aliskhannn/quiz-engine/internal/domain/entities"
	"github.com/aliskhannn/quiz-engine/internal/storage"
)

type QuestionRepository interface {
	GetAll() []entities.Question
}

type SessionStorage interface {
	Store(chatID int64, session *storage.Session)
	Get(chatID int64) (*storage.Session, bool)
	Delete(chatID int64)
}

// MetricsRecorder receives quiz lifecycle events.
type MetricsRecorder interface {
	SessionStarted()
	AnswerRecorded()
	SessionCompleted(score, total int)
}
