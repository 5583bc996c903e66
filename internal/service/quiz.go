package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-engine/internal/domain/entities"
	"github.com/aliskhannn/quiz-engine/internal/quiz"
	"github.com/aliskhannn/quiz-engine/internal/storage"
)

var (
	ErrNoActiveSession  = errors.New("no active quiz session")
	ErrStaleQuestion    = errors.New("question is no longer current")
	ErrInvalidOption    = errors.New("invalid option index")
	ErrNoAnswerSelected = errors.New("no answer selected")
)

// QuizView is a snapshot of a session that front-ends render from.
type QuizView struct {
	Index       int // zero-based position of Question
	Total       int
	Question    entities.Question
	Answer      quiz.Answer
	HasNext     bool
	HasPrevious bool
	Completed   bool
	Score       int
	Percent     float64
	Review      []quiz.ReviewItem // filled once Completed
}

// SelectedOption returns the index of the chosen option, or -1.
func (v QuizView) SelectedOption() int {
	text, ok := v.Answer.Value()
	if !ok {
		return -1
	}
	return v.Question.OptionIndex(text)
}

type QuizService struct {
	questions QuestionRepository
	sessions  SessionStorage
	metrics   MetricsRecorder
	logger    *zap.Logger
}

func NewQuizService(
	questions QuestionRepository,
	sessions SessionStorage,
	metrics MetricsRecorder,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		questions: questions,
		sessions:  sessions,
		metrics:   metrics,
		logger:    logger,
	}
}

// Start begins a new quiz for the chat, discarding any previous one.
func (s *QuizService) Start(_ context.Context, chatID int64) (QuizView, error) {
	engine, err := quiz.New(s.questions.GetAll())
	if err != nil {
		return QuizView{}, fmt.Errorf("create quiz engine: %w", err)
	}

	session := storage.NewSession(engine)
	s.sessions.Store(chatID, session)
	s.metrics.SessionStarted()

	s.logger.Info("quiz session started",
		zap.Int64("chat_id", chatID),
		zap.Int("total_questions", engine.QuestionCount()),
	)

	return snapshot(engine), nil
}

// Current returns the chat's session state.
func (s *QuizService) Current(_ context.Context, chatID int64) (QuizView, error) {
	var view QuizView
	err := s.with(chatID, func(e *quiz.Engine) error {
		view = snapshot(e)
		return nil
	})
	return view, err
}

// Select records the option at optionIndex as the answer to the question at
// questionIndex.
func (s *QuizService) Select(_ context.Context, chatID int64, questionIndex, optionIndex int) (QuizView, error) {
	var view QuizView
	err := s.with(chatID, func(e *quiz.Engine) error {
		if err := checkCurrent(e, questionIndex); err != nil {
			return err
		}

		q, _ := e.CurrentQuestion()
		if optionIndex < 0 || optionIndex >= len(q.Options) {
			return ErrInvalidOption
		}

		e.RecordAnswer(q.Options[optionIndex])
		s.metrics.AnswerRecorded()

		s.logger.Debug("answer recorded",
			zap.Int64("chat_id", chatID),
			zap.Int("question_index", questionIndex),
			zap.Int("option_index", optionIndex),
		)

		view = snapshot(e)
		return nil
	})
	return view, err
}

// Next moves past the question at questionIndex. On the last question it
// submits the quiz. An answer must be selected first.
func (s *QuizService) Next(_ context.Context, chatID int64, questionIndex int) (QuizView, error) {
	var view QuizView
	err := s.with(chatID, func(e *quiz.Engine) error {
		if err := checkCurrent(e, questionIndex); err != nil {
			return err
		}
		if !e.CurrentAnswer().IsAnswered() {
			return ErrNoAnswerSelected
		}

		e.Advance()

		if e.Completed() {
			s.metrics.SessionCompleted(e.Score(), e.QuestionCount())
			s.logger.Info("quiz session completed",
				zap.Int64("chat_id", chatID),
				zap.Int("score", e.Score()),
				zap.Int("total_questions", e.QuestionCount()),
			)
		}

		view = snapshot(e)
		return nil
	})
	return view, err
}

// Previous moves back from the question at questionIndex.
func (s *QuizService) Previous(_ context.Context, chatID int64, questionIndex int) (QuizView, error) {
	var view QuizView
	err := s.with(chatID, func(e *quiz.Engine) error {
		if err := checkCurrent(e, questionIndex); err != nil {
			return err
		}
		e.Retreat()
		view = snapshot(e)
		return nil
	})
	return view, err
}

// Finish drops the chat's session.
func (s *QuizService) Finish(_ context.Context, chatID int64) {
	s.sessions.Delete(chatID)
}

func (s *QuizService) with(chatID int64, fn func(e *quiz.Engine) error) error {
	session, ok := s.sessions.Get(chatID)
	if !ok {
		return ErrNoActiveSession
	}

	var err error
	session.Do(func(e *quiz.Engine) {
		err = fn(e)
	})
	return err
}

func checkCurrent(e *quiz.Engine, questionIndex int) error {
	if e.Completed() || e.CurrentIndex() != questionIndex {
		return ErrStaleQuestion
	}
	return nil
}

func snapshot(e *quiz.Engine) QuizView {
	q, _ := e.CurrentQuestion()
	q.Options = append([]string(nil), q.Options...)

	view := QuizView{
		Index:       e.CurrentIndex(),
		Total:       e.QuestionCount(),
		Question:    q,
		Answer:      e.CurrentAnswer(),
		HasNext:     e.HasNext(),
		HasPrevious: e.HasPrevious(),
		Completed:   e.Completed(),
		Score:       e.Score(),
		Percent:     e.Percent(),
	}
	if view.Completed {
		view.Review = e.Review()
	}
	return view
}
