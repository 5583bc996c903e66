package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/quiz-engine/internal/domain/entities"
	"github.com/aliskhannn/quiz-engine/internal/quiz"
)

var ErrQuestionsNotFound = errors.New("questions not found")

// QuestionRepository provides the quiz questions loaded once from a JSON file.
type QuestionRepository struct {
	questions []entities.Question
}

// NewQuestionRepository loads and validates questions from path.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	questions, err := loadQuestions(path)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		questions: questions,
	}, nil
}

// GetAll returns a copy of the questions in file order.
func (r *QuestionRepository) GetAll() []entities.Question {
	out := make([]entities.Question, len(r.questions))
	for i, q := range r.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Count returns the number of loaded questions.
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

func loadQuestions(path string) ([]entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionsNotFound, path)
		}
		return nil, err
	}

	var wrapper struct {
		Questions []entities.Question `json:"questions"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	if err = quiz.Validate(wrapper.Questions); err != nil {
		return nil, fmt.Errorf("invalid questions in %s: %w", path, err)
	}

	return wrapper.Questions, nil
}
