// Package quiz holds the quiz state machine: the fixed question list, the
// cursor, the answer record, and the score and review derived from them.
//
// An Engine is not safe for concurrent use. Each interactive session owns
// its own Engine.
package quiz

import (
	"fmt"

	"github.com/aliskhannn/quiz-engine/internal/domain/entities"
)

// Status is the lifecycle state of a quiz.
type Status int

const (
	StatusInProgress Status = iota
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Engine tracks progress through an immutable list of questions.
type Engine struct {
	questions []entities.Question
	answers   []Answer
	current   int
	status    Status
}

// New validates questions and returns an engine positioned at the first
// question with every slot unanswered.
func New(questions []entities.Question) (*Engine, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}

	qs := make([]entities.Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}

	return &Engine{
		questions: qs,
		answers:   make([]Answer, len(qs)),
	}, nil
}

// Validate checks that questions can be scored: the list is non-empty and
// every question has unique options containing its correct answer.
func Validate(questions []entities.Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	for i, q := range questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d: %w", i+1, ErrNoOptions)
		}

		seen := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if _, dup := seen[opt]; dup {
				return fmt.Errorf("question %d: %w: %q", i+1, ErrDuplicateOption, opt)
			}
			seen[opt] = struct{}{}
		}

		if _, ok := seen[q.CorrectAnswer]; !ok {
			return fmt.Errorf("question %d: %w: %q", i+1, ErrUnknownCorrectAnswer, q.CorrectAnswer)
		}
	}

	return nil
}

// CurrentQuestion returns the question under the cursor. ok is false only
// when the cursor is out of range.
func (e *Engine) CurrentQuestion() (q entities.Question, ok bool) {
	if e.current < 0 || e.current >= len(e.questions) {
		return entities.Question{}, false
	}
	return e.questions[e.current], true
}

// CurrentAnswer returns the answer slot under the cursor.
func (e *Engine) CurrentAnswer() Answer {
	if e.current < 0 || e.current >= len(e.answers) {
		return Unanswered
	}
	return e.answers[e.current]
}

// CurrentIndex returns the zero-based cursor position.
func (e *Engine) CurrentIndex() int {
	return e.current
}

// RecordAnswer stores answer for the current question, replacing any
// earlier answer. The text is not checked against the options.
// It does nothing once the quiz is completed.
func (e *Engine) RecordAnswer(answer string) {
	if e.status == StatusCompleted {
		return
	}
	e.answers[e.current] = Answered(answer)
}

// HasNext reports whether a question follows the current one.
func (e *Engine) HasNext() bool {
	return e.current < len(e.questions)-1
}

// HasPrevious reports whether a question precedes the current one.
func (e *Engine) HasPrevious() bool {
	return e.current > 0
}

// Advance moves to the next question. On the last question the cursor stays
// put; if that question is answered the quiz becomes completed.
func (e *Engine) Advance() {
	if e.status == StatusCompleted {
		return
	}
	if e.HasNext() {
		e.current++
		return
	}
	if e.answers[e.current].IsAnswered() {
		e.status = StatusCompleted
	}
}

// Retreat moves to the previous question, or does nothing on the first one.
func (e *Engine) Retreat() {
	if e.status == StatusCompleted {
		return
	}
	if e.HasPrevious() {
		e.current--
	}
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Completed reports whether the quiz has been submitted.
func (e *Engine) Completed() bool {
	return e.status == StatusCompleted
}

// Score counts answers equal to their question's correct answer.
func (e *Engine) Score() int {
	score := 0
	for i, a := range e.answers {
		if text, ok := a.Value(); ok && e.questions[i].IsCorrect(text) {
			score++
		}
	}
	return score
}

// Answered counts answered slots.
func (e *Engine) Answered() int {
	n := 0
	for _, a := range e.answers {
		if a.IsAnswered() {
			n++
		}
	}
	return n
}

// QuestionCount returns the number of questions.
func (e *Engine) QuestionCount() int {
	return len(e.questions)
}

// Questions returns a copy of the question list in order.
func (e *Engine) Questions() []entities.Question {
	out := make([]entities.Question, len(e.questions))
	for i, q := range e.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Answers returns a copy of the answer record, unanswered slots included.
func (e *Engine) Answers() []Answer {
	return append([]Answer(nil), e.answers...)
}
