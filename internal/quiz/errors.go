package quiz

import "errors"

var (
	ErrNoQuestions          = errors.New("quiz has no questions")
	ErrNoOptions            = errors.New("question has no options")
	ErrDuplicateOption      = errors.New("question has duplicate options")
	ErrUnknownCorrectAnswer = errors.New("correct answer is not among the options")
)
