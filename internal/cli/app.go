package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-engine/internal/domain/entities"
	"github.com/aliskhannn/quiz-engine/internal/quiz"
)

const (
	cmdNext     = "n"
	cmdPrevious = "p"
	cmdQuit     = "q"
)

type app struct {
	engine *quiz.Engine
	reader *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// Run plays the quiz interactively: options are chosen by number, and the
// user moves with n/p until the last question is submitted.
func Run(ctx context.Context, questions []entities.Question, in io.Reader, out io.Writer, logger *zap.Logger) error {
	engine, err := quiz.New(questions)
	if err != nil {
		return err
	}

	a := &app{
		engine: engine,
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
	return a.loop(ctx)
}

func (a *app) loop(ctx context.Context) error {
	for !a.engine.Completed() {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.printQuestion()

		line, err := a.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		input := strings.ToLower(strings.TrimSpace(line))
		if input == cmdQuit || (errors.Is(err, io.EOF) && input == "") {
			a.logger.Info("quiz ended before submission",
				zap.Int("answered", a.engine.Answered()),
				zap.Int("total_questions", a.engine.QuestionCount()),
			)
			fmt.Fprintln(a.out, "\nQuiz ended before submission.")
			a.printResult()
			return nil
		}

		a.handle(input)
	}

	a.logger.Info("quiz completed",
		zap.Int("score", a.engine.Score()),
		zap.Int("total_questions", a.engine.QuestionCount()),
	)
	a.printResult()
	return nil
}

func (a *app) handle(input string) {
	switch input {
	case cmdNext:
		if !a.engine.CurrentAnswer().IsAnswered() {
			fmt.Fprintln(a.out, "\nSelect an answer first.")
			return
		}
		a.engine.Advance()

	case cmdPrevious:
		if !a.engine.HasPrevious() {
			fmt.Fprintln(a.out, "\nAlready at the first question.")
			return
		}
		a.engine.Retreat()

	default:
		q, _ := a.engine.CurrentQuestion()
		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Fprintf(a.out, "\nInvalid input. Enter 1-%d, %s, %s or %s.\n",
				len(q.Options), cmdPrevious, cmdNext, cmdQuit)
			return
		}
		a.engine.RecordAnswer(q.Options[choice-1])
	}
}

func (a *app) printQuestion() {
	q, ok := a.engine.CurrentQuestion()
	if !ok {
		return
	}
	selected, answered := a.engine.CurrentAnswer().Value()

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Question %d of %d\n", a.engine.CurrentIndex()+1, a.engine.QuestionCount())
	fmt.Fprintf(a.out, "%s\n\n", q.Prompt)
	for i, option := range q.Options {
		marker := " "
		if answered && option == selected {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %d. %s\n", marker, i+1, option)
	}

	if answered {
		fmt.Fprintf(a.out, "\nSelected answer: %s\n", selected)
	} else {
		fmt.Fprintln(a.out, "\nNo answer selected")
	}

	nextLabel := "next"
	if !a.engine.HasNext() {
		nextLabel = "submit"
	}
	hint := fmt.Sprintf("[1-%d] answer, %s %s", len(q.Options), cmdNext, nextLabel)
	if a.engine.HasPrevious() {
		hint += ", " + cmdPrevious + " previous"
	}
	fmt.Fprintf(a.out, "%s, %s quit\n> ", hint, cmdQuit)
}

func (a *app) printResult() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Quiz Completed")
	fmt.Fprintf(a.out, "Final score: %d out of %d\n", a.engine.Score(), a.engine.QuestionCount())
	fmt.Fprintln(a.out, "\nReview your answers:")

	for _, item := range a.engine.Review() {
		answer := "None"
		if text, ok := item.Answer.Value(); ok {
			answer = text
		}
		verdict := "incorrect"
		if item.Correct {
			verdict = "correct"
		}

		fmt.Fprintf(a.out, "\nQ%d: %s\n", item.Number, item.Prompt)
		fmt.Fprintf(a.out, "  Your answer: %s (%s)\n", answer, verdict)
		fmt.Fprintf(a.out, "  Correct answer: %s\n", item.CorrectAnswer)
	}
}
