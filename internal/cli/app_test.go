package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-engine/internal/domain/entities"
	"github.com/aliskhannn/quiz-engine/internal/quiz"
)

func testQuestions() []entities.Question {
	return []entities.Question{
		{Prompt: "Capital of France?", Options: []string{"Rome", "Paris"}, CorrectAnswer: "Paris"},
		{Prompt: "2+2?", Options: []string{"4", "5"}, CorrectAnswer: "4"},
		{Prompt: "Red planet?", Options: []string{"Mars", "Venus"}, CorrectAnswer: "Mars"},
	}
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), testQuestions(), strings.NewReader(input), &out, zap.NewNop())
	require.NoError(t, err)
	return out.String()
}

func TestRunCompletesQuiz(t *testing.T) {
	out := run(t, "2\nn\n2\nn\n1\nn\n")

	assert.Contains(t, out, "Question 1 of 3")
	assert.Contains(t, out, "Question 3 of 3")
	assert.Contains(t, out, "n submit")
	assert.Contains(t, out, "Final score: 2 out of 3")
	assert.Contains(t, out, "Q2: 2+2?\n  Your answer: 5 (incorrect)\n  Correct answer: 4")
	assert.NotContains(t, out, "ended before submission")
}

func TestRunNextRequiresAnswer(t *testing.T) {
	out := run(t, "n\nq\n")

	assert.Contains(t, out, "Select an answer first.")
	assert.Contains(t, out, "Quiz ended before submission.")
	assert.Contains(t, out, "Final score: 0 out of 3")
	assert.Contains(t, out, "Your answer: None (incorrect)")
}

func TestRunPreviousEditsAnswer(t *testing.T) {
	out := run(t, "1\nn\np\n2\nn\n1\nn\n1\nn\n")

	assert.Contains(t, out, "* 2. Paris")
	assert.Contains(t, out, "Final score: 3 out of 3")
}

func TestRunRejectsBadInput(t *testing.T) {
	out := run(t, "p\n7\nfoo\n")

	assert.Contains(t, out, "Already at the first question.")
	assert.Equal(t, 2, strings.Count(out, "Invalid input. Enter 1-2, p, n or q."))
	assert.Contains(t, out, "Quiz ended before submission.")
}

func TestRunEmptyQuestionList(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), nil, strings.NewReader(""), &out, zap.NewNop())
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, testQuestions(), strings.NewReader("1\n"), &out, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}
