package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/quiz-engine/internal/domain/entities"
)

func abQuestions(correct ...string) []entities.Question {
	qs := make([]entities.Question, 0, len(correct))
	for i, c := range correct {
		qs = append(qs, entities.Question{
			Prompt:        "Question " + string(rune('1'+i)),
			Options:       []string{"A", "B"},
			CorrectAnswer: c,
		})
	}
	return qs
}

func newEngine(t *testing.T, correct ...string) *Engine {
	t.Helper()
	e, err := New(abQuestions(correct...))
	require.NoError(t, err)
	return e
}

func TestNewStartsAtFirstQuestionUnanswered(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		correct := make([]string, n)
		for i := range correct {
			correct[i] = "A"
		}
		e := newEngine(t, correct...)

		assert.Equal(t, 0, e.CurrentIndex())
		assert.Equal(t, 0, e.Score())
		assert.Equal(t, n, e.QuestionCount())
		assert.Equal(t, StatusInProgress, e.Status())
		require.Len(t, e.Answers(), n)
		for i, a := range e.Answers() {
			assert.False(t, a.IsAnswered(), "slot %d", i)
		}
	}
}

func TestNewRejectsInvalidQuestions(t *testing.T) {
	tests := []struct {
		name      string
		questions []entities.Question
		want      error
	}{
		{name: "nil list", questions: nil, want: ErrNoQuestions},
		{name: "empty list", questions: []entities.Question{}, want: ErrNoQuestions},
		{
			name:      "no options",
			questions: []entities.Question{{Prompt: "q", CorrectAnswer: "A"}},
			want:      ErrNoOptions,
		},
		{
			name:      "duplicate options",
			questions: []entities.Question{{Prompt: "q", Options: []string{"A", "A"}, CorrectAnswer: "A"}},
			want:      ErrDuplicateOption,
		},
		{
			name: "correct answer missing in second question",
			questions: []entities.Question{
				{Prompt: "q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
				{Prompt: "q2", Options: []string{"A", "B"}, CorrectAnswer: "C"},
			},
			want: ErrUnknownCorrectAnswer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := New(tc.questions)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewErrorNamesQuestion(t *testing.T) {
	_, err := New([]entities.Question{
		{Prompt: "q1", Options: []string{"A"}, CorrectAnswer: "A"},
		{Prompt: "q2", Options: []string{"A"}, CorrectAnswer: "Z"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 2")
}

func TestNewCopiesQuestions(t *testing.T) {
	qs := abQuestions("A")
	e, err := New(qs)
	require.NoError(t, err)

	qs[0].Prompt = "changed"
	qs[0].Options[0] = "changed"

	got, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Question 1", got.Prompt)
	assert.Equal(t, []string{"A", "B"}, got.Options)

	e.Questions()[0].Options[1] = "changed"
	assert.Equal(t, []string{"A", "B"}, e.Questions()[0].Options)
}

func TestHasNextHasPreviousMatchBounds(t *testing.T) {
	e := newEngine(t, "A", "A", "A", "A")
	n := e.QuestionCount()

	for step := 0; step < n+2; step++ {
		i := e.CurrentIndex()
		assert.Equal(t, i < n-1, e.HasNext(), "index %d", i)
		assert.Equal(t, i > 0, e.HasPrevious(), "index %d", i)
		e.Advance()
	}
	for step := 0; step < n+2; step++ {
		i := e.CurrentIndex()
		assert.Equal(t, i < n-1, e.HasNext(), "index %d", i)
		assert.Equal(t, i > 0, e.HasPrevious(), "index %d", i)
		e.Retreat()
	}
}

func TestAdvanceRetreatNetZero(t *testing.T) {
	e := newEngine(t, "A", "B", "A")
	e.Advance()
	require.Equal(t, 1, e.CurrentIndex())

	e.Advance()
	e.Retreat()
	assert.Equal(t, 1, e.CurrentIndex())

	e.Retreat()
	e.Advance()
	assert.Equal(t, 1, e.CurrentIndex())
}

func TestNavigationClampsAtBounds(t *testing.T) {
	e := newEngine(t, "A", "B", "A")

	for i := 0; i < 5; i++ {
		e.Retreat()
	}
	assert.Equal(t, 0, e.CurrentIndex())

	for i := 0; i < 5; i++ {
		e.Advance()
	}
	assert.Equal(t, 2, e.CurrentIndex())
	assert.False(t, e.Completed(), "unanswered last question must not complete")
}

func TestRecordAnswerOverwrites(t *testing.T) {
	e := newEngine(t, "A", "B")
	e.Advance()
	e.RecordAnswer("A")
	e.RecordAnswer("B")

	text, ok := e.CurrentAnswer().Value()
	require.True(t, ok)
	assert.Equal(t, "B", text)

	e.Retreat()
	assert.False(t, e.CurrentAnswer().IsAnswered())
	assert.Equal(t, []Answer{Unanswered, Answered("B")}, e.Answers())
}

func TestRecordAnswerAcceptsUnknownText(t *testing.T) {
	e := newEngine(t, "A")
	e.RecordAnswer("not an option")

	assert.Equal(t, "not an option", e.CurrentAnswer().String())
	assert.Equal(t, 0, e.Score())
}

func TestScoreMatchesAnswerRecord(t *testing.T) {
	e := newEngine(t, "A", "B", "A", "B")
	e.RecordAnswer("A")
	e.Advance()
	e.Advance()
	e.RecordAnswer("B")
	e.Advance()
	e.RecordAnswer("B")

	want := 0
	qs := e.Questions()
	for i, a := range e.Answers() {
		if text, ok := a.Value(); ok && text == qs[i].CorrectAnswer {
			want++
		}
	}
	assert.Equal(t, want, e.Score())
	assert.Equal(t, 2, e.Score())
	assert.Equal(t, 3, e.Answered())
}

func TestThreeQuestionScenario(t *testing.T) {
	e := newEngine(t, "A", "B", "A")

	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Question 1", q.Prompt)

	e.RecordAnswer("A")
	e.Advance()
	require.Equal(t, 1, e.CurrentIndex())

	e.RecordAnswer("X")
	e.Advance()
	require.Equal(t, 2, e.CurrentIndex())

	e.RecordAnswer("A")

	assert.Equal(t, 2, e.Score())
	assert.Equal(t, []Answer{Answered("A"), Answered("X"), Answered("A")}, e.Answers())
}

func TestSingleQuestionScenario(t *testing.T) {
	e := newEngine(t, "B")

	assert.False(t, e.HasNext())
	assert.False(t, e.HasPrevious())

	e.RecordAnswer("B")
	e.Advance()

	assert.Equal(t, 0, e.CurrentIndex())
	assert.Equal(t, 1, e.Score())
	assert.True(t, e.Completed())
}

func TestCompletionFreezesState(t *testing.T) {
	e := newEngine(t, "A", "B")
	e.RecordAnswer("A")
	e.Advance()
	e.RecordAnswer("A")
	e.Advance()

	require.True(t, e.Completed())
	assert.Equal(t, StatusCompleted, e.Status())
	assert.Equal(t, "completed", e.Status().String())

	e.RecordAnswer("B")
	e.Retreat()
	e.Advance()

	assert.Equal(t, 1, e.CurrentIndex())
	assert.Equal(t, 1, e.Score())

	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Question 2", q.Prompt)
}

func TestReview(t *testing.T) {
	e := newEngine(t, "A", "B", "A")
	e.RecordAnswer("A")
	e.Advance()
	e.RecordAnswer("A")

	items := e.Review()
	require.Len(t, items, 3)

	assert.Equal(t, ReviewItem{Number: 1, Prompt: "Question 1", Answer: Answered("A"), CorrectAnswer: "A", Correct: true}, items[0])
	assert.Equal(t, ReviewItem{Number: 2, Prompt: "Question 2", Answer: Answered("A"), CorrectAnswer: "B", Correct: false}, items[1])
	assert.Equal(t, ReviewItem{Number: 3, Prompt: "Question 3", Answer: Unanswered, CorrectAnswer: "A", Correct: false}, items[2])
	assert.InDelta(t, 33.33, e.Percent(), 0.01)
}
