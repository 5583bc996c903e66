package quiz

// ReviewItem is one row of the post-quiz review.
type ReviewItem struct {
	Number        int    // 1-based question number
	Prompt        string // question text
	Answer        Answer // what the user chose
	CorrectAnswer string
	Correct       bool
}

// Review pairs every question with the recorded answer.
func (e *Engine) Review() []ReviewItem {
	items := make([]ReviewItem, 0, len(e.questions))
	for i, q := range e.questions {
		a := e.answers[i]
		text, ok := a.Value()
		items = append(items, ReviewItem{
			Number:        i + 1,
			Prompt:        q.Prompt,
			Answer:        a,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       ok && q.IsCorrect(text),
		})
	}
	return items
}

// Percent returns the score as a percentage of the question count.
func (e *Engine) Percent() float64 {
	if len(e.questions) == 0 {
		return 0
	}
	return float64(e.Score()) / float64(len(e.questions)) * 100
}
