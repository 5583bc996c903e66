package entities

// Question is a single multiple-choice quiz item.
type Question struct {
	Prompt        string   `json:"question"`       // question text
	Options       []string `json:"options"`        // selectable answers, display order
	CorrectAnswer string   `json:"correct_answer"` // must equal one of Options
}

// OptionIndex returns the position of option in q.Options, or -1.
func (q Question) OptionIndex(option string) int {
	for i, o := range q.Options {
		if o == option {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether answer is the correct option.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
