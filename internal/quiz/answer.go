package quiz

// Answer is one slot of the answer record: either unanswered or holding
// the text the user chose.
type Answer struct {
	text     string
	answered bool
}

// Unanswered is the empty answer slot.
var Unanswered = Answer{}

// Answered returns a slot holding text.
func Answered(text string) Answer {
	return Answer{text: text, answered: true}
}

// Value returns the recorded text and whether the slot is answered.
func (a Answer) Value() (string, bool) {
	return a.text, a.answered
}

// IsAnswered reports whether the slot holds an answer.
func (a Answer) IsAnswered() bool {
	return a.answered
}

// String returns the answer text, or an empty string when unanswered.
func (a Answer) String() string {
	return a.text
}
