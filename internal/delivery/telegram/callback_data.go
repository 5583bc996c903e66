package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
)

// Quiz sub-actions.
const (
	quizStart    = "start"
	quizOption   = "opt"
	quizNext     = "next"
	quizPrevious = "prev"
)

var errInvalidCallback = errors.New("invalid callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// quizCallback is a decoded quiz button press.
type quizCallback struct {
	SubAction     string
	QuestionIndex int
	OptionIndex   int
}

// parseQuizCallback validates the params of a quiz callback.
func parseQuizCallback(cd callbackData) (quizCallback, error) {
	if cd.Action != actionQuiz || len(cd.Params) == 0 {
		return quizCallback{}, errInvalidCallback
	}

	qc := quizCallback{SubAction: cd.Params[0], OptionIndex: -1}

	var want int
	switch qc.SubAction {
	case quizStart:
		want = 1
	case quizNext, quizPrevious:
		want = 2
	case quizOption:
		want = 3
	default:
		return quizCallback{}, errInvalidCallback
	}
	if len(cd.Params) != want {
		return quizCallback{}, errInvalidCallback
	}

	if want >= 2 {
		idx, err := strconv.Atoi(cd.Params[1])
		if err != nil || idx < 0 {
			return quizCallback{}, errInvalidCallback
		}
		qc.QuestionIndex = idx
	}
	if want == 3 {
		opt, err := strconv.Atoi(cd.Params[2])
		if err != nil || opt < 0 {
			return quizCallback{}, errInvalidCallback
		}
		qc.OptionIndex = opt
	}

	return qc, nil
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizOptionCallback builds callback data for choosing an option.
func buildQuizOptionCallback(questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizOption,
			strconv.Itoa(questionIndex),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

func buildQuizNextCallback(questionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, strconv.Itoa(questionIndex)},
	}.encode()
}

func buildQuizPreviousCallback(questionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizPrevious, strconv.Itoa(questionIndex)},
	}.encode()
}
