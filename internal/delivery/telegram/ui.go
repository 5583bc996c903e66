package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-engine/internal/service"
)

// buildStartKeyboard builds keyboard for the welcome screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizStartCallback()),
		),
	)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New quiz", buildQuizStartCallback()),
		),
	)
}

// buildQuizQuestionKeyboard builds one button per option plus the navigation row.
func buildQuizQuestionKeyboard(view service.QuizView) tgbotapi.InlineKeyboardMarkup {
	selected := view.SelectedOption()

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(view.Question.Options)+1)
	for i, option := range view.Question.Options {
		label := option
		if i == selected {
			label = "✅ " + option
		}
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildQuizOptionCallback(view.Index, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if view.HasPrevious {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildQuizPreviousCallback(view.Index)))
	}

	nextLabel := "Next ▶️"
	if !view.HasNext {
		nextLabel = "🏁 Submit"
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(nextLabel, buildQuizNextCallback(view.Index)))
	rows = append(rows, nav)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
