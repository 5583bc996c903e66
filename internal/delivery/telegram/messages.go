// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-engine/internal/service"
)

// Error and hint messages.
const (
	msgQuizUnavailable   = "Could not start the quiz, please try again later."
	msgQuizExpired       = "This question is no longer active. Use /quiz to start again."
	msgSelectAnswerFirst = "Choose an answer first."
	msgInternalError     = "Something went wrong. Please try again later."
	msgUseQuiz           = "Send /quiz to start a quiz."
	msgUnknownCommand    = "Unknown command. Available commands:\n\n/quiz - start a quiz\n/help - how it works"
	msgHelp              = "Answer each question by tapping an option. Use Previous and Next to move between questions and change answers. Tap Submit on the last question to see your score and a review of every answer."
)

const (
	maxMessageLength      = 4096
	reviewTruncatedSuffix = "…"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func welcomeMarkdownV2() string {
	return fmt.Sprintf(
		"%s\n\n%s",
		bold("👋 Welcome to the quiz!"),
		md("You will get a fixed set of multiple-choice questions. Go back and change answers at any time before you submit."),
	)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// formatQuizQuestion formats the current question (MarkdownV2 safe).
func formatQuizQuestion(view service.QuizView) string {
	selected := italic("No answer selected")
	if text, ok := view.Answer.Value(); ok {
		selected = md("Selected answer: ") + bold(text)
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		md(fmt.Sprintf("Question %d of %d", view.Index+1, view.Total)),
		bold(view.Question.Prompt),
		selected,
	)
}

// formatQuizResult formats quiz results with a per-question review (MarkdownV2 safe).
func formatQuizResult(view service.QuizView) string {
	emoji, message := "📚", "Keep practising!"
	switch {
	case view.Percent >= 90:
		emoji, message = "🌟", "Excellent result!"
	case view.Percent >= 70:
		emoji, message = "👍", "Good result!"
	case view.Percent >= 50:
		emoji, message = "💪", "Not bad, keep going!"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"%s %s\n\n%s %s\n%s\n\n%s\n\n%s",
		md(emoji),
		bold("Quiz completed!"),
		md("Final score:"),
		bold(fmt.Sprintf("%d out of %d (%.0f%%)", view.Score, view.Total, view.Percent)),
		md(buildProgressBar(view.Score, view.Total, 10)),
		md(message),
		bold("Review your answers:"),
	))

	for _, item := range view.Review {
		mark := "❌"
		if item.Correct {
			mark = "✅"
		}
		answer := italic("None")
		if text, ok := item.Answer.Value(); ok {
			answer = md(text)
		}

		entry := fmt.Sprintf(
			"\n\n%s %s\n%s %s\n%s %s",
			md(mark),
			bold(fmt.Sprintf("Q%d: %s", item.Number, item.Prompt)),
			md("Your answer:"), answer,
			md("Correct answer:"), md(item.CorrectAnswer),
		)
		if len([]rune(sb.String()))+len([]rune(entry)) > maxMessageLength-len(reviewTruncatedSuffix)-2 {
			sb.WriteString("\n\n" + md(reviewTruncatedSuffix))
			break
		}
		sb.WriteString(entry)
	}

	return sb.String()
}
