package telegram

import (
	"context"

	"go.uber.org/zap"
)

// handleStart greets the user and offers to start a quiz.
func (h *Handler) handleStart() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		msg := newMessage(chatID, welcomeMarkdownV2())
		msg.ReplyMarkup = buildStartKeyboard()
		return h.send(msg)
	}
}

// handleHelp explains the quiz controls.
func (h *Handler) handleHelp() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgHelp))
	}
}

// handleQuiz starts a new quiz for the chat and sends the first question.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.quizService.Start(ctx, chatID)
		if err != nil {
			h.logger.Error("failed to start quiz session",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			return h.send(newPlainMessage(chatID, msgQuizUnavailable))
		}

		msg := newMessage(chatID, formatQuizQuestion(view))
		msg.ReplyMarkup = buildQuizQuestionKeyboard(view)
		return h.send(msg)
	}
}
