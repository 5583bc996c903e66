package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-engine/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	qc, err := parseQuizCallback(decodeCallback(cb.Data))
	if err != nil {
		h.logger.Warn("invalid callback data", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	view, err := h.applyQuizCallback(ctx, chatID, qc)
	if err != nil {
		h.answerCallback(cb.ID, h.callbackErrorText(chatID, qc, err))
		return
	}

	var edit tgbotapi.EditMessageTextConfig
	if view.Completed {
		edit = newEdit(chatID, cb.Message.MessageID, formatQuizResult(view))
		kb := buildQuizResultKeyboard()
		edit.ReplyMarkup = &kb
		h.quizService.Finish(ctx, chatID)
	} else {
		edit = newEdit(chatID, cb.Message.MessageID, formatQuizQuestion(view))
		kb := buildQuizQuestionKeyboard(view)
		edit.ReplyMarkup = &kb
	}

	_ = h.send(edit)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) applyQuizCallback(ctx context.Context, chatID int64, qc quizCallback) (service.QuizView, error) {
	switch qc.SubAction {
	case quizStart:
		return h.quizService.Start(ctx, chatID)
	case quizOption:
		return h.quizService.Select(ctx, chatID, qc.QuestionIndex, qc.OptionIndex)
	case quizNext:
		return h.quizService.Next(ctx, chatID, qc.QuestionIndex)
	case quizPrevious:
		return h.quizService.Previous(ctx, chatID, qc.QuestionIndex)
	default:
		return service.QuizView{}, errInvalidCallback
	}
}

func (h *Handler) callbackErrorText(chatID int64, qc quizCallback, err error) string {
	switch {
	case errors.Is(err, service.ErrNoAnswerSelected):
		return msgSelectAnswerFirst
	case errors.Is(err, service.ErrStaleQuestion),
		errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, service.ErrInvalidOption):
		return msgQuizExpired
	default:
		h.logger.Error("quiz callback failed",
			zap.Int64("chat_id", chatID),
			zap.String("action", qc.SubAction),
			zap.Error(err),
		)
		return msgInternalError
	}
}
