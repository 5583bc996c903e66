package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-engine/internal/service"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuizService interface {
	Start(ctx context.Context, chatID int64) (service.QuizView, error)
	Current(ctx context.Context, chatID int64) (service.QuizView, error)
	Select(ctx context.Context, chatID int64, questionIndex, optionIndex int) (service.QuizView, error)
	Next(ctx context.Context, chatID int64, questionIndex int) (service.QuizView, error)
	Previous(ctx context.Context, chatID int64, questionIndex int) (service.QuizView, error)
	Finish(ctx context.Context, chatID int64)
}
