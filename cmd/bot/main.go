package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-engine/internal/config"
	"github.com/aliskhannn/quiz-engine/internal/delivery/telegram"
	"github.com/aliskhannn/quiz-engine/internal/logger"
	"github.com/aliskhannn/quiz-engine/internal/metrics"
	"github.com/aliskhannn/quiz-engine/internal/repository"
	"github.com/aliskhannn/quiz-engine/internal/service"
	"github.com/aliskhannn/quiz-engine/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	token, err := cfg.Telegram.Token()
	if err != nil {
		lg.Fatal("telegram token is not configured", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		lg.Fatal("failed to create telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "quiz",
			Description: "Start a new quiz",
		},
		{
			Command:     "help",
			Description: "How the quiz works",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsJSONPath)
	if err != nil {
		lg.Fatal("failed to load questions",
			zap.String("path", cfg.QuestionsJSONPath),
			zap.Error(err),
		)
	}
	lg.Info("questions loaded", zap.Int("count", questionRepo.Count()))

	recorder := metrics.New()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := recorder.Serve(ctx, cfg.Metrics.Addr, lg); err != nil {
				lg.Error("metrics endpoint failed", zap.Error(err))
			}
		}()
	}

	quizService := service.NewQuizService(questionRepo, storage.NewQuizStorage(), recorder, lg)

	handler := telegram.NewHandler(bot, lg, quizService, cfg.Telegram.PollTimeout)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
