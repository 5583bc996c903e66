package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-engine/internal/cli"
	"github.com/aliskhannn/quiz-engine/internal/config"
	"github.com/aliskhannn/quiz-engine/internal/logger"
	"github.com/aliskhannn/quiz-engine/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	questionsPath := flag.String("questions", cfg.QuestionsJSONPath, "path to questions JSON file")
	flag.Parse()

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo, err := repository.NewQuestionRepository(*questionsPath)
	if err != nil {
		lg.Fatal("failed to load questions", zap.String("path", *questionsPath), zap.Error(err))
	}

	if err := cli.Run(ctx, questionRepo.GetAll(), os.Stdin, os.Stdout, lg); err != nil {
		lg.Fatal("quiz failed", zap.Error(err))
	}
}
