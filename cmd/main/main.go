package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/ilyadubrovsky/homework-bot/internal/service"
	"github.com/ilyadubrovsky/homework-bot/internal/service/homework_statuses"
	"github.com/ilyadubrovsky/homework-bot/internal/service/telegram"
	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal().Msgf("godotenv.Load: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Msgf("cant initialize config: %v\n%s", err, config.Description())
	}

	logFile, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatal().Msgf("initLogger: %v", err)
	}
	defer logFile.Close()

	telegramSvc, err := telegram.NewService(cfg.Telegram)
	if err != nil {
		log.Fatal().Msgf("telegram.NewService: %v", err)
	}

	lastMessageCache := homework_statuses.NewLastMessageCache(cfg.Telegram.NotificationDedupTTL)

	practicumClient := practicum.NewClient(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Practicum.Timeout)

	var homeworkStatusesSvc service.HomeworkStatuses = homework_statuses.NewService(
		telegramSvc,
		practicumClient,
		lastMessageCache,
		cfg.Practicum,
		cfg.Telegram.ChatID,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	homeworkStatusesSvc.Start(ctx)
	log.Info().Msg("homework bot shut down")
}
