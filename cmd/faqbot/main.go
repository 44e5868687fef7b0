package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"faqbot/internal/bot"
	"faqbot/internal/config"
	"faqbot/internal/faq"
	"faqbot/internal/logging"
	"faqbot/internal/repository"
	"faqbot/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional .env next to the binary; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config")
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("open log file")
	}
	defer closeLog()

	catalog := faq.Default()
	if cfg.FAQPath != "" {
		catalog, err = faq.Load(cfg.FAQPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("load faq catalog")
		}
	}

	db, err := repository.NewDB(cfg.DatabasePath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("db")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	analyticsSvc := service.NewAnalyticsService(interactionRepo, catalog, logger)
	reminderSvc := service.NewReminderService(reminderRepo, cfg.ReminderInterval, cfg.ReminderMax, logger)

	telegramBot, err := bot.New(cfg.Token, userRepo, analyticsSvc, reminderSvc, catalog, &cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("bot")
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.CheckInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := reminderSvc.RunCheck(jobCtx, time.Now(), telegramBot); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("reminder check")
		}
	}); err != nil {
		logger.Fatal().Err(err).Msg("schedule reminder check")
	}
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info().Msg("faq bot started")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("bot stopped with error")
	}
	logger.Info().Msg("shutdown complete")
}
