package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lastminute/internal/auth"
	"lastminute/internal/config"
	"lastminute/internal/notify"
	"lastminute/internal/repository"
	"lastminute/internal/server"
	"lastminute/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Error("db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userSvc := service.NewUserService(userRepo, categoryRepo, tokens)
	categorySvc := service.NewCategoryService(categoryRepo, taskRepo)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo)
	documentSvc := service.NewDocumentService(documentRepo)
	testimonialSvc := service.NewTestimonialService(testimonialRepo)
	reminderSvc := service.NewReminderService(taskRepo)

	srv := server.New(logger, tokens, userSvc, categorySvc, taskSvc, documentSvc, testimonialSvc)

	scheduler := service.NewSchedulerService(time.Local)

	if _, err := scheduler.ScheduleInterval(cfg.PurgeInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := documentSvc.PurgeRejected(jobCtx, cfg.DocumentRetention)
		if err != nil {
			logger.Error("purge rejected documents", slog.String("error", err.Error()))
			return
		}
		if n > 0 {
			logger.Info("purged rejected documents", slog.Int64("count", n))
		}
	}); err != nil {
		logger.Error("schedule purge", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.TelegramToken != "" {
		digest, err := notify.NewTelegram(cfg.TelegramToken, userRepo, reminderSvc, logger)
		if err != nil {
			logger.Error("telegram", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if _, err := scheduler.ScheduleDaily(cfg.DigestTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := digest.SendDailyDigests(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("digest", slog.String("error", err.Error()))
			}
		}); err != nil {
			logger.Error("schedule digest", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("shutdown complete")
}
