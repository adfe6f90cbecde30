package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/shift-schedule-api/internal/handlers"
	"github.com/yukikurage/shift-schedule-api/internal/middleware"
	"github.com/yukikurage/shift-schedule-api/internal/notifier"
	"github.com/yukikurage/shift-schedule-api/internal/repository"
	"github.com/yukikurage/shift-schedule-api/internal/services"
)

const shutdownTimeout = 10 * time.Second

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	notifierCfg := notifier.Config{
		Token:       cfg.TelegramBotToken,
		APIEndpoint: cfg.TelegramAPIEndpoint,
		Timeout:     cfg.NotifyTimeout,
	}
	if !notifierCfg.Enabled() {
		log.Warn("telegram bot token is not configured, notifications are disabled")
	}
	bot := notifier.NewTelegram(notifierCfg)

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	userService := services.NewUserService(userRepo, bot, cfg.RegistrationCode, log)
	scheduleService := services.NewScheduleService(scheduleRepo, userRepo, bot, loc, log)
	weekService := services.NewWeekService(scheduleRepo, loc, nil)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	handlers.RegisterRoutes(r, db,
		handlers.NewUserHandler(userService),
		handlers.NewScheduleHandler(scheduleService, weekService, loc),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
