package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	_ "github.com/isfdyt26/portal-api/api/swagger"
	"github.com/isfdyt26/portal-api/internal/handler"
	"github.com/isfdyt26/portal-api/internal/service"
	"github.com/isfdyt26/portal-api/internal/store"
	"github.com/isfdyt26/portal-api/pkg/assistant"
	"github.com/isfdyt26/portal-api/pkg/cache"
	"github.com/isfdyt26/portal-api/pkg/config"
	"github.com/isfdyt26/portal-api/pkg/logger"
)

// @title Portal ISFDyT 26 API
// @version 1.0.0
// @description Backend for the institutional portal of ISFDyT N° 26
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.New(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to build store", "error", err)
	}
	if err := st.Initialize(ctx); err != nil {
		logr.Sugar().Fatalw("failed to initialize store", "error", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, unread counts uncached", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}

	validate := validator.New()

	authSvc := service.NewAuthService(st, cfg.JWT, validate, logr)
	userSvc := service.NewUserService(st, validate, logr)
	academicSvc := service.NewAcademicService(st, validate, logr)
	calendarSvc := service.NewCalendarService(st, validate, logr)
	notificationSvc := service.NewNotificationService(st, redisClient, cfg.Redis.UnreadCountTTL, validate, logr)
	chatSvc := service.NewChatService(st, validate, logr)
	justificationSvc := service.NewJustificationService(st, notificationSvc, validate, logr)
	finalSvc := service.NewFinalService(st, validate, logr)
	courseSvc := service.NewCourseService(st, notificationSvc, validate, logr)
	exportSvc := service.NewExportService(st, nil, nil, logr)
	metricsSvc := service.NewMetricsService()
	assistantClient := assistant.New(cfg.Assistant, logr)

	r := handler.NewRouter(cfg, logr, authSvc, metricsSvc, handler.Handlers{
		Auth:           handler.NewAuthHandler(authSvc),
		Users:          handler.NewUserHandler(userSvc),
		Academics:      handler.NewAcademicHandler(academicSvc),
		Calendar:       handler.NewCalendarHandler(calendarSvc),
		Notifications:  handler.NewNotificationHandler(notificationSvc),
		Chat:           handler.NewChatHandler(chatSvc),
		Justifications: handler.NewJustificationHandler(justificationSvc),
		Finals:         handler.NewFinalHandler(finalSvc),
		Courses:        handler.NewCourseHandler(courseSvc),
		Assistant:      handler.NewAssistantHandler(assistantClient),
		Exports:        handler.NewExportHandler(exportSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
