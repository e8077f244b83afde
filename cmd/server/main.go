package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"workflowpro-api/internal/application/services"
	"workflowpro-api/internal/config"
	delivery "workflowpro-api/internal/delivery/http"
	"workflowpro-api/internal/infrastructure"
	"workflowpro-api/internal/infrastructure/db"
	"workflowpro-api/internal/messaging"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	// Schema trouble shouldn't take the whole service down; the health
	// endpoints must keep answering so the platform can diagnose.
	if err := db.Migrate(gdb); err != nil {
		logger.Warn("database migration failed", zap.Error(err))
	}

	redisService := infrastructure.NewRedisService(cfg.RedisURL, logger)
	defer redisService.Close()

	publisher := messaging.NewPublisher(cfg.NATSURL, logger)
	defer publisher.Close()

	mailer := infrastructure.NewMailer(cfg.SendGridAPIKey, cfg.EmailSender, logger)
	tokenService := infrastructure.NewTokenService(cfg.JWTSecretKey, cfg.AccessTokenExpire)
	loginLimiter := infrastructure.NewRateLimiter(cfg.LoginRateWindow, cfg.LoginRateLimit)

	userRepo := db.NewUserRepository(gdb)
	taskRepo := db.NewTaskRepository(gdb)
	projectRepo := db.NewProjectRepository(gdb)
	teamRepo := db.NewTeamRepository(gdb)
	reportRepo := db.NewReportRepository(gdb)
	idempotencyRepo := db.NewIdempotencyRepository(gdb)

	userService := services.NewUserService(userRepo, idempotencyRepo, redisService, tokenService, loginLimiter, logger)
	taskService := services.NewTaskService(taskRepo, idempotencyRepo, publisher, logger)
	projectService := services.NewProjectService(projectRepo, teamRepo, taskRepo, userRepo, idempotencyRepo, mailer, publisher, logger)
	reportService := services.NewReportService(reportRepo, userRepo, projectRepo, teamRepo, redisService, logger)

	e := delivery.NewRouter(cfg, logger, tokenService, userService, delivery.Handlers{
		System:  delivery.NewSystemHandler(),
		Docs:    delivery.NewDocsHandler(),
		Auth:    delivery.NewAuthHandler(userService),
		Task:    delivery.NewTaskHandler(taskService),
		Project: delivery.NewProjectHandler(projectService),
		Report:  delivery.NewReportHandler(reportService),
	})

	addr := "0.0.0.0:" + cfg.Port
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
