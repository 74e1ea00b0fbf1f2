package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conversational-task-assistant/config"
	_ "conversational-task-assistant/docs" // Swagger docs
	chatHTTP "conversational-task-assistant/internal/chat/delivery/http"
	chatUC "conversational-task-assistant/internal/chat/usecase"
	"conversational-task-assistant/internal/httpserver"
	"conversational-task-assistant/internal/middleware"
	"conversational-task-assistant/internal/orchestrator"
	"conversational-task-assistant/internal/parser"
	taskRest "conversational-task-assistant/internal/task/repository/rest"
	taskUC "conversational-task-assistant/internal/task/usecase"
	"conversational-task-assistant/pkg/log"
)

// @title       Conversational Task Assistant API
// @description Multilingual chat assistant for task management with English, Urdu, and Roman Urdu support.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store URL: %s", cfg.TaskStore.URL)

	// 3. Task store repository
	storeClient := taskRest.NewClient(cfg.TaskStore.URL, cfg.TaskStore.AccessToken)
	taskStore := taskRest.New(storeClient, logger)

	// 4. Pipeline: dispatcher, parser, orchestrator
	dispatcher := taskUC.New(logger, taskStore)
	cmdParser := parser.New(logger)
	orch := orchestrator.New(logger, cmdParser, dispatcher)

	// 5. Chat domain
	chatUseCase := chatUC.New(
		logger,
		orch,
		cfg.Assistant.SessionCacheMax,
		time.Duration(cfg.Assistant.SessionTTLMin)*time.Minute,
	)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.Assistant.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
