package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	pointUseCase "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/usecase/point"

	coreport "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/core"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/handler"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/api/routes"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/logger"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/memtable"
	timeProvider "github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/adapter/time"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.IsProduction(), coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider and the in-memory tables. All wallet state
	// lives in these two tables and is lost on process exit.
	tp := timeProvider.NewRealTimeProvider()
	userPointTable := memtable.NewUserPointTable(tp)
	pointHistoryTable := memtable.NewPointHistoryTable()

	// Initialize the wallet use case
	pointService := pointUseCase.NewService(userPointTable, pointHistoryTable, appLogger)

	// Initialize API handlers
	pointHandler := handler.NewPointHandler(pointService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, pointHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
