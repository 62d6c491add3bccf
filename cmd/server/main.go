package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flocknet/follow-service/internal/router"
	"github.com/flocknet/follow-service/pkg/config"
	"github.com/flocknet/follow-service/pkg/logger"
	"github.com/flocknet/follow-service/validators"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log = log.With(zap.String("service", cfg.ServiceName))

	// Initialize the relationship store
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to initialize postgres", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql handle", zap.Error(err))
	}
	defer sqlDB.Close()
	log.Info("connected to postgres")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e, cfg, log)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, sqlDB, log)

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server run failed", zap.Error(err))
		}
	}()
	log.Info("http server started", zap.String("port", cfg.Port))

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server exited")
}
