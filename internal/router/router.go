package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flocknet/follow-service/internal/handlers"
	"github.com/flocknet/follow-service/internal/middleware"
	"github.com/flocknet/follow-service/internal/observability"
	"github.com/flocknet/follow-service/internal/repositories"
	"github.com/flocknet/follow-service/internal/service"
	"github.com/flocknet/follow-service/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config, log *zap.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.RequestID(""))

	if cfg.Metrics.Enabled {
		metrics := observability.NewHTTPMetrics(nil, cfg.ServiceName)
		e.Use(metrics.Middleware())
		e.GET(cfg.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	e.Use(middleware.RequestLogger(log))
	log.Info("global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, sqlDB *sql.DB, log *zap.Logger) {
	// Probes - always accessible
	healthHandler := handlers.NewHealthHandler(sqlDB)
	e.GET("/health", healthHandler.Health)
	e.GET("/readyz", healthHandler.Ready)

	// --- Initialize repositories and the relationship service ---
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	followService := service.NewFollowService(followRepo, userRepo, log)

	g := e.Group("")

	// Follow edge routes
	followHandler := handlers.NewFollowHandler(followService, log)
	followHandler.RegisterFollowRoutes(g)
	log.Info("follow routes configured")

	// User and listing routes
	userHandler := handlers.NewUserHandler(followService, log)
	userHandler.RegisterUserRoutes(g)
	log.Info("user routes configured")
}
