package main

import (
	"context"
	"log/slog"

	"clima-ja/internal/config"
	"clima-ja/internal/dashboard"
	"clima-ja/internal/location"
	"clima-ja/internal/weather"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	_ "clima-ja/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	dashboard      *dashboard.State
	locator        location.Locator
	limiter        *rate.Limiter
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	locator := location.NewStaticLocator(cfg.Location.Enabled, cfg.Location.Latitude, cfg.Location.Longitude)

	return newAppWithServices(cfg, logger, weatherSvc, locator), nil
}

// newAppWithServices wires the router around existing services.
// This is useful for testing with mock services.
func newAppWithServices(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service, locator location.Locator) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(accessLog(logger))

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		dashboard:      dashboard.NewState(weatherSvc, cfg.Weather.DefaultCity, logger),
		locator:        locator,
		limiter:        rate.NewLimiter(rate.Limit(cfg.Server.RateLimit.RPS), cfg.Server.RateLimit.Burst),
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Start runs the dashboard startup flow without blocking
func (app *App) Start(ctx context.Context) {
	go func() {
		if _, err := app.dashboard.Start(ctx, app.locator); err != nil {
			app.logger.Error("failed to load default city", "city", app.cfg.Weather.DefaultCity, "error", err)
		}
	}()
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
