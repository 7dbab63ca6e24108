package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	httpapi "github.com/GerardAdamiak/WeatherAppBackend/internal/api/http"
	"github.com/GerardAdamiak/WeatherAppBackend/internal/config"
	"github.com/GerardAdamiak/WeatherAppBackend/internal/forecast"
	"github.com/GerardAdamiak/WeatherAppBackend/internal/forecast/providers"
	"github.com/GerardAdamiak/WeatherAppBackend/internal/health"
	"github.com/GerardAdamiak/WeatherAppBackend/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	log := logger.Get()
	defer logger.Sync() //nolint:errcheck

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls; the timeout bounds
	// every upstream request.
	httpClient := &http.Client{
		Timeout: cfg.OutboundTimeout,
	}

	provider := providers.NewOpenMeteoProvider(httpClient, cfg.OpenMeteoBaseURL)
	service := forecast.NewService(provider, log)

	// Periodic upstream reachability probe surfaced on /health.
	monitor := health.New(provider, cfg.HealthProbeInterval, log)
	if err := monitor.Start(); err != nil {
		log.Fatalf("failed to start health monitor: %v", err)
	}
	defer monitor.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-app-backend",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware. CORS is deliberately permissive: public read-only
	// data proxy, any origin, credentials allowed.
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}))

	// Basic health endpoint with the latest upstream probe result.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "weather-app-backend",
			"upstream": monitor.Status(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}
