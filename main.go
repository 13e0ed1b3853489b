package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"staffdir/internal/config"
	"staffdir/internal/database"
	"staffdir/internal/handlers"
	"staffdir/internal/metrics"
	"staffdir/internal/middleware"
	"staffdir/internal/repositories"
	"staffdir/internal/services"
	"staffdir/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// --- Directory events (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		if err := mqClient.ConsumeAuditEvents(rabbitmq.LogAuditEvent); err != nil {
			log.Printf("Failed to start audit consumer: %v", err)
		}
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, directory events are disabled")
	}

	app, err := NewApp(cfg, db, publisher)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher) (*fiber.App, error) {
	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	employeeRepo := repositories.NewGORMEmployeeRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, tokens, publisher)
	userService := services.NewUserService(userRepo)
	employeeService := services.NewEmployeeService(employeeRepo, publisher, cfg.EnforceOwnership)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, m)
	userHandler := handlers.NewUserHandler(userService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.RequestMetrics(m))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Account routes are public
	authHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)

	// Employee routes require a bearer token
	employeeHandler.RegisterRoutes(app, middleware.AuthRequired(tokens, m))

	return app, nil
}
