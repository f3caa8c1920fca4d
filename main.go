package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"langnghe/internal/config"
	"langnghe/internal/handlers"
	"langnghe/internal/mailer"
	"langnghe/internal/repositories"
	"langnghe/internal/seed"
	"langnghe/internal/services"
	"langnghe/pkg/logger"
	"langnghe/pkg/rabbitmq"
)

const shutdownTimeout = 10 * time.Second

// newApp builds the Fiber app with middleware, the storefront API under /api
// and the health check.
func newApp(store repositories.Storage, newsletter *services.NewsletterService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "langnghe",
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	// --- API Routes ---
	handlers.Register(app.Group("/api"), handlers.Services{
		Catalog:    services.NewCatalogService(store),
		Products:   services.NewProductService(store),
		Cart:       services.NewCartService(store),
		Newsletter: newsletter,
	})

	// --- Health Check Endpoint ---
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"storage": store.Name(),
		})
	})

	return app
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(logger.Options{Production: cfg.IsProduction()})

	// --- Storage ---
	store, err := repositories.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	// The in-memory backend starts empty on every boot; databases are seeded by cmd/seed.
	if store.Name() == "memory" {
		if err := seed.Run(store); err != nil {
			logger.Fatal().Err(err).Msg("Failed to seed in-memory storage")
		}
	}
	logger.Info().Str("storage", store.Name()).Msg("Storage ready")

	// --- Newsletter events ---
	var (
		mqClient  *rabbitmq.Client
		publisher services.EventPublisher
	)
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:    cfg.RabbitMQURL,
			Queues: []string{rabbitmq.NewsletterQueue},
		})
		if err != nil {
			logger.Error().Err(err).Msg("RabbitMQ unavailable, newsletter events disabled")
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}
	newsletter := services.NewNewsletterService(store, publisher, rabbitmq.NewsletterQueue, mailer.New(cfg.SMTP))

	app := newApp(store, newsletter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Background workers ---
	janitor := services.NewCartJanitor(store, cfg.CartSessionTTL, cfg.CartJanitorInterval)
	go janitor.Run(ctx)

	if publisher != nil {
		go func() {
			err := mqClient.Consume(ctx, rabbitmq.NewsletterQueue, func(body []byte) error {
				return newsletter.HandleSubscriberEvent(ctx, body)
			})
			if err != nil {
				logger.Error().Err(err).Msg("Newsletter consumer stopped")
			}
		}()
	}

	// --- Start HTTP Server ---
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(cfg.Port); err != nil {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error().Err(err).Msg("Error during Fiber shutdown")
	}
	logger.Info().Msg("Server gracefully stopped")
}
