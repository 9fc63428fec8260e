package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pokeapi/internal/config"
	"pokeapi/internal/database"
	"pokeapi/internal/database/migration"
	handlers "pokeapi/internal/http/handler"
	"pokeapi/internal/http/middleware"
	"pokeapi/internal/otel"
	"pokeapi/internal/repository/postgres"
	"pokeapi/internal/seed"
	"pokeapi/internal/service"
	"pokeapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	ctx := context.Background()

	// Initialize OTLP tracing (degrades to noop when the exporter is unavailable)
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Bootstrap the pokemons schema if it doesn't exist yet
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Sprite archive is optional; without an endpoint every sprite is absent
	var spriteStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		spriteStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize sprite archive: %v", err)
		}
	}

	// Initialize repository and service
	repo := postgres.NewPokemonPostgres(db)
	svc := service.NewPokemonService(repo)

	// Optional startup seed from the public PokéAPI; a failure here is not
	// fatal, the service still serves whatever is in the table
	if cfg.Seed.Enabled {
		if err := seed.New(cfg.Seed, repo, spriteStore, loc).Run(ctx); err != nil {
			log.Printf("seed failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(loc))
	// Server-side spans for every request
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, svc, spriteStore)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
