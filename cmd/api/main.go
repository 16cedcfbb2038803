package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"libraryapi/docs"
	"libraryapi/internal/cache"
	"libraryapi/internal/config"
	"libraryapi/internal/database"
	"libraryapi/internal/database/migration"
	handlers "libraryapi/internal/http/handler"
	"libraryapi/internal/http/middleware"
	"libraryapi/internal/logger"
	"libraryapi/internal/otel"
	"libraryapi/internal/repository"
	"libraryapi/internal/repository/cached"
	"libraryapi/internal/repository/postgres"
	"libraryapi/internal/service"
)

// @title Library API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(cfg.Log)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	var (
		authorRepo    repository.AuthorRepository    = postgres.NewAuthorPostgres(db)
		clientRepo    repository.ClientRepository    = postgres.NewClientPostgres(db)
		publisherRepo repository.PublisherRepository = postgres.NewPublisherPostgres(db)
	)

	deps := handlers.Dependencies{DB: db}

	// Redis is optional; without it every read goes to PostgreSQL.
	if cfg.CacheEnabled() {
		rc, err := cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rc.Close()

		opts := cached.Options{Prefix: cfg.Cache.Prefix, TTL: cfg.Cache.TTL, Logger: log}
		authorRepo = cached.NewAuthorRepository(authorRepo, rc, opts)
		clientRepo = cached.NewClientRepository(clientRepo, rc, opts)
		publisherRepo = cached.NewPublisherRepository(publisherRepo, rc, opts)
		deps.Cache = rc
	}

	deps.Authors = service.NewAuthorService(authorRepo)
	deps.Clients = service.NewClientService(clientRepo)
	deps.Publishers = service.NewPublisherService(publisherRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID must run first so the logger and error payloads can read it.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, deps)

	// Swagger info is shared by all requests, so it is set once before serving.
	docs.SwaggerInfo.Host = cfg.AppHost
	docs.SwaggerInfo.Schemes = []string{cfg.AppScheme}
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.Bool("cache_enabled", cfg.CacheEnabled()))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
