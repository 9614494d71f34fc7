package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/pereval-api/docs"
	"github.com/sbilibin2017/pereval-api/internal/config"
	"github.com/sbilibin2017/pereval-api/internal/events"
	"github.com/sbilibin2017/pereval-api/internal/handlers"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/middlewares"
	"github.com/sbilibin2017/pereval-api/internal/migrations"
	"github.com/sbilibin2017/pereval-api/internal/repositories"
	"github.com/sbilibin2017/pereval-api/internal/services"
	"github.com/sbilibin2017/pereval-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title pereval-api
// @version 1.0.0
// @description Mountain pass submission service: tourists submit perevals with coordinates, difficulty levels and photos; moderators change their status.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Date: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, cache, object storage and event broker,
// wires repositories and services, and serves HTTP until a shutdown signal.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Apply schema migrations
	if err := migrations.Up(cfg.PostgresDSN()); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Log.Info("Database migrations applied")

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	gormDB, err := repositories.NewGormDB(db.DB)
	if err != nil {
		return fmt.Errorf("failed to open gorm session: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Object storage for images
	store, err := storage.NewS3Storage(ctx, storage.S3Config{
		EndpointURL:     cfg.S3EndpointURL(),
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
	})
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure bucket %s: %w", cfg.S3.Bucket, err)
	}

	publisher, closePublisher, err := newEventPublisher(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Log.Errorw("failed to close event publisher", "error", err)
		}
	}()

	// Initialize repositories
	tx := repositories.NewTransactor(db)
	userReadRepo := repositories.NewUserReadRepository(db, repositories.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	perevalWriteRepo := repositories.NewPerevalWriteRepository(db, repositories.GetTxFromContext)
	perevalReadRepo := repositories.NewPerevalReadRepository(gormDB)
	activityTypeRepo := repositories.NewActivityTypeReadRepository(db)
	activityTypeCache := repositories.NewActivityTypeCacheRepository(rdb, cfg.RedisExpiration())

	// Initialize services
	identity := services.NewIdentityResolver(userReadRepo, userWriteRepo)
	perevalService := services.NewPerevalService(
		tx,
		identity,
		perevalWriteRepo,
		perevalReadRepo,
		activityTypeRepo,
		activityTypeCache,
		store,
		publisher,
	)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(cfg, perevalService, store),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newEventPublisher connects the broker selected by EVENTS_BROKER.
// With "none" the returned publisher is nil and events are skipped.
func newEventPublisher(cfg *config.Config) (services.EventPublisher, func() error, error) {
	noop := func() error { return nil }

	switch cfg.EventsBroker {
	case config.BrokerKafka:
		p := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic))
		logger.Log.Infow("Publishing events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
		return p, p.Close, nil
	case config.BrokerRabbitMQ:
		p, err := events.DialRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			return nil, noop, fmt.Errorf("RabbitMQ connection error: %w", err)
		}
		logger.Log.Infow("Publishing events to rabbitmq", "queue", cfg.RabbitMQ.Queue)
		return p, p.Close, nil
	default:
		logger.Log.Warn("Event broker disabled")
		return nil, noop, nil
	}
}

// newRouter mounts the API, media and swagger routes behind the common middleware.
func newRouter(cfg *config.Config, svc handlers.PerevalService, media handlers.MediaReader) http.Handler {
	docs.SwaggerInfo.Host = cfg.Addr()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middlewares.LoggingMiddleware)

	handlers.Mount(r, handlers.Routes(svc, media, cfg.MaxUploadBytes()))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
