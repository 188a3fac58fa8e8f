// Package app wires the storefront together and owns its lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sweetmoments/storefront/internal/auth"
	"github.com/sweetmoments/storefront/internal/config"
	"github.com/sweetmoments/storefront/internal/event"
	handlerhttp "github.com/sweetmoments/storefront/internal/handler/http"
	"github.com/sweetmoments/storefront/internal/provider/gemini"
	memoryrepo "github.com/sweetmoments/storefront/internal/repository/memory"
	postgresrepo "github.com/sweetmoments/storefront/internal/repository/postgres"
	redisrepo "github.com/sweetmoments/storefront/internal/repository/redis"
	"github.com/sweetmoments/storefront/internal/service"
	"github.com/sweetmoments/storefront/pkg/database"
	"github.com/sweetmoments/storefront/pkg/health"
	"github.com/sweetmoments/storefront/pkg/httpclient"
	"github.com/sweetmoments/storefront/pkg/kafka"
	"github.com/sweetmoments/storefront/pkg/middleware"
	"github.com/sweetmoments/storefront/pkg/tracing"
)

// App is the assembled storefront service.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	server          *http.Server
	redisClient     *goredis.Client
	pgPool          *pgxpool.Pool
	kafkaProducer   *kafka.Producer
	tracingShutdown func(context.Context) error
}

// New builds the application. Redis and Postgres are optional at startup: the
// storefront degrades to in-memory and built-in data rather than refusing to
// boot when a backing store is down.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     cfg.TraceSampleRate,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	healthHandler := health.NewHandler()

	redisClient, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Warn("redis unavailable, wishlists will not persist",
			slog.String("error", err.Error()))
		redisClient = nil
	} else {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	var pgPool *pgxpool.Pool
	if cfg.PostgresDSN != "" {
		pgPool, err = database.NewPostgresPool(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			logger.Warn("postgres unavailable, serving built-in catalog",
				slog.String("error", err.Error()))
			pgPool = nil
		} else if err := postgresrepo.Migrate(ctx, pgPool, logger); err != nil {
			logger.Warn("catalog schema migration failed, serving built-in catalog",
				slog.String("error", err.Error()))
			pgPool.Close()
			pgPool = nil
		} else {
			healthHandler.Register("postgres", func(ctx context.Context) error {
				return pgPool.Ping(ctx)
			})
		}
	}

	kafkaProducer := kafka.NewProducer(kafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	events := event.NewProducer(kafkaProducer, logger)

	cartService := service.NewCartService(memoryrepo.NewCartRepository(), events, logger)

	var wishlistService *service.WishlistService
	if redisClient != nil {
		wishlistService = service.NewWishlistService(
			redisrepo.NewWishlistRepository(redisClient, logger), events, logger)
	} else {
		wishlistService = service.NewWishlistService(
			memoryrepo.NewWishlistRepository(), events, logger)
	}

	var catalogService *service.CatalogService
	if pgPool != nil {
		catalogService = service.NewCatalogService(
			postgresrepo.NewCatalogRepository(pgPool), events, logger)
	} else {
		catalogService = service.NewCatalogService(nil, events, logger)
	}

	generationClient := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("gemini"),
		logger,
	)
	generator := gemini.New(gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	}, generationClient)
	recommendService := service.NewRecommendService(generator, catalogService, logger)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	router := handlerhttp.NewRouter(handlerhttp.RouterConfig{
		Logger:      logger,
		JWTManager:  jwtManager,
		Health:      healthHandler,
		ServiceName: cfg.ServiceName,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
		Cart:      handlerhttp.NewCartHandler(cartService),
		Wishlist:  handlerhttp.NewWishlistHandler(wishlistService),
		Catalog:   handlerhttp.NewCatalogHandler(catalogService),
		Assistant: handlerhttp.NewAssistantHandler(recommendService),
		Auth:      handlerhttp.NewAuthHandler(jwtManager, cfg.DemoAuthEnabled),
	})

	return &App{
		cfg:    cfg,
		logger: logger,
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		redisClient:     redisClient,
		pgPool:          pgPool,
		kafkaProducer:   kafkaProducer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	a.logger.Info("storefront listening",
		slog.String("addr", a.cfg.Addr()),
		slog.String("environment", a.cfg.Environment))

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes all connections.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := a.kafkaProducer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("kafka close: %w", err))
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if a.pgPool != nil {
		a.pgPool.Close()
	}
	if err := a.tracingShutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
	}

	a.logger.Info("storefront stopped")
	return errors.Join(errs...)
}
