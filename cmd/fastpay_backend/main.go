package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/fastpay_escrow/internal/adapters/database/pgsql"
	"github.com/SscSPs/fastpay_escrow/internal/adapters/memory"
	"github.com/SscSPs/fastpay_escrow/internal/adapters/notify"
	"github.com/SscSPs/fastpay_escrow/internal/adapters/redis"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/core/services"
	"github.com/SscSPs/fastpay_escrow/internal/handlers"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/SscSPs/fastpay_escrow/internal/platform/config"
	"github.com/SscSPs/fastpay_escrow/internal/utils"
	"github.com/SscSPs/fastpay_escrow/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title FastPay Escrow API
// @version 1.0
// @description Ledger, listings, negotiation and escrow for the FastPay marketplace.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	idempotencyRepo, closeIdempotency, err := newIdempotencyRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize idempotency store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeIdempotency()

	repos, closeRepos, err := newRepositories(ctx, cfg, idempotencyRepo, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	notifiers := []portssvc.Notifier{notify.NewLogNotifier(), notify.NewRepositoryNotifier(repos.NotificationRepo)}
	if posthogClient.IsInitialized() {
		notifiers = append(notifiers, notify.NewPosthogNotifier(posthogClient))
	}

	market := services.NewMarketplace(cfg)
	container, effects := services.NewServiceContainer(cfg, market, repos, notify.NewFanOut(notifiers...))
	if err := services.Bootstrap(ctx, cfg, market, repos.SnapshotRepo, effects); err != nil {
		logger.Error("Failed to bootstrap marketplace", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	apiLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.GinMiddlewarize(apiLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, idempotencyRepo); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}

	// Write every collection once more so nothing accepted before shutdown is lost.
	effects.PersistAll(shutdownCtx)
	logger.Info("Server stopped")
}

// newRepositories wires the configured store driver. The returned func releases its resources.
func newRepositories(ctx context.Context, cfg *config.Config, idempotencyRepo portsrepo.IdempotencyRepository, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store, state is lost on restart")
		return portsrepo.RepositoryProvider{
			SnapshotRepo:     memory.NewSnapshotStore(),
			NotificationRepo: memory.NewNotificationStore(),
			IdempotencyRepo:  idempotencyRepo,
		}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool, idempotencyRepo), func() { database.ClosePgxPool(dbPool) }, nil
}

// newIdempotencyRepository uses Redis when REDIS_URL is set so replays survive
// restarts and are shared between instances.
func newIdempotencyRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.IdempotencyRepository, func(), error) {
	if cfg.RedisURL == "" {
		return memory.NewIdempotencyStore(), func() {}, nil
	}
	client, err := redis.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected to Redis for idempotency keys")
	return redis.NewIdempotencyRepository(client), func() {
		if err := client.Close(); err != nil {
			logger.Error("Failed to close redis client", slog.String("error", err.Error()))
		}
	}, nil
}
