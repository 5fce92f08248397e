package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	cartobs "github.com/shopilens/storefront-api/internal/domains/cart/adapters/observability"
	cartapp "github.com/shopilens/storefront-api/internal/domains/cart/application"

	catalogmemory "github.com/shopilens/storefront-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/shopilens/storefront-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/shopilens/storefront-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogremote "github.com/shopilens/storefront-api/internal/domains/catalog/adapters/remote"
	catalogapp "github.com/shopilens/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/shopilens/storefront-api/internal/domains/catalog/ports"

	usersjwt "github.com/shopilens/storefront-api/internal/domains/users/adapters/jwt"
	usersmemory "github.com/shopilens/storefront-api/internal/domains/users/adapters/memory"
	userspostgres "github.com/shopilens/storefront-api/internal/domains/users/adapters/persistence/postgres"
	usersredis "github.com/shopilens/storefront-api/internal/domains/users/adapters/persistence/redis"
	usersapp "github.com/shopilens/storefront-api/internal/domains/users/application"
	usersports "github.com/shopilens/storefront-api/internal/domains/users/ports"

	storefrontserver "github.com/shopilens/storefront-api/internal/httpapi"
	"github.com/shopilens/storefront-api/internal/platform/migrations"
	platformobservability "github.com/shopilens/storefront-api/internal/platform/observability"
	platformpostgres "github.com/shopilens/storefront-api/internal/platform/postgres"
	platformredis "github.com/shopilens/storefront-api/internal/platform/redis"
)

// Run boots the storefront HTTP API with observability, the catalog cache,
// and session storage wired. Missing backing services degrade gracefully:
// the API falls back to in-memory adapters rather than refusing to start.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.TryConnect(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	catalogService, err := buildCatalogService(cfg, db, logger, instruments)
	if err != nil {
		return err
	}

	sessions, cleanupSessions := buildSessionStore(ctx, cfg, db, logger)
	defer cleanupSessions()
	userService := usersapp.NewService(buildUserRepository(db, logger), sessions)

	cartService := cartobs.New(
		cartapp.NewService(),
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)

	handlers := storefrontserver.ApiHandleFunctions{
		CartAPI:    storefrontserver.NewCartAPI(cartService),
		CatalogAPI: storefrontserver.NewCatalogAPI(catalogService),
		UserAPI:    storefrontserver.NewUserAPI(userService),
	}

	router := storefrontserver.NewRouter(handlers, otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildCatalogService(cfg Config, db *gorm.DB, logger *slog.Logger, instruments *platformobservability.Instruments) (catalogports.Service, error) {
	source, err := catalogremote.NewClient(cfg.CatalogBaseURL)
	if err != nil {
		return nil, fmt.Errorf("build catalog source: %w", err)
	}

	var repo catalogports.Repository
	if db != nil {
		repo = catalogpostgres.NewRepository(db)
		logger.Info("catalog cache configured with postgres")
	} else {
		repo = catalogmemory.NewRepository()
	}

	service := catalogapp.NewService(source, repo,
		catalogapp.WithCacheWindow(cfg.CatalogCacheWindow),
	)
	return catalogobs.New(
		service,
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	), nil
}

func buildUserRepository(db *gorm.DB, logger *slog.Logger) usersports.Repository {
	if db != nil {
		logger.Info("user repository configured with postgres")
		return userspostgres.NewRepository(db)
	}
	return usersmemory.NewRepository()
}

// buildSessionStore picks the first available backend: Redis, then Postgres,
// then stateless JWT, and finally process memory.
func buildSessionStore(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) (usersports.SessionStore, func()) {
	if client, cleanup := platformredis.TryConnect(ctx, cfg.RedisAddr, logger); client != nil {
		logger.Info("session store configured with redis")
		return usersredis.NewSessionStore(client, cfg.SessionTTL), cleanup
	}
	if db != nil {
		logger.Info("session store configured with postgres")
		return userspostgres.NewSessionStore(db, cfg.SessionTTL), func() {}
	}
	if cfg.SessionSecret != "" {
		store, err := usersjwt.NewSessionStore(cfg.SessionSecret, cfg.SessionTTL)
		if err == nil {
			logger.Info("session store configured with stateless JWT tokens")
			return store, func() {}
		}
		logger.Warn("failed to build JWT session store, falling back to memory", slog.String("error", err.Error()))
	}
	logger.Warn("sessions are held in process memory and do not survive restarts")
	return usersmemory.NewSessionStore(), func() {}
}
