package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/adithyasudev/entry-voucher-forge/internal/adapters/remote"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/handlers"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
	"github.com/adithyasudev/entry-voucher-forge/internal/platform/config"
	"github.com/adithyasudev/entry-voucher-forge/internal/repositories/database/pgsql"
	"github.com/adithyasudev/entry-voucher-forge/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Sales Voucher API
// @version 1.0
// @description Editing, validation, printing and submission of a sales voucher.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Amounts travel as JSON numbers, matching the voucher service's wire format.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	opts, cleanup, err := storeOptions(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize backend", slog.String("backend", string(cfg.Backend)), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	store := services.NewRecordStore(opts...)
	if cfg.SeedSampleItems {
		store.SetReferenceData(domain.SampleItems())
		logger.Info("Seeded sample item master", slog.Int("count", len(domain.SampleItems())))
	}
	if err := store.RefreshReferenceData(middleware.WithLogger(ctx, logger)); err != nil {
		// Not fatal: the lookup table keeps whatever was seeded.
		logger.Warn("Initial item master fetch failed", slog.String("error", err.Error()))
	}

	submitLimiter, err := middleware.NewMemoryLimiter(cfg.SubmitRateLimit)
	if err != nil {
		logger.Error("Failed to create submit rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, store, submitLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", string(cfg.Backend)))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// storeOptions wires the record store to the configured backend. The returned
// cleanup func releases any resources the backend holds.
func storeOptions(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]services.RecordStoreOption, func(), error) {
	switch cfg.Backend {
	case config.BackendPgsql:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			dbPool.Close()
			return nil, nil, err
		}

		repos := pgsql.NewRepositoryProvider(dbPool)
		if cfg.SeedSampleItems {
			if err := repos.Items.SaveItems(ctx, domain.SampleItems()); err != nil {
				dbPool.Close()
				return nil, nil, err
			}
		}
		return []services.RecordStoreOption{
			services.WithItemCatalog(repos.Items),
			services.WithVoucherGateway(repos.Vouchers),
		}, dbPool.Close, nil

	default:
		client := remote.NewClient(cfg.RemoteBaseURL, cfg.HTTPClientTimeout)
		logger.Info("Using remote voucher service", slog.String("base_url", cfg.RemoteBaseURL))
		return []services.RecordStoreOption{
			services.WithItemCatalog(client),
			services.WithVoucherGateway(client),
		}, func() {}, nil
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID"}
	if cfg.AllowsAnyOrigin() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}
