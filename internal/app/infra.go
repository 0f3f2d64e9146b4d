package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/glider_backend/config"
	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/pkg/coingecko"
	"github.com/Alijeyrad/glider_backend/pkg/database"
	"github.com/Alijeyrad/glider_backend/pkg/email"
	"github.com/Alijeyrad/glider_backend/pkg/observability"
	redispkg "github.com/Alijeyrad/glider_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideLogger),
	fx.Provide(ProvideDatabase),
	fx.Provide(ProvideRepoClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideMetrics),
	fx.Provide(ProvideCoinGeckoClient),
)

// ProvideLogger hands out the process logger installed by the command.
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideDatabase opens the store and brings the schema up to date. Failing
// to create the data directory aborts start-up.
func ProvideDatabase(lc fx.Lifecycle, cfg *config.Config) (*database.DB, error) {
	db, err := database.OpenFromCentral(cfg.Database)
	if err != nil {
		return nil, err
	}

	applied, err := database.Migrate(context.Background(), db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Info("database ready", "path", db.Config().Path(), "migrations_applied", applied)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing database")
			return db.Close()
		},
	})
	return db, nil
}

func ProvideRepoClient(db *database.DB) *repo.Client {
	return repo.NewClient(db)
}

// ProvideRedis returns nil when no address is configured; the rate limiter
// then keeps its counters in memory.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if errors.Is(err, redispkg.ErrNotConfigured) {
		slog.Info("redis not configured, rate limits are per process")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	client, err := email.NewFromCentral(cfg.Email)
	if err != nil {
		return nil, err
	}
	if !client.Enabled() {
		slog.Warn("email credentials not set, signup notifications will not be sent")
	} else if cfg.Email.AdminAddress == "" {
		slog.Warn("admin address not set, using sender address for signup alerts")
	}
	return client, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

type metricsParams struct {
	fx.In

	// Requested only so counters are created after the meter provider is set.
	OTel *observability.Provider `optional:"true"`
}

func ProvideMetrics(_ metricsParams) (*observability.Metrics, error) {
	return observability.NewMetrics()
}

func ProvideCoinGeckoClient(cfg *config.Config) *coingecko.Client {
	return coingecko.New(cfg.Prices)
}
