package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/solar-calculator/internal/bootstrap"
	"github.com/yanqian/solar-calculator/internal/domain/estimator"
	"github.com/yanqian/solar-calculator/internal/domain/location"
	"github.com/yanqian/solar-calculator/internal/domain/trending"
	"github.com/yanqian/solar-calculator/internal/infra/config"
	"github.com/yanqian/solar-calculator/internal/infra/locationrepo"
	"github.com/yanqian/solar-calculator/internal/infra/trendingstore"
)

func provideEstimatorConfig(cfg *config.Config) estimator.Config {
	return estimator.Config{
		TopLocations: cfg.Trending.TopLimit,
	}
}

// provideLocationRepository prefers Postgres when a DSN is set and falls back to the CSV table.
func provideLocationRepository(cfg *config.Config, logger *slog.Logger, closer *bootstrap.Closer) (location.Repository, error) {
	dsn := strings.TrimSpace(cfg.Locations.Postgres.DSN)
	if dsn == "" {
		return loadCSVRepository(cfg, logger)
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using csv repository", "error", err)
		return loadCSVRepository(cfg, logger)
	}
	if cfg.Locations.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Locations.Postgres.MaxConns
	}
	if cfg.Locations.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Locations.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using csv repository", "error", err)
		return loadCSVRepository(cfg, logger)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using csv repository", "error", err)
		pool.Close()
		return loadCSVRepository(cfg, logger)
	}
	closer.Add(pool.Close)
	logger.Info("location postgres repository enabled", "table", cfg.Locations.Postgres.Table)
	return locationrepo.NewPostgresRepository(pool, cfg.Locations.Postgres.Table), nil
}

func loadCSVRepository(cfg *config.Config, logger *slog.Logger) (location.Repository, error) {
	repo, err := locationrepo.LoadCSVFile(cfg.Locations.CSVPath)
	if err != nil {
		return nil, err
	}
	logger.Info("location csv repository loaded", "path", cfg.Locations.CSVPath, "rows", repo.Len())
	return repo, nil
}

func provideTrendingStore(cfg *config.Config, logger *slog.Logger, closer *bootstrap.Closer) trending.Store {
	if cfg.Trending.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Trending.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return trendingstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return trendingstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			closer.Add(client.Close)
			logger.Info("trending valkey store enabled", "addr", cfg.Trending.Valkey.Addr)
			return trendingstore.NewValkeyStore(client, cfg.Trending.Valkey.Prefix)
		}
	}
	return trendingstore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
