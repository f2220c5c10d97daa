package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/solar-calculator/internal/bootstrap"
	"github.com/yanqian/solar-calculator/internal/infra/config"
	"github.com/yanqian/solar-calculator/internal/infra/locationrepo"
	"github.com/yanqian/solar-calculator/internal/infra/trendingstore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvideLocationRepositoryUsesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.csv")
	require.NoError(t, os.WriteFile(path, []byte("State,City,Year Avg.,Summer Avg.,Winter Avg.\nTX,Austin,5.5,6.25,4.47\n"), 0o600))
	cfg := &config.Config{Locations: config.LocationsConfig{CSVPath: path}}

	repo, err := provideLocationRepository(cfg, testLogger(), bootstrap.NewCloser())
	require.NoError(t, err)
	require.IsType(t, &locationrepo.MemoryRepository{}, repo)
}

func TestProvideLocationRepositoryBadDSNFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.csv")
	require.NoError(t, os.WriteFile(path, []byte("State,City,Year Avg.,Summer Avg.,Winter Avg.\nTX,Austin,5.5,6.25,4.47\n"), 0o600))
	cfg := &config.Config{Locations: config.LocationsConfig{
		CSVPath:  path,
		Postgres: config.PostgresConfig{DSN: "not a dsn ::", Table: "solar_locations"},
	}}

	repo, err := provideLocationRepository(cfg, testLogger(), bootstrap.NewCloser())
	require.NoError(t, err)
	require.IsType(t, &locationrepo.MemoryRepository{}, repo)
}

func TestProvideLocationRepositoryMissingCSV(t *testing.T) {
	cfg := &config.Config{Locations: config.LocationsConfig{CSVPath: filepath.Join(t.TempDir(), "missing.csv")}}

	_, err := provideLocationRepository(cfg, testLogger(), bootstrap.NewCloser())
	require.Error(t, err)
}

func TestProvideTrendingStoreDefaultsToMemory(t *testing.T) {
	store := provideTrendingStore(&config.Config{}, testLogger(), bootstrap.NewCloser())
	require.IsType(t, &trendingstore.MemoryStore{}, store)
}

func TestBuildValkeyOptions(t *testing.T) {
	opt, err := buildValkeyOptions("localhost:6379")
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	opt, err = buildValkeyOptions("redis://cache.internal:6380/0")
	require.NoError(t, err)
	require.Equal(t, []string{"cache.internal:6380"}, opt.InitAddress)
}
