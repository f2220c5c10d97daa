package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "data/solar_hours.csv", cfg.Locations.CSVPath)
	require.Equal(t, 10, cfg.Trending.TopLimit)
	require.False(t, cfg.Trending.Valkey.Enabled)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  writeTimeout: 3s
locations:
  csvPath: /srv/hours.csv
trending:
  topLimit: 5
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TRENDING_TOP_LIMIT", "7")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 3*time.Second, cfg.HTTP.WriteTimeout)
	require.Equal(t, "/srv/hours.csv", cfg.Locations.CSVPath)
	require.Equal(t, 7, cfg.Trending.TopLimit)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOCATIONS_CSV_PATH", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOCATIONS_CSV_PATH=/env/hours.csv\n"), 0o600))
	// godotenv.Load does not override variables that are already set, even when empty.
	require.NoError(t, os.Unsetenv("LOCATIONS_CSV_PATH"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/env/hours.csv", cfg.Locations.CSVPath)
	require.NoError(t, os.Unsetenv("LOCATIONS_CSV_PATH"))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":     func(c *Config) { c.HTTP.Address = "" },
		"no location data":  func(c *Config) { c.Locations.CSVPath = "" },
		"bad table name":    func(c *Config) { c.Locations.Postgres.DSN = "postgres://x"; c.Locations.Postgres.Table = "t; drop" },
		"valkey no addr":    func(c *Config) { c.Trending.Valkey.Enabled = true },
		"zero top limit":    func(c *Config) { c.Trending.TopLimit = 0 },
		"zero rate per min": func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, defaultConfig().Validate())
}

func TestValidIdentifier(t *testing.T) {
	require.True(t, validIdentifier("solar_locations"))
	require.True(t, validIdentifier("_t1"))
	require.False(t, validIdentifier("1table"))
	require.False(t, validIdentifier("public.solar"))
	require.False(t, validIdentifier(""))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir on older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
