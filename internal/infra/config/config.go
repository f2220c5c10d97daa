package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	Locations LocationsConfig `yaml:"locations"`
	Trending  TrendingConfig  `yaml:"trending"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// LogConfig selects the slog level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// LocationsConfig selects where the solar hours table comes from.
// A non-empty Postgres DSN takes precedence over the CSV file.
type LocationsConfig struct {
	CSVPath  string         `yaml:"csvPath"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	Table    string `yaml:"table"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// TrendingConfig controls the popular-locations counters.
type TrendingConfig struct {
	TopLimit int          `yaml:"topLimit"`
	Valkey   ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the trending store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// Load reads configuration from a YAML file, an optional .env file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(envFilePath()); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func envFilePath() string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

// loadDotEnv never overrides variables already present in the process environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOCATIONS_CSV_PATH"); v != "" {
		cfg.Locations.CSVPath = v
	}
	if v := os.Getenv("LOCATIONS_POSTGRES_DSN"); v != "" {
		cfg.Locations.Postgres.DSN = v
	}
	if v := os.Getenv("LOCATIONS_POSTGRES_TABLE"); v != "" {
		cfg.Locations.Postgres.Table = v
	}
	if v := os.Getenv("LOCATIONS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Locations.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("LOCATIONS_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Locations.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("TRENDING_TOP_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Trending.TopLimit = parsed
		}
	}
	if v := os.Getenv("TRENDING_VALKEY_ENABLED"); v != "" {
		cfg.Trending.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("TRENDING_VALKEY_ADDR"); v != "" {
		cfg.Trending.Valkey.Addr = v
	}
	if v := os.Getenv("TRENDING_VALKEY_PREFIX"); v != "" {
		cfg.Trending.Valkey.Prefix = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 100 * time.Millisecond,
				Exclude: []string{
					"/api/v1/estimates/report",
				},
			},
		},
		Log: LogConfig{Level: "info"},
		Locations: LocationsConfig{
			CSVPath: "data/solar_hours.csv",
			Postgres: PostgresConfig{
				Table:    "solar_locations",
				MaxConns: 4,
			},
		},
		Trending: TrendingConfig{
			TopLimit: 10,
			Valkey: ValkeyConfig{
				Prefix: "solar",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if strings.TrimSpace(c.Locations.CSVPath) == "" && strings.TrimSpace(c.Locations.Postgres.DSN) == "" {
		return errors.New("locations.csvPath or locations.postgres.dsn must be set")
	}
	if c.Locations.Postgres.DSN != "" && !validIdentifier(c.Locations.Postgres.Table) {
		return errors.New("locations.postgres.table must be a plain SQL identifier")
	}
	if c.Trending.TopLimit <= 0 {
		return errors.New("trending.topLimit must be positive")
	}
	if c.Trending.Valkey.Enabled && strings.TrimSpace(c.Trending.Valkey.Addr) == "" {
		return errors.New("trending.valkey.addr cannot be empty when valkey is enabled")
	}
	return nil
}

// validIdentifier accepts [A-Za-z_][A-Za-z0-9_]* so the table name can be interpolated into SQL.
func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
