package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/yanqian/solar-calculator/internal/infra/config"
)

// New constructs a JSON slog logger for the service. LOG_LEVEL wins over the configured level.
func New(cfg *config.Config) *slog.Logger {
	raw := cfg.Log.Level
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		raw = v
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(raw)})
	return slog.New(handler).With("service", "solar-calculator")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
