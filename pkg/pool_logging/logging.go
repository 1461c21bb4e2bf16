package pool_logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdcgo/pool_service/configs"
)

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewHandler(w io.Writer, cfg *configs.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// SetLoggingDefault installs the configured handler as the slog default,
// the std log package writes through it as well.
func SetLoggingDefault(cfg *configs.LogConfig) *slog.Logger {
	logger := slog.New(NewHandler(os.Stdout, cfg))
	slog.SetDefault(logger)
	return logger
}
