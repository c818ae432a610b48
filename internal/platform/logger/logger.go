package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. JSON output so log aggregation stays
// structured; level comes from VELOS_LOG_LEVEL with info as the default.
func New() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("VELOS_LOG_LEVEL") {
	case "debug", "DEBUG":
		level = slog.LevelDebug
	case "warn", "WARN":
		level = slog.LevelWarn
	case "error", "ERROR":
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
