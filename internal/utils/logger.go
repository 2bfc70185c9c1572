package utils

import (
	"log/slog"
	"os"
)

type Logger = slog.Logger

// NewLogger returns the process logger: JSON at Info when APP_ENV=prod,
// text at Debug otherwise.
func NewLogger() *Logger {
	var handler slog.Handler
	if os.Getenv("APP_ENV") == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
