package observability

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON logger writing to stdout.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
