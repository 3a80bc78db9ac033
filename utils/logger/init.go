package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	// Usable before InitLogger runs (tests, CLI setup).
	Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// InitLogger builds the process logger from LOG_LEVEL / LOG_FORMAT style settings
// and installs it as the slog default.
func InitLogger(level, format string) *slog.Logger {
	Logger = slog.New(newHandler(os.Stdout, level, format))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", parseLevel(level).String(), "format", format)

	return Logger
}

func newHandler(w io.Writer, level, format string) slog.Handler {
	options := &slog.HandlerOptions{Level: parseLevel(level)}

	var base slog.Handler
	if strings.EqualFold(format, "json") {
		base = slog.NewJSONHandler(w, options)
	} else {
		base = slog.NewTextHandler(w, options)
	}

	// trace_id/span_id are attached regardless of the output format
	return NewTraceContextHandler(base)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
