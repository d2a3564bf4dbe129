package main

import (
	"io"
	"log/slog"

	"schoolbag/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogger builds the process logger. The terminal belongs to the UI, so
// records go to cfg.File or are discarded.
func setupLogger(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(cfg.File, "")
	if err != nil {
		return nil, nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(f, opts)
	} else {
		handler = slog.NewTextHandler(f, opts)
	}
	return slog.New(handler), func() { _ = f.Close() }, nil
}
