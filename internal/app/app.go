package app

import (
	"io"
	"log/slog"
)

// App encapsulates the converter's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Rendered
// documents go to outW; log output goes to logW so the document stream
// stays clean.
func New(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}
