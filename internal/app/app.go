// Package app wires the layout, trace hub and static assets into the dev server.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/config"
	"github.com/frudas24/eaglermobile/internal/layout"
	"github.com/frudas24/eaglermobile/internal/tracehub"
)

// App coordinates the HTTP API, the trace websocket and the layout watcher.
type App struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	layouts  *layout.Watcher
	hub      *tracehub.Hub
}

// New creates the application. The layout file is seeded with the default
// layout when it does not exist yet.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.LayoutPath == "" {
		return nil, errors.New("layout path is required")
	}
	if err := seedLayout(cfg.LayoutPath); err != nil {
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	watcher, err := layout.NewWatcher(logger.Named("layout"), cfg.LayoutPath, nil)
	if err != nil {
		return nil, err
	}
	app.layouts = watcher

	if cfg.TraceEnabled {
		app.hub = tracehub.New(logger.Named("trace"), cfg.TraceHistory, app.registry)
	}
	return app, nil
}

// Start begins watching the layout file until ctx is done.
func (a *App) Start(ctx context.Context) error {
	return a.layouts.Start(ctx)
}

// Stop releases the layout watcher.
func (a *App) Stop() error {
	return a.layouts.Stop()
}

// Layout returns the current layout.
func (a *App) Layout() layout.Layout {
	return a.layouts.Current()
}

// Trace returns the trace hub, or nil when tracing is disabled.
func (a *App) Trace() *tracehub.Hub {
	return a.hub
}

// seedLayout writes the default layout when path does not exist.
func seedLayout(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}
	if err := os.WriteFile(path, layout.DefaultYAML(), 0o600); err != nil {
		return fmt.Errorf("seed layout: %w", err)
	}
	return nil
}
