// Package main starts the EaglerMobile shim server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/app"
	"github.com/frudas24/eaglermobile/internal/config"
	"github.com/frudas24/eaglermobile/internal/logging"
	"github.com/frudas24/eaglermobile/internal/web"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug {
		cfg.LogLevel = "debug"
		cfg.LogDev = true
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logStartup(logger, cfg)

	appInstance, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := appInstance.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, cfg.StaticDir)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(logger *zap.Logger, cfg config.Config) {
	logger.Info("EaglerMobile shim server starting")
	logEnvStatus(logger, cfg)
	logAssetStatus(logger, cfg.StaticDir)
	logger.Info("layout", zap.String("path", cfg.LayoutPath))
	if cfg.TraceEnabled {
		logger.Info("trace enabled", zap.Int("history", cfg.TraceHistory))
	} else {
		logger.Info("trace disabled")
	}
	logListenStatus(logger, cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus(logger *zap.Logger, cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		logger.Info("env check: ok", zap.String("path", envPath))
	} else {
		logger.Info("env check: missing", zap.String("path", envPath))
	}
}

// logAssetStatus reports whether the wasm bundle and its runtime are
// available from disk or the embedded set.
func logAssetStatus(logger *zap.Logger, staticDir string) {
	for _, name := range []string{"shim.wasm", "wasm_exec.js", "eaglermobile.user.js"} {
		if staticDir != "" && fileExists(filepath.Join(staticDir, name)) {
			logger.Info("asset check: ok (disk)", zap.String("file", name))
			continue
		}
		if embeddedExists(name) {
			logger.Info("asset check: ok (embedded)", zap.String("file", name))
			continue
		}
		logger.Warn("asset check: missing", zap.String("file", name), zap.String("hint", "run go generate ./internal/web"))
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(logger *zap.Logger, addr string) {
	logger.Info("listen", zap.String("addr", addr))
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	logger.Info("local url", zap.String("url", "http://"+net.JoinHostPort(host, port)))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// embeddedExists reports whether the embedded static set contains name.
func embeddedExists(name string) bool {
	static, err := web.StaticFS()
	if err != nil {
		return false
	}
	_, err = fs.Stat(static, name)
	return err == nil
}
