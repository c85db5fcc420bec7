// Package config loads environment configuration for the shim server and
// page-supplied options for the shim itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr   = "0.0.0.0:8788"
	defaultDataDir      = "./data"
	defaultLogLevel     = "info"
	defaultTraceEnabled = true
	defaultTraceHistory = 256
)

// Config holds runtime configuration values for the shim server.
type Config struct {
	ListenAddr   string
	DataDir      string
	LayoutPath   string
	StaticDir    string
	LogLevel     string
	LogDev       bool
	TraceEnabled bool
	TraceHistory int
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		DataDir:      defaultDataDir,
		LogLevel:     defaultLogLevel,
		TraceEnabled: defaultTraceEnabled,
		TraceHistory: defaultTraceHistory,
	}

	if err := loadEnvFile(filepath.Join(envString("DATA_DIR", cfg.DataDir), ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.LayoutPath = envString("LAYOUT_PATH", filepath.Join(cfg.DataDir, "layout.yaml"))
	cfg.StaticDir = envString("STATIC_DIR", "")
	cfg.LogLevel = strings.ToLower(envString("LOG_LEVEL", cfg.LogLevel))
	cfg.LogDev = envBool("LOG_DEV", cfg.LogDev)
	cfg.TraceEnabled = envBool("TRACE_ENABLED", cfg.TraceEnabled)

	history, err := envInt("TRACE_HISTORY", cfg.TraceHistory)
	if err != nil {
		return Config{}, err
	}
	if history <= 0 {
		return Config{}, fmt.Errorf("TRACE_HISTORY must be > 0")
	}
	cfg.TraceHistory = history

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	return parseBool(os.Getenv(key), def)
}

// parseBool reads the usual truthy and falsy spellings, falling back to def.
func parseBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file. Variables already set
// in the environment win.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
