package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frudas24/eaglermobile/internal/capability"
)

var envKeys = []string{"LISTEN_ADDR", "LAYOUT_PATH", "STATIC_DIR", "LOG_LEVEL", "LOG_DEV", "TRACE_ENABLED", "TRACE_HISTORY"}

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestLoad_Defaults verifies defaults when nothing is configured.
func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	unsetEnv(t, envKeys...)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8788", cfg.ListenAddr)
	require.Equal(t, filepath.Join(dir, "layout.yaml"), cfg.LayoutPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.TraceEnabled)
	require.Equal(t, 256, cfg.TraceHistory)
}

// TestLoad_EnvFile verifies .env values apply but real env vars win.
func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	unsetEnv(t, envKeys...)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	env := "# comment\nexport LISTEN_ADDR=0.0.0.0:1\nLOG_LEVEL='DEBUG'\nTRACE_HISTORY=\"32\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 32, cfg.TraceHistory)
}

// TestLoad_RejectsBadHistory verifies TRACE_HISTORY validation.
func TestLoad_RejectsBadHistory(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("TRACE_HISTORY", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("TRACE_HISTORY", "lots")
	_, err = Load()
	require.Error(t, err)
}

// TestParseEnvLine verifies .env line parsing.
func TestParseEnvLine(t *testing.T) {
	k, v, ok := parseEnvLine(`  export KEY = "value=x"  `)
	require.True(t, ok)
	require.Equal(t, "KEY", k)
	require.Equal(t, "value=x", v)

	for _, line := range []string{"", "# x", "novalue", "=v"} {
		_, _, ok := parseEnvLine(line)
		require.False(t, ok, line)
	}
}

// TestParseShim_Defaults verifies an empty config object.
func TestParseShim_Defaults(t *testing.T) {
	cfg, err := ParseShim(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultShim(), cfg)
}

// TestParseShim_Values verifies every option is read.
func TestParseShim_Values(t *testing.T) {
	cfg, err := ParseShim(map[string]string{
		"mode":                "simulated",
		"traceURL":            "ws://192.168.1.5:8788/ws/trace",
		"layoutURL":           "http://192.168.1.5:8788/layout.yaml",
		"logLevel":            "DEBUG",
		"preventDefaultScope": "keyboard",
		"alertOnDesktop":      "false",
		"futureOption":        "x",
	})
	require.NoError(t, err)
	require.Equal(t, capability.ModeSimulated, cfg.Mode)
	require.Equal(t, "ws://192.168.1.5:8788/ws/trace", cfg.TraceURL)
	require.Equal(t, "http://192.168.1.5:8788/layout.yaml", cfg.LayoutURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, capability.ScopeKeyboard, cfg.PreventDefaultScope)
	require.False(t, cfg.AlertOnDesktop)
}

// TestParseShim_Rejects verifies invalid options fail.
func TestParseShim_Rejects(t *testing.T) {
	for _, values := range []map[string]string{
		{"mode": "sometimes"},
		{"preventDefaultScope": "mouse"},
		{"traceURL": "http://host/ws/trace"},
		{"layoutURL": "/layout.yaml"},
	} {
		_, err := ParseShim(values)
		require.Error(t, err, values)
	}
}
