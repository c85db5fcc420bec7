package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/frudas24/eaglermobile/internal/capability"
)

// Shim holds the options a page passes to the shim through window.eaglerMobile.
type Shim struct {
	Mode                capability.Mode
	TraceURL            string
	LayoutURL           string
	LogLevel            string
	PreventDefaultScope capability.Scope
	AlertOnDesktop      bool
}

// DefaultShim returns the options used when the page supplies none.
func DefaultShim() Shim {
	return Shim{
		Mode:                capability.ModeAuto,
		LogLevel:            "warn",
		PreventDefaultScope: capability.ScopeAll,
		AlertOnDesktop:      true,
	}
}

// ParseShim reads shim options from string values. Unknown keys are ignored
// so newer pages keep working with older shims.
func ParseShim(values map[string]string) (Shim, error) {
	cfg := DefaultShim()

	mode, err := capability.ParseMode(values["mode"])
	if err != nil {
		return Shim{}, err
	}
	cfg.Mode = mode

	scope, err := capability.ParseScope(values["preventDefaultScope"])
	if err != nil {
		return Shim{}, err
	}
	cfg.PreventDefaultScope = scope

	if cfg.TraceURL, err = parseURL("traceURL", values["traceURL"], "ws", "wss"); err != nil {
		return Shim{}, err
	}
	if cfg.LayoutURL, err = parseURL("layoutURL", values["layoutURL"], "http", "https"); err != nil {
		return Shim{}, err
	}
	if lvl := strings.TrimSpace(values["logLevel"]); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}
	cfg.AlertOnDesktop = parseBool(values["alertOnDesktop"], cfg.AlertOnDesktop)
	return cfg, nil
}

// parseURL validates an optional absolute URL with one of the given schemes.
func parseURL(key, raw string, schemes ...string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	for _, s := range schemes {
		if u.Scheme == s && u.Host != "" {
			return raw, nil
		}
	}
	return "", fmt.Errorf("%s: %q must be an absolute %s URL", key, raw, strings.Join(schemes, "/"))
}
