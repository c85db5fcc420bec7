package app

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/layout"
	"github.com/frudas24/eaglermobile/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/layout.yaml", a.handleLayout)
	mux.HandleFunc("/healthz", a.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	if a.hub != nil {
		mux.Handle("/ws/trace", a.hub)
		mux.HandleFunc("/api/trace", a.hub.HandleRecent)
	}
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", allowAnyOrigin(staticFileServer(staticDir, a.logger)))
}

// allowAnyOrigin lets pages on the game's origin fetch the loader, the wasm
// runtime and the bundle.
func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type healthResponse struct {
	OK       bool `json:"ok"`
	Controls int  `json:"controls"`
	Trace    bool `json:"trace"`
}

// handleLayout serves the current layout as YAML.
func (a *App) handleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := layout.Encode(a.Layout())
	if err != nil {
		a.logger.Error("encode layout failed", zap.Error(err))
		http.Error(w, "layout unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(data)
}

// handleHealth reports liveness and the loaded layout size.
func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		OK:       true,
		Controls: len(a.Layout().Controls),
		Trace:    a.hub != nil,
	})
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string, logger *zap.Logger) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			logger.Info("serving static assets from disk", zap.String("dir", staticDir))
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		logger.Error("static assets unavailable", zap.Error(err))
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
