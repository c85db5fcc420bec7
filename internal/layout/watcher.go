package layout

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher keeps the layout at a path current, reloading it when the file
// changes. Invalid edits are logged and the last good layout is kept.
type Watcher struct {
	logger   *zap.Logger
	path     string
	debounce time.Duration
	onChange func(Layout)

	mu      sync.RWMutex
	current Layout
	watcher *fsnotify.Watcher
}

// NewWatcher loads the layout at path and prepares to watch it. onChange may
// be nil.
func NewWatcher(logger *zap.Logger, path string, onChange func(Layout)) (*Watcher, error) {
	l, err := Load(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	return &Watcher{
		logger:   logger,
		path:     path,
		debounce: defaultDebounce,
		onChange: onChange,
		current:  l,
		watcher:  fw,
	}, nil
}

// SetDebounce changes the quiet period before a reload. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Current returns the last successfully loaded layout.
func (w *Watcher) Current() Layout {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Start watches the layout's directory until ctx is done. Editors often
// replace files by rename, so the directory is watched rather than the file.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching layout", zap.String("path", w.path))

	debounce := time.NewTimer(w.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	go func() {
		defer debounce.Stop()
		for {
			select {
			case ev, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if w.relevant(ev) {
					w.logger.Debug("layout change detected", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
					debounce.Reset(w.debounce)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Error("layout watcher error", zap.Error(err))
			case <-debounce.C:
				w.reload()
			case <-ctx.Done():
				w.logger.Info("stopping layout watcher")
				return
			}
		}
	}()
	return nil
}

// Stop releases the underlying watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// relevant reports whether ev touches the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// reload reads the file and publishes it when valid.
func (w *Watcher) reload() {
	l, err := Load(w.path)
	if err != nil {
		w.logger.Warn("layout reload rejected", zap.Error(err))
		return
	}
	w.mu.Lock()
	w.current = l
	w.mu.Unlock()
	w.logger.Info("layout reloaded", zap.Int("controls", len(l.Controls)))
	if w.onChange != nil {
		w.onChange(l)
	}
}
