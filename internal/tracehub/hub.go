// Package tracehub receives trace streams from shims and keeps a short
// per-session history for inspection.
package tracehub

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/trace"
)

const typeInvalid = "invalid"

// Hub accepts trace websockets and stores recent messages per session.
type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader
	history  int

	mu       sync.Mutex
	sessions map[string]*ring

	events *prometheus.CounterVec
	conns  prometheus.Gauge
}

// New creates a hub keeping history messages per session. Metrics are
// registered with reg.
func New(logger *zap.Logger, history int, reg prometheus.Registerer) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	if history <= 0 {
		history = 1
	}
	factory := promauto.With(reg)
	return &Hub{
		logger:  logger,
		history: history,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		sessions: make(map[string]*ring),
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eaglermobile_trace_events_total",
				Help: "Trace messages received by type",
			},
			[]string{"type"},
		),
		conns: factory.NewGauge(prometheus.GaugeOpts{
			Name: "eaglermobile_trace_connections",
			Help: "Open trace websocket connections",
		}),
	}
}

// ServeHTTP upgrades the request and reads trace messages until the socket closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("trace upgrade failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	h.conns.Inc()
	defer h.conns.Dec()
	remote := r.RemoteAddr
	h.logger.Info("trace connected", zap.String("remote", remote))

	for {
		var msg trace.Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("trace read failed", zap.String("remote", remote), zap.Error(err))
			}
			h.logger.Info("trace disconnected", zap.String("remote", remote))
			return
		}
		if err := h.Record(msg); err != nil {
			h.logger.Warn("trace message dropped", zap.String("remote", remote), zap.Error(err))
		}
	}
}

// Record validates msg and stores it in its session history.
func (h *Hub) Record(msg trace.Message) error {
	if err := msg.Validate(); err != nil {
		h.events.WithLabelValues(typeInvalid).Inc()
		return err
	}
	h.events.WithLabelValues(string(msg.T)).Inc()

	h.mu.Lock()
	r, ok := h.sessions[msg.Session]
	if !ok {
		r = newRing(h.history)
		h.sessions[msg.Session] = r
	}
	r.push(msg)
	h.mu.Unlock()

	fields := []zap.Field{
		zap.String("session", msg.Session),
		zap.String("t", string(msg.T)),
		zap.Uint64("seq", msg.Seq),
	}
	switch {
	case msg.Event != nil:
		fields = append(fields, zap.String("event", string(msg.Event.Type)))
		if msg.Event.IsKey() {
			fields = append(fields, zap.String("key", msg.Event.Key))
		}
	case msg.UserAgent != "":
		fields = append(fields, zap.String("userAgent", msg.UserAgent))
	}
	h.logger.Debug("trace", fields...)
	return nil
}

// Recent returns the stored messages of a session, oldest first.
func (h *Hub) Recent(session string) ([]trace.Message, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.sessions[session]
	if !ok {
		return nil, false
	}
	return r.items(), true
}

// Sessions returns the known session ids in sorted order.
func (h *Hub) Sessions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// HandleRecent serves recent messages for ?session=, or the session list when
// no session is given.
func (h *Hub) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("session")
	if id == "" {
		writeJSON(w, http.StatusOK, map[string]any{"sessions": h.Sessions()})
		return
	}
	msgs, ok := h.Recent(id)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session": id,
		"events":  msgs,
		"at":      time.Now().UTC(),
	})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
