//go:build js && wasm

package dom

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/frudas24/eaglermobile/internal/trace"
)

const pendingLimit = 256

// ErrSinkClosed indicates the trace socket has closed.
var ErrSinkClosed = errors.New("trace socket closed")

// WebSocketSink streams trace messages over the browser WebSocket. Messages
// sent before the socket opens are queued, dropping the oldest beyond a
// fixed limit.
type WebSocketSink struct {
	ws    js.Value
	funcs []js.Func

	mu      sync.Mutex
	open    bool
	closed  bool
	pending [][]byte
}

var _ trace.Sink = (*WebSocketSink)(nil)

// NewWebSocketSink connects to url.
func NewWebSocketSink(url string) (sink *WebSocketSink, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open trace socket: %v", r)
		}
	}()
	s := &WebSocketSink{ws: js.Global().Get("WebSocket").New(url)}
	s.on("open", s.flush)
	s.on("close", s.markClosed)
	s.on("error", s.markClosed)
	return s, nil
}

func (s *WebSocketSink) on(name string, fn func()) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	s.funcs = append(s.funcs, f)
	s.ws.Call("addEventListener", name, f)
}

// Send encodes msg and writes it, or queues it until the socket opens.
func (s *WebSocketSink) Send(msg trace.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode trace message: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	if !s.open {
		if len(s.pending) == pendingLimit {
			s.pending = s.pending[1:]
		}
		s.pending = append(s.pending, data)
		return nil
	}
	s.ws.Call("send", string(data))
	return nil
}

// flush marks the socket open and writes queued messages.
func (s *WebSocketSink) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	for _, data := range s.pending {
		s.ws.Call("send", string(data))
	}
	s.pending = nil
}

func (s *WebSocketSink) markClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.pending = nil
}

// Close closes the socket and releases its callbacks.
func (s *WebSocketSink) Close() error {
	s.markClosed()
	s.ws.Call("close")
	for _, f := range s.funcs {
		f.Release()
	}
	s.funcs = nil
	return nil
}
