package trace

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/input"
	"github.com/frudas24/eaglermobile/internal/session"
)

// Sink delivers trace messages, typically over a websocket.
type Sink interface {
	Send(msg Message) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(msg Message) error

// Send calls f(msg).
func (f SinkFunc) Send(msg Message) error {
	return f(msg)
}

// Tracer stamps messages with a session id and a sequence number.
type Tracer struct {
	sink    Sink
	session string
	now     func() time.Time

	mu  sync.Mutex
	seq uint64
}

// NewTracer returns a tracer with a fresh session id.
func NewTracer(sink Sink) *Tracer {
	return &Tracer{sink: sink, session: uuid.NewString(), now: time.Now}
}

// Session returns the session id carried by every message.
func (t *Tracer) Session() string {
	return t.session
}

// Hello announces the session.
func (t *Tracer) Hello(userAgent string) error {
	return t.send(Message{T: KindHello, UserAgent: userAgent})
}

// Event records a dispatched event.
func (t *Tracer) Event(ev input.Event) error {
	return t.send(Message{T: KindEvent, Event: &ev})
}

// State records a session snapshot.
func (t *Tracer) State(snap session.Snapshot) error {
	return t.send(Message{T: KindState, State: &snap})
}

// send stamps msg and hands it to the sink.
func (t *Tracer) send(msg Message) error {
	t.mu.Lock()
	t.seq++
	msg.Seq = t.seq
	t.mu.Unlock()
	msg.Session = t.session
	msg.At = t.now().UTC()
	return t.sink.Send(msg)
}

// Tee returns a dispatcher that delivers to inner and then records the event.
// Trace failures are logged and never reach the caller.
func Tee(inner input.Dispatcher, tracer *Tracer, logger *zap.Logger) input.Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return input.DispatcherFunc(func(ev input.Event) error {
		err := inner.Dispatch(ev)
		if terr := tracer.Event(ev); terr != nil {
			logger.Debug("trace send failed", zap.String("type", string(ev.Type)), zap.Error(terr))
		}
		return err
	})
}
