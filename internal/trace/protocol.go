// Package trace defines the messages the shim streams to the dev server and
// the tracer that produces them.
package trace

import (
	"errors"
	"fmt"
	"time"

	"github.com/frudas24/eaglermobile/internal/input"
	"github.com/frudas24/eaglermobile/internal/session"
)

// Kind is the message discriminator carried in "t".
type Kind string

const (
	// KindHello opens a trace session.
	KindHello Kind = "hello"
	// KindEvent carries one dispatched synthetic event.
	KindEvent Kind = "event"
	// KindState carries a session snapshot.
	KindState Kind = "state"
)

// ErrInvalidMessage indicates a message that fails Validate.
var ErrInvalidMessage = errors.New("invalid trace message")

// Message is a trace websocket payload.
type Message struct {
	T         Kind              `json:"t"`
	Session   string            `json:"session"`
	Seq       uint64            `json:"seq"`
	At        time.Time         `json:"at"`
	Event     *input.Event      `json:"event,omitempty"`
	State     *session.Snapshot `json:"state,omitempty"`
	UserAgent string            `json:"userAgent,omitempty"`
}

// Validate checks the discriminator and its payload.
func (m Message) Validate() error {
	if m.Session == "" {
		return fmt.Errorf("%w: missing session", ErrInvalidMessage)
	}
	switch m.T {
	case KindHello:
		return nil
	case KindEvent:
		if m.Event == nil {
			return fmt.Errorf("%w: event message without event", ErrInvalidMessage)
		}
	case KindState:
		if m.State == nil {
			return fmt.Errorf("%w: state message without state", ErrInvalidMessage)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, m.T)
	}
	return nil
}
