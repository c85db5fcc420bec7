// Package testutil provides recording fakes shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/frudas24/eaglermobile/internal/input"
)

// Recorder implements input.Dispatcher and records dispatched events.
type Recorder struct {
	mu     sync.Mutex
	Events []input.Event
	// Err, when set, is returned by Dispatch after recording the event.
	Err error
}

// Ensure Recorder implements the interface.
var _ input.Dispatcher = (*Recorder)(nil)

// Dispatch records ev.
func (r *Recorder) Dispatch(ev input.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
	return r.Err
}

// Reset drops recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = nil
}

// Summary renders recorded events as short tokens such as "keydown:W",
// "mouseup:2", "wheel:-10" or "mousemove:3,4" for order assertions.
func (r *Recorder) Summary() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, Token(ev))
	}
	return out
}

// Token renders a single event in the Summary format.
func Token(ev input.Event) string {
	switch ev.Type {
	case input.TypeKeyDown, input.TypeKeyUp:
		return fmt.Sprintf("%s:%s", ev.Type, keyLabel(ev))
	case input.TypeMouseDown, input.TypeMouseUp:
		return fmt.Sprintf("%s:%d", ev.Type, ev.Button)
	case input.TypeWheel:
		return fmt.Sprintf("wheel:%g", ev.WheelDeltaY)
	case input.TypeMouseMove:
		return fmt.Sprintf("mousemove:%g,%g", ev.MovementX, ev.MovementY)
	default:
		return string(ev.Type)
	}
}

// keyLabel names named keys by name and characters by their key code, so
// "a" and "A" both render as "A".
func keyLabel(ev input.Event) string {
	if len([]rune(ev.Key)) > 1 {
		return ev.Key
	}
	return strings.ToUpper(string(rune(ev.KeyCode)))
}
