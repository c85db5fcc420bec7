package gesture

import (
	"sync"
	"time"

	"github.com/frudas24/eaglermobile/internal/clock"
	"github.com/frudas24/eaglermobile/internal/input"
)

// DefaultHoldDuration is how long a press must last to latch.
const DefaultHoldDuration = time.Second

// LockState is the phase of a hold-to-lock control.
type LockState int

const (
	// LockIdle is released and not latched.
	LockIdle LockState = iota
	// LockPressed is held, waiting to see whether the press latches.
	LockPressed
	// LockLatched stays engaged after the finger lifts.
	LockLatched
	// LockUnlatching is a press on a latched control; lifting releases it.
	LockUnlatching
)

// String returns the phase name.
func (s LockState) String() string {
	switch s {
	case LockPressed:
		return "pressed"
	case LockLatched:
		return "latched"
	case LockUnlatching:
		return "unlatching"
	default:
		return "idle"
	}
}

// onPress returns the phase after a touch start.
func (s LockState) onPress() LockState {
	switch s {
	case LockIdle:
		return LockPressed
	case LockLatched:
		return LockUnlatching
	default:
		return s
	}
}

// onHold returns the phase after the hold timer fires.
func (s LockState) onHold() LockState {
	switch s {
	case LockPressed:
		return LockLatched
	case LockUnlatching:
		return LockPressed
	default:
		return s
	}
}

// onRelease returns the phase after a touch end.
func (s LockState) onRelease() LockState {
	if s == LockLatched {
		return LockLatched
	}
	return LockIdle
}

// HoldLock is a momentary control that latches when held past the hold
// duration, such as crouch or sprint. A latched control is released by the
// next tap.
type HoldLock struct {
	mu        sync.Mutex
	press     Press
	indicator Indicator
	clock     clock.Clock
	hold      time.Duration

	state LockState
	timer clock.Timer
	gen   uint64
}

// NewHoldLock returns a hold-to-lock handler driving press.
func NewHoldLock(press Press, indicator Indicator, clk clock.Clock, hold time.Duration) *HoldLock {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HoldLock{
		press:     press,
		indicator: indicator,
		clock:     clk,
		hold:      hold,
	}
}

// TouchStart arms the hold timer and presses. The press is dispatched after
// the lock is dropped, since page listeners may re-enter the handler.
func (h *HoldLock) TouchStart(Point) error {
	h.mu.Lock()
	h.state = h.state.onPress()
	h.stopTimerLocked()
	gen := h.gen
	h.timer = h.clock.AfterFunc(h.hold, func() { h.onTimer(gen) })
	h.mu.Unlock()

	return h.press(input.Down)
}

// TouchMove does nothing.
func (h *HoldLock) TouchMove(Point) error {
	return nil
}

// TouchEnd cancels the hold timer and releases unless latched.
func (h *HoldLock) TouchEnd() error {
	h.mu.Lock()
	h.stopTimerLocked()
	prev := h.state
	h.state = prev.onRelease()
	h.mu.Unlock()

	if prev == LockLatched {
		return nil
	}
	err := h.press(input.Up)
	h.indicator.SetActive(false)
	return err
}

// State returns the current phase.
func (h *HoldLock) State() LockState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Engaged reports whether the control is latched.
func (h *HoldLock) Engaged() bool {
	return h.State() == LockLatched
}

// onTimer commits the hold if the press that armed it is still current.
func (h *HoldLock) onTimer(gen uint64) {
	h.mu.Lock()
	if gen != h.gen {
		h.mu.Unlock()
		return
	}
	h.timer = nil
	prev := h.state
	h.state = prev.onHold()
	next := h.state
	h.mu.Unlock()

	if next != prev {
		h.indicator.SetActive(next == LockLatched)
	}
}

// stopTimerLocked cancels the pending timer and invalidates late callbacks.
// h.mu must be held.
func (h *HoldLock) stopTimerLocked() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.gen++
}
