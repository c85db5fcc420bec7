// Package gesture translates touch sequences on the control surface into
// synthetic keyboard, pointer and wheel input.
package gesture

import (
	"errors"

	"github.com/frudas24/eaglermobile/internal/input"
)

// Point is a touch position in page coordinates.
type Point struct {
	X float64
	Y float64
}

// Handler receives the touch sequence of one control. Only the first active
// touch point of each DOM event is forwarded.
type Handler interface {
	TouchStart(p Point) error
	TouchMove(p Point) error
	TouchEnd() error
}

// Indicator is the visual state of an on-screen control.
type Indicator interface {
	SetActive(active bool)
	SetHidden(hidden bool)
}

// LockQuery reports whether simulated pointer lock is held.
type LockQuery interface {
	PointerLocked() bool
}

// Press emits the press or release of one key or button.
type Press func(state input.State) error

// KeyPress binds a Press to a key.
func KeyPress(em *input.Emitter, key string) Press {
	return func(state input.State) error {
		return em.Key(key, state)
	}
}

// ButtonPress binds a Press to a pointer button.
func ButtonPress(em *input.Emitter, button input.Button) Press {
	return func(state input.State) error {
		return em.Pointer(button, state)
	}
}

// Momentary holds a key or button for as long as the finger is down.
type Momentary struct {
	press Press
}

// NewMomentary returns a handler that presses on touch start and releases on touch end.
func NewMomentary(press Press) *Momentary {
	return &Momentary{press: press}
}

// TouchStart presses.
func (m *Momentary) TouchStart(Point) error {
	return m.press(input.Down)
}

// TouchMove does nothing.
func (m *Momentary) TouchMove(Point) error {
	return nil
}

// TouchEnd releases.
func (m *Momentary) TouchEnd() error {
	return m.press(input.Up)
}

// Combo presses several keys together, such as F+5 for the perspective toggle.
type Combo struct {
	presses []Press
}

// NewCombo returns a handler that presses in order and releases in reverse order.
func NewCombo(presses ...Press) *Combo {
	return &Combo{presses: presses}
}

// TouchStart presses every key, first to last.
func (c *Combo) TouchStart(Point) error {
	var errs []error
	for _, p := range c.presses {
		errs = append(errs, p(input.Down))
	}
	return errors.Join(errs...)
}

// TouchMove does nothing.
func (c *Combo) TouchMove(Point) error {
	return nil
}

// TouchEnd releases every key, last to first.
func (c *Combo) TouchEnd() error {
	var errs []error
	for i := len(c.presses) - 1; i >= 0; i-- {
		errs = append(errs, c.presses[i](input.Up))
	}
	return errors.Join(errs...)
}

// Scroll emits a single wheel step per tap.
type Scroll struct {
	em    *input.Emitter
	delta float64
}

// NewScroll returns a handler that scrolls by delta on touch start.
func NewScroll(em *input.Emitter, delta float64) *Scroll {
	return &Scroll{em: em, delta: delta}
}

// TouchStart scrolls once.
func (s *Scroll) TouchStart(Point) error {
	return s.em.Wheel(s.delta)
}

// TouchMove does nothing.
func (s *Scroll) TouchMove(Point) error {
	return nil
}

// TouchEnd does nothing; scrolling is single-shot.
func (s *Scroll) TouchEnd() error {
	return nil
}
