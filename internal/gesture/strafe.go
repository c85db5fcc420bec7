package gesture

import (
	"errors"

	"github.com/frudas24/eaglermobile/internal/input"
)

// Strafe is the side a forward drag is currently strafing to.
type Strafe int

const (
	// StrafeNone is the neutral band.
	StrafeNone Strafe = iota
	// StrafeLeft holds the left strafe key.
	StrafeLeft
	// StrafeRight holds the right strafe key.
	StrafeRight
)

// String returns the side name.
func (s Strafe) String() string {
	switch s {
	case StrafeLeft:
		return "left"
	case StrafeRight:
		return "right"
	default:
		return "none"
	}
}

// ForwardStrafeKeys names the keys driven by the forward control.
type ForwardStrafeKeys struct {
	Forward string
	Left    string
	Right   string
}

// ForwardStrafe holds forward while the finger is down and strafes when the
// finger slides sideways past a threshold measured from the touch-down point.
type ForwardStrafe struct {
	em        *input.Emitter
	keys      ForwardStrafeKeys
	threshold float64
	height    func() float64

	forward Indicator
	left    Indicator
	right   Indicator

	origin   Point
	tracking bool
	side     Strafe
}

// NewForwardStrafe returns a forward/strafe handler. threshold is a fraction of
// the viewport height returned by height.
func NewForwardStrafe(em *input.Emitter, keys ForwardStrafeKeys, threshold float64, height func() float64, forward, left, right Indicator) *ForwardStrafe {
	return &ForwardStrafe{
		em:        em,
		keys:      keys,
		threshold: threshold,
		height:    height,
		forward:   forward,
		left:      left,
		right:     right,
	}
}

// TouchStart presses forward, reveals the strafe indicators and records the origin.
func (f *ForwardStrafe) TouchStart(p Point) error {
	err := f.em.Key(f.keys.Forward, input.Down)
	f.left.SetHidden(false)
	f.right.SetHidden(false)
	f.forward.SetActive(true)
	f.origin = p
	f.tracking = true
	return err
}

// TouchMove strafes according to the cumulative horizontal displacement.
func (f *ForwardStrafe) TouchMove(p Point) error {
	if !f.tracking {
		f.origin = p
		f.tracking = true
	}
	dx := p.X - f.origin.X
	limit := f.threshold * f.height()
	switch {
	case dx > limit:
		return f.setSide(StrafeRight)
	case dx < -limit:
		return f.setSide(StrafeLeft)
	default:
		return f.setSide(StrafeNone)
	}
}

// TouchEnd releases forward and both strafe keys regardless of the last side.
func (f *ForwardStrafe) TouchEnd() error {
	err := errors.Join(
		f.em.Key(f.keys.Forward, input.Up),
		f.em.Key(f.keys.Right, input.Up),
		f.em.Key(f.keys.Left, input.Up),
	)
	f.left.SetActive(false)
	f.right.SetActive(false)
	f.left.SetHidden(true)
	f.right.SetHidden(true)
	f.forward.SetActive(false)
	f.side = StrafeNone
	f.tracking = false
	f.origin = Point{}
	return err
}

// Side returns the current strafe side.
func (f *ForwardStrafe) Side() Strafe {
	return f.side
}

// setSide releases the old strafe key before pressing the new one so both are
// never held together.
func (f *ForwardStrafe) setSide(want Strafe) error {
	if want == f.side {
		return nil
	}
	var errs []error
	if f.side != StrafeNone {
		errs = append(errs, f.em.Key(f.keyFor(f.side), input.Up))
	}
	if want != StrafeNone {
		errs = append(errs, f.em.Key(f.keyFor(want), input.Down))
	}
	f.side = want
	f.left.SetActive(want == StrafeLeft)
	f.right.SetActive(want == StrafeRight)
	return errors.Join(errs...)
}

// keyFor returns the key bound to a strafe side.
func (f *ForwardStrafe) keyFor(s Strafe) string {
	if s == StrafeLeft {
		return f.keys.Left
	}
	return f.keys.Right
}
