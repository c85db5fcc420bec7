package gesture

import "github.com/frudas24/eaglermobile/internal/input"

// Look turns a drag on the canvas into camera motion.
//
// Deltas are always taken against the previous sample. While pointer lock is
// held they become mouse motion; otherwise the vertical delta scrolls.
type Look struct {
	em       *input.Emitter
	lock     LockQuery
	prev     Point
	tracking bool
}

// NewLook returns a look handler that consults lock on every sample.
func NewLook(em *input.Emitter, lock LockQuery) *Look {
	return &Look{em: em, lock: lock}
}

// TouchStart does nothing; the baseline is taken from the first move.
func (l *Look) TouchStart(Point) error {
	return nil
}

// TouchMove emits the delta from the previous sample and advances the baseline.
func (l *Look) TouchMove(p Point) error {
	if !l.tracking {
		l.prev = p
		l.tracking = true
		return nil
	}
	dx := p.X - l.prev.X
	dy := p.Y - l.prev.Y
	l.prev = p
	if l.lock.PointerLocked() {
		return l.em.MouseMove(dx, dy)
	}
	return l.em.Wheel(dy)
}

// TouchEnd drops the baseline so the next drag does not jump.
func (l *Look) TouchEnd() error {
	l.tracking = false
	l.prev = Point{}
	return nil
}

// Tracking reports whether a baseline is recorded.
func (l *Look) Tracking() bool {
	return l.tracking
}
