package input

import "errors"

// Emitter constructs synthetic events and dispatches them at the window
// (keyboard) or the canvas (pointer, wheel, motion). Dispatch is synchronous
// and there is no queueing or retry.
type Emitter struct {
	window Dispatcher
	canvas Dispatcher
}

// NewEmitter returns an emitter that dispatches keyboard events to window and
// pointer events to canvas.
func NewEmitter(window, canvas Dispatcher) *Emitter {
	return &Emitter{window: window, canvas: canvas}
}

// Key presses or releases the key identified by name.
func (e *Emitter) Key(name string, state State) error {
	ev, err := KeyEvent(name, state)
	if err != nil {
		return err
	}
	return e.window.Dispatch(ev)
}

// Shift presses or releases Shift.
func (e *Emitter) Shift(state State) error {
	return e.Key(KeyShift, state)
}

// Backspace presses or releases Backspace.
func (e *Emitter) Backspace(state State) error {
	return e.Key(KeyBackspace, state)
}

// Tap presses and releases the key identified by name.
func (e *Emitter) Tap(name string) error {
	if err := e.Key(name, Down); err != nil {
		return err
	}
	return e.Key(name, Up)
}

// TapShifted taps name while Shift is held. Shift is released even when the
// key itself fails to dispatch.
func (e *Emitter) TapShifted(name string) error {
	if err := e.Shift(Down); err != nil {
		return err
	}
	if err := e.Tap(name); err != nil {
		return errors.Join(err, e.Shift(Up))
	}
	return e.Shift(Up)
}

// Pointer presses or releases a pointer button on the canvas.
func (e *Emitter) Pointer(button Button, state State) error {
	typ := TypeMouseDown
	if state == Up {
		typ = TypeMouseUp
	}
	return e.canvas.Dispatch(Event{Type: typ, Target: TargetCanvas, Button: button})
}

// Wheel scrolls the canvas by delta; negative values scroll up.
func (e *Emitter) Wheel(delta float64) error {
	return e.canvas.Dispatch(Event{Type: TypeWheel, Target: TargetCanvas, WheelDeltaY: delta})
}

// MouseMove moves the locked pointer by (dx, dy).
func (e *Emitter) MouseMove(dx, dy float64) error {
	return e.canvas.Dispatch(Event{Type: TypeMouseMove, Target: TargetCanvas, MovementX: dx, MovementY: dy})
}
