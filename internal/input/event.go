// Package input builds and dispatches synthetic keyboard, pointer and wheel events.
package input

// Type is the DOM event type of a synthetic event.
type Type string

const (
	// TypeKeyDown is a keyboard press.
	TypeKeyDown Type = "keydown"
	// TypeKeyUp is a keyboard release.
	TypeKeyUp Type = "keyup"
	// TypeMouseDown is a pointer button press.
	TypeMouseDown Type = "mousedown"
	// TypeMouseUp is a pointer button release.
	TypeMouseUp Type = "mouseup"
	// TypeMouseMove is a relative pointer motion.
	TypeMouseMove Type = "mousemove"
	// TypeWheel is a scroll wheel step.
	TypeWheel Type = "wheel"
)

// Target is where an event is dispatched.
type Target string

const (
	// TargetWindow dispatches on window (keyboard input).
	TargetWindow Target = "window"
	// TargetCanvas dispatches on the game canvas (pointer and wheel input).
	TargetCanvas Target = "canvas"
)

// State is the press state carried by key and button emissions.
type State int

const (
	// Down presses a key or button.
	Down State = iota
	// Up releases a key or button.
	Up
)

// String returns "down" or "up".
func (s State) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}

// Button identifies a pointer button by its DOM index.
type Button int

const (
	// ButtonPrimary breaks blocks and attacks.
	ButtonPrimary Button = 0
	// ButtonMiddle picks the targeted block.
	ButtonMiddle Button = 1
	// ButtonSecondary places blocks and uses items.
	ButtonSecondary Button = 2
)

// Event is a synthetic input event ready to be dispatched.
//
// Valid mirrors the isValid marker the keydown gate checks before handing an
// event to the game.
type Event struct {
	Type        Type    `json:"type"`
	Target      Target  `json:"target"`
	Key         string  `json:"key,omitempty"`
	KeyCode     int     `json:"keyCode,omitempty"`
	Button      Button  `json:"button"`
	MovementX   float64 `json:"movementX,omitempty"`
	MovementY   float64 `json:"movementY,omitempty"`
	WheelDeltaY float64 `json:"wheelDeltaY,omitempty"`
	Valid       bool    `json:"isValid,omitempty"`
}

// IsKey reports whether the event is a keyboard event.
func (e Event) IsKey() bool {
	return e.Type == TypeKeyDown || e.Type == TypeKeyUp
}

// Dispatcher delivers events to a page target.
type Dispatcher interface {
	Dispatch(ev Event) error
}

// DispatcherFunc adapts a function into a Dispatcher.
type DispatcherFunc func(ev Event) error

// Dispatch calls f(ev).
func (f DispatcherFunc) Dispatch(ev Event) error {
	return f(ev)
}
