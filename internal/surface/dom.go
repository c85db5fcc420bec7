package surface

import "github.com/frudas24/eaglermobile/internal/gesture"

// TouchPhase is the stage of a touch sequence.
type TouchPhase int

const (
	// TouchStart is the first contact of a touch on a control.
	TouchStart TouchPhase = iota
	// TouchMove is a movement of an active touch.
	TouchMove
	// TouchEnd is a lift or cancel of an active touch.
	TouchEnd
)

// String returns the DOM event name of the phase.
func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	default:
		return "touchend"
	}
}

// TouchEvent is one DOM touch event reduced to its first target touch.
type TouchEvent struct {
	Phase TouchPhase
	Point gesture.Point
	// PreventDefault cancels the browser's default action. May be nil.
	PreventDefault func()
}

func (ev TouchEvent) preventDefault() {
	if ev.PreventDefault != nil {
		ev.PreventDefault()
	}
}

// Element is a page element owned by the surface.
type Element interface {
	gesture.Indicator
	AddClass(names ...string)
	SetStyle(css string)
	SetText(text string)
	OnTouch(fn func(TouchEvent))
}

// Field is the text bridge input element.
type Field interface {
	Element
	gesture.Field
	OnInput(fn func(inputType, data string))
}

// Document creates and attaches surface elements.
type Document interface {
	CreateElement(tag string) (Element, error)
	CreateField(id string) (Field, error)
	Append(el Element) error
	ViewportHeight() float64
}

// StyleBlock is a <style> element that can be switched off.
type StyleBlock interface {
	SetDisabled(disabled bool)
}
