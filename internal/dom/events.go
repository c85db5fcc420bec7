//go:build js && wasm

package dom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/frudas24/eaglermobile/internal/input"
)

// ErrUnsupportedEvent indicates an event type the dispatchers cannot build.
var ErrUnsupportedEvent = errors.New("unsupported synthetic event")

// WindowDispatcher dispatches keyboard events on window.
func WindowDispatcher() input.Dispatcher {
	return targetDispatcher(js.Global())
}

// CanvasDispatcher dispatches pointer, wheel and motion events on canvas.
func CanvasDispatcher(canvas js.Value) input.Dispatcher {
	return targetDispatcher(canvas)
}

func targetDispatcher(target js.Value) input.Dispatcher {
	return input.DispatcherFunc(func(ev input.Event) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("dispatch %s: %v", ev.Type, r)
			}
		}()
		v, err := build(ev)
		if err != nil {
			return err
		}
		target.Call("dispatchEvent", v)
		return nil
	})
}

// build constructs the DOM event for ev.
func build(ev input.Event) (js.Value, error) {
	g := js.Global()
	switch ev.Type {
	case input.TypeKeyDown, input.TypeKeyUp:
		v := g.Get("KeyboardEvent").New(string(ev.Type), map[string]any{
			"key":     ev.Key,
			"keyCode": ev.KeyCode,
			"which":   ev.KeyCode,
		})
		// Most engines ignore keyCode in the init dictionary.
		defineValue(v, "keyCode", ev.KeyCode)
		defineValue(v, "which", ev.KeyCode)
		v.Set("isValid", ev.Valid)
		return v, nil
	case input.TypeMouseDown, input.TypeMouseUp:
		return g.Get("PointerEvent").New(string(ev.Type), map[string]any{
			"button": int(ev.Button),
		}), nil
	case input.TypeWheel:
		return g.Get("WheelEvent").New("wheel", map[string]any{
			"wheelDeltaY": ev.WheelDeltaY,
		}), nil
	case input.TypeMouseMove:
		return g.Get("MouseEvent").New("mousemove", map[string]any{
			"movementX": ev.MovementX,
			"movementY": ev.MovementY,
		}), nil
	default:
		return js.Undefined(), fmt.Errorf("%w: %q", ErrUnsupportedEvent, ev.Type)
	}
}

// defineValue shadows a read-only property on one object.
func defineValue(obj js.Value, name string, value any) {
	js.Global().Get("Object").Call("defineProperty", obj, name, map[string]any{
		"value":        value,
		"configurable": true,
	})
}
