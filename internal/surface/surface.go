// Package surface builds the on-screen touch controls from a layout and routes
// touch events to their gesture handlers.
package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/clock"
	"github.com/frudas24/eaglermobile/internal/gesture"
	"github.com/frudas24/eaglermobile/internal/input"
	"github.com/frudas24/eaglermobile/internal/layout"
	"github.com/frudas24/eaglermobile/internal/session"
)

// CanvasName routes touches on the game canvas to the look gesture.
const CanvasName = "canvas"

// ControlClass marks every control for the shared stylesheet.
const ControlClass = "mobileControl"

// ErrUnknownControl indicates a touch routed to a control that was not built.
var ErrUnknownControl = errors.New("unknown control")

// Deps are the collaborators shared by every control.
type Deps struct {
	Emitter    *input.Emitter
	Session    *session.Session
	Clock      clock.Clock
	Visibility *Visibility
	// Canvas, when set, receives the look gesture.
	Canvas Element
	Logger *zap.Logger
}

// Surface is the built control set.
type Surface struct {
	logger   *zap.Logger
	elements map[string]Element
	field    Field
	bridge   *gesture.TextBridge

	mu        sync.Mutex
	handlers  map[string]gesture.Handler
	active    map[string]bool
	cancelAll map[string]bool
}

// Build creates one element per control, binds its gesture and appends it to
// doc. The bridge field is appended first so the keyboard button covers it.
func Build(doc Document, l layout.Layout, deps Deps) (*Surface, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	s := &Surface{
		logger:    logger,
		elements:  make(map[string]Element, len(l.Controls)),
		handlers:  make(map[string]gesture.Handler, len(l.Controls)+1),
		active:    make(map[string]bool),
		cancelAll: make(map[string]bool),
	}

	field, err := doc.CreateField(l.Bridge.ID)
	if err != nil {
		return nil, fmt.Errorf("create bridge field: %w", err)
	}
	field.AddClass(string(l.Bridge.Subset))
	field.SetStyle(l.Bridge.Style)
	field.SetValue(gesture.Placeholder)
	s.field = field
	s.bridge = gesture.NewTextBridge(deps.Emitter, field)
	field.OnInput(func(inputType, data string) {
		if err := s.bridge.Input(inputType, data); err != nil {
			s.logger.Debug("text bridge dispatch failed", zap.String("inputType", inputType), zap.Error(err))
		}
	})
	if err := doc.Append(field); err != nil {
		return nil, fmt.Errorf("append bridge field: %w", err)
	}

	for _, c := range l.Controls {
		el, err := doc.CreateElement(c.ElementName())
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", c.Name, err)
		}
		el.AddClass(c.Name, string(c.Subset), ControlClass)
		el.SetStyle(c.Style)
		if c.Label != "" {
			el.SetText(c.Label)
		}
		if c.Gesture == layout.GestureIndicator {
			el.SetHidden(true)
		}
		s.elements[c.Name] = el
	}

	for _, c := range l.Controls {
		h, err := s.handlerFor(c, l, deps, doc, clk)
		if err != nil {
			return nil, err
		}
		name := c.Name
		s.elements[name].OnTouch(func(ev TouchEvent) { _ = s.Touch(name, ev) })
		if h != nil {
			s.handlers[name] = h
		}
		if c.Gesture == layout.GestureKeyboard {
			s.cancelAll[name] = true
		}
		if err := doc.Append(s.elements[name]); err != nil {
			return nil, fmt.Errorf("append %s: %w", name, err)
		}
	}

	if deps.Canvas != nil {
		s.handlers[CanvasName] = gesture.NewLook(deps.Emitter, deps.Session)
		deps.Canvas.OnTouch(func(ev TouchEvent) { _ = s.Touch(CanvasName, ev) })
	}
	if deps.Visibility != nil {
		deps.Visibility.Apply(deps.Session.PointerLocked())
	}
	s.logger.Info("control surface built", zap.Int("controls", len(l.Controls)))
	return s, nil
}

// handlerFor builds the gesture handler for c. Indicators have none.
func (s *Surface) handlerFor(c layout.Control, l layout.Layout, deps Deps, doc Document, clk clock.Clock) (gesture.Handler, error) {
	em := deps.Emitter
	switch c.Gesture {
	case layout.GestureKey:
		return gesture.NewMomentary(gesture.KeyPress(em, c.Keys[0])), nil
	case layout.GesturePointer:
		return gesture.NewMomentary(gesture.ButtonPress(em, input.Button(c.Button))), nil
	case layout.GestureCombo:
		presses := make([]gesture.Press, 0, len(c.Keys))
		for _, k := range c.Keys {
			presses = append(presses, gesture.KeyPress(em, k))
		}
		return gesture.NewCombo(presses...), nil
	case layout.GestureWheel:
		return gesture.NewScroll(em, c.WheelDelta(l.ScrollDelta)), nil
	case layout.GestureHoldLock:
		return gesture.NewHoldLock(gesture.KeyPress(em, c.Keys[0]), s.elements[c.Name], clk, l.HoldDuration), nil
	case layout.GestureForwardStrafe:
		keys := gesture.ForwardStrafeKeys{Forward: c.Keys[0], Left: c.Keys[1], Right: c.Keys[2]}
		return gesture.NewForwardStrafe(em, keys, l.StrafeThreshold, doc.ViewportHeight,
			s.elements[c.Name], s.elements[c.Left], s.elements[c.Right]), nil
	case layout.GestureKeyboard:
		return gesture.NewKeyboardToggle(s.field, deps.Session), nil
	case layout.GestureIndicator:
		return nil, nil
	default:
		return nil, fmt.Errorf("%s: %w: gesture %q", c.Name, layout.ErrInvalid, c.Gesture)
	}
}

// Touch routes one touch event to the named control. Moves always suppress
// the browser's drag handling; the keyboard button suppresses every phase so
// the bridge field keeps its focus. Moves and ends for a control without an
// active touch are dropped, which keeps Release from double-releasing keys.
func (s *Surface) Touch(name string, ev TouchEvent) error {
	if ev.Phase == TouchMove || s.cancelAll[name] {
		ev.preventDefault()
	}

	s.mu.Lock()
	h, ok := s.handlers[name]
	_, known := s.elements[name]
	active := s.active[name]
	switch ev.Phase {
	case TouchStart:
		s.active[name] = true
	case TouchEnd:
		delete(s.active, name)
	}
	s.mu.Unlock()

	if !ok {
		if known {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}

	var err error
	switch ev.Phase {
	case TouchStart:
		err = h.TouchStart(ev.Point)
	case TouchMove:
		if active {
			err = h.TouchMove(ev.Point)
		}
	case TouchEnd:
		if active {
			err = h.TouchEnd()
		}
	}
	if err != nil {
		s.logger.Debug("control dispatch failed", zap.String("control", name), zap.Stringer("phase", ev.Phase), zap.Error(err))
	}
	return err
}

// Release ends every gesture that still has a finger down. It runs when
// pointer lock is lost so keys held by hidden controls are not left stuck.
func (s *Surface) Release() error {
	s.mu.Lock()
	names := make([]string, 0, len(s.active))
	for name := range s.active {
		names = append(names, name)
	}
	s.active = make(map[string]bool)
	s.mu.Unlock()

	sort.Strings(names)
	var errs []error
	for _, name := range names {
		if h, ok := s.handlers[name]; ok {
			errs = append(errs, h.TouchEnd())
		}
	}
	return errors.Join(errs...)
}

// Element returns the element built for a control.
func (s *Surface) Element(name string) (Element, bool) {
	el, ok := s.elements[name]
	return el, ok
}

// Handler returns the gesture handler bound to a control.
func (s *Surface) Handler(name string) (gesture.Handler, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handlers[name]
	return h, ok
}

// Bridge returns the text bridge.
func (s *Surface) Bridge() *gesture.TextBridge {
	return s.bridge
}
