// Package capability holds the replacement behaviour for browser APIs that
// touch browsers lack or restrict: pointer lock, fullscreen, file-input
// activation, keyboard validity and default-action suppression.
//
// Each capability has a simulated implementation over session state and a
// native passthrough to the browser's original functions. The browser adapter
// picks one per capability at setup time.
package capability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frudas24/eaglermobile/internal/session"
)

// ErrUnsupported indicates a native capability the browser does not provide.
var ErrUnsupported = errors.New("capability unsupported")

// ErrInvalidMode indicates an unknown provider mode.
var ErrInvalidMode = errors.New("invalid capability mode")

// Change events dispatched on the document.
const (
	EventPointerLockChange = "pointerlockchange"
	EventFullscreenChange  = "fullscreenchange"
)

// Mode selects simulated or native providers.
type Mode string

const (
	// ModeAuto simulates on touch-capable pages and passes through elsewhere.
	ModeAuto Mode = "auto"
	// ModeSimulated always simulates.
	ModeSimulated Mode = "simulated"
	// ModeNative always passes through to the browser.
	ModeNative Mode = "native"
)

// ParseMode validates a mode name. Empty selects ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeSimulated, ModeNative:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Resolve turns ModeAuto into a concrete mode for the page.
func (m Mode) Resolve(touch bool) Mode {
	if m != ModeAuto {
		return m
	}
	if touch {
		return ModeSimulated
	}
	return ModeNative
}

// Notifier dispatches a bare event of the given type on the document.
type Notifier interface {
	Notify(eventType string)
}

// PointerLockProvider backs Element.requestPointerLock,
// Document.pointerLockElement and Document.exitPointerLock.
type PointerLockProvider interface {
	RequestPointerLock(el session.Element) error
	PointerLockElement() session.Element
	ExitPointerLock() error
}

// FullscreenProvider backs Element.requestFullscreen,
// Document.fullscreenElement and Document.exitFullscreen.
type FullscreenProvider interface {
	RequestFullscreen(el session.Element) error
	FullscreenElement() session.Element
	ExitFullscreen() error
}

// SimulatedPointerLock records the lock target in the session instead of
// asking the browser. Requests always succeed.
type SimulatedPointerLock struct {
	sess     *session.Session
	notify   Notifier
	onChange func(locked bool)
}

// NewSimulatedPointerLock returns a simulated provider. onChange, when set,
// runs after every change notification; the surface uses it to swap the
// visible control subset.
func NewSimulatedPointerLock(sess *session.Session, notify Notifier, onChange func(locked bool)) *SimulatedPointerLock {
	return &SimulatedPointerLock{sess: sess, notify: notify, onChange: onChange}
}

// RequestPointerLock records el as the lock holder.
func (p *SimulatedPointerLock) RequestPointerLock(el session.Element) error {
	p.sess.SetPointerLock(el)
	p.changed(true)
	return nil
}

// PointerLockElement returns the recorded lock holder, or nil.
func (p *SimulatedPointerLock) PointerLockElement() session.Element {
	return p.sess.PointerLock()
}

// ExitPointerLock clears the lock holder.
func (p *SimulatedPointerLock) ExitPointerLock() error {
	p.sess.SetPointerLock(nil)
	p.changed(false)
	return nil
}

// SetOnChange replaces the change hook. The surface is built after the
// providers are installed, so the hook is attached late.
func (p *SimulatedPointerLock) SetOnChange(fn func(locked bool)) {
	p.onChange = fn
}

func (p *SimulatedPointerLock) changed(locked bool) {
	if p.notify != nil {
		p.notify.Notify(EventPointerLockChange)
	}
	if p.onChange != nil {
		p.onChange(locked)
	}
}

// SimulatedFullscreen records the fullscreen target in the session. It never
// changes control visibility.
type SimulatedFullscreen struct {
	sess   *session.Session
	notify Notifier
}

// NewSimulatedFullscreen returns a simulated fullscreen provider.
func NewSimulatedFullscreen(sess *session.Session, notify Notifier) *SimulatedFullscreen {
	return &SimulatedFullscreen{sess: sess, notify: notify}
}

// RequestFullscreen records el as the fullscreen element.
func (p *SimulatedFullscreen) RequestFullscreen(el session.Element) error {
	p.sess.SetFullscreen(el)
	if p.notify != nil {
		p.notify.Notify(EventFullscreenChange)
	}
	return nil
}

// FullscreenElement returns the recorded fullscreen element, or nil.
func (p *SimulatedFullscreen) FullscreenElement() session.Element {
	return p.sess.Fullscreen()
}

// ExitFullscreen clears the fullscreen element.
func (p *SimulatedFullscreen) ExitFullscreen() error {
	p.sess.SetFullscreen(nil)
	if p.notify != nil {
		p.notify.Notify(EventFullscreenChange)
	}
	return nil
}

// Natives holds the browser's original request/query/exit functions for one
// capability, saved before the prototypes are patched. Nil entries are
// reported as ErrUnsupported.
type Natives struct {
	Request func(el session.Element) error
	Element func() session.Element
	Exit    func() error
}

func (n Natives) request(el session.Element) error {
	if n.Request == nil {
		return ErrUnsupported
	}
	return n.Request(el)
}

func (n Natives) element() session.Element {
	if n.Element == nil {
		return nil
	}
	return n.Element()
}

func (n Natives) exit() error {
	if n.Exit == nil {
		return ErrUnsupported
	}
	return n.Exit()
}

// NativePointerLock passes pointer lock through to the browser.
type NativePointerLock struct {
	n Natives
}

// NewNativePointerLock returns a passthrough provider.
func NewNativePointerLock(n Natives) *NativePointerLock {
	return &NativePointerLock{n: n}
}

// RequestPointerLock calls the original requestPointerLock.
func (p *NativePointerLock) RequestPointerLock(el session.Element) error {
	return p.n.request(el)
}

// PointerLockElement reads the original pointerLockElement.
func (p *NativePointerLock) PointerLockElement() session.Element {
	return p.n.element()
}

// ExitPointerLock calls the original exitPointerLock.
func (p *NativePointerLock) ExitPointerLock() error {
	return p.n.exit()
}

// NativeFullscreen passes fullscreen through to the browser.
type NativeFullscreen struct {
	n Natives
}

// NewNativeFullscreen returns a passthrough provider.
func NewNativeFullscreen(n Natives) *NativeFullscreen {
	return &NativeFullscreen{n: n}
}

// RequestFullscreen calls the original requestFullscreen.
func (p *NativeFullscreen) RequestFullscreen(el session.Element) error {
	return p.n.request(el)
}

// FullscreenElement reads the original fullscreenElement.
func (p *NativeFullscreen) FullscreenElement() session.Element {
	return p.n.element()
}

// ExitFullscreen calls the original exitFullscreen.
func (p *NativeFullscreen) ExitFullscreen() error {
	return p.n.exit()
}
