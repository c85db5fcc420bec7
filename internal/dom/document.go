//go:build js && wasm

package dom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/frudas24/eaglermobile/internal/capability"
	"github.com/frudas24/eaglermobile/internal/surface"
)

// ErrForeignElement indicates an element not created by this package.
var ErrForeignElement = errors.New("element not created by the shim")

// Page is the document the shim runs in. It keeps the browser's original
// createElement so the shim's own elements bypass the file-input patch.
type Page struct {
	window        js.Value
	document      js.Value
	createElement js.Value
}

var (
	_ surface.Document    = (*Page)(nil)
	_ capability.Notifier = (*Page)(nil)
)

// NewPage captures the current document. Call it before Install.
func NewPage() *Page {
	doc := js.Global().Get("document")
	return &Page{
		window:        js.Global(),
		document:      doc,
		createElement: doc.Get("createElement"),
	}
}

// create calls the original createElement.
func (p *Page) create(tag string) (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create <%s>: %v", tag, r)
		}
	}()
	return p.createElement.Call("call", p.document, tag), nil
}

// CreateElement creates a control element.
func (p *Page) CreateElement(tag string) (surface.Element, error) {
	v, err := p.create(tag)
	if err != nil {
		return nil, err
	}
	return &Element{Node: Node{v: v}}, nil
}

// CreateField creates the text bridge input.
func (p *Page) CreateField(id string) (surface.Field, error) {
	v, err := p.create("input")
	if err != nil {
		return nil, err
	}
	v.Set("id", id)
	v.Set("autocomplete", "off")
	v.Set("autocapitalize", "off")
	return &Field{Element: Element{Node: Node{v: v}}}, nil
}

// Append attaches a control to the body.
func (p *Page) Append(el surface.Element) error {
	v := unwrap(el)
	if v.IsNull() {
		return ErrForeignElement
	}
	p.document.Get("body").Call("appendChild", v)
	return nil
}

// ViewportHeight returns window.innerHeight.
func (p *Page) ViewportHeight() float64 {
	return p.window.Get("innerHeight").Float()
}

// Inputs returns the host the file-input patch creates elements through.
func (p *Page) Inputs() capability.InputHost {
	return inputHost{p: p}
}

type inputHost struct {
	p *Page
}

// NewInput creates a detached <input>.
func (h inputHost) NewInput() (capability.InputElement, error) {
	v, err := h.p.create("input")
	if err != nil {
		return nil, err
	}
	return &Input{Node: Node{v: v}}, nil
}

// Attached reports whether el is still in the document.
func (h inputHost) Attached(el capability.InputElement) bool {
	v := unwrap(el)
	if v.IsNull() {
		return false
	}
	return h.p.document.Call("contains", v).Bool()
}

// Append attaches an input to the body.
func (h inputHost) Append(el capability.InputElement) error {
	v := unwrap(el)
	if v.IsNull() {
		return ErrForeignElement
	}
	h.p.document.Get("body").Call("appendChild", v)
	return nil
}

// Notify dispatches a bare event on the document.
func (p *Page) Notify(eventType string) {
	p.document.Call("dispatchEvent", js.Global().Get("Event").New(eventType))
}

// InjectStyle appends a <style> block to the root element. The body may not
// exist yet at document-start.
func (p *Page) InjectStyle(id, css string) (*Style, error) {
	v, err := p.create("style")
	if err != nil {
		return nil, err
	}
	if id != "" {
		v.Set("id", id)
	}
	v.Set("textContent", css)
	p.document.Get("documentElement").Call("appendChild", v)
	return &Style{Node: Node{v: v}}, nil
}

// WaitFor blocks until an element matches selector and returns it. It must
// not be called from a JS callback.
func (p *Page) WaitFor(selector string) js.Value {
	if v := p.document.Call("querySelector", selector); v.Truthy() {
		return v
	}
	found := make(chan js.Value, 1)
	var cb js.Func
	var observer js.Value
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		if v := p.document.Call("querySelector", selector); v.Truthy() {
			observer.Call("disconnect")
			select {
			case found <- v:
			default:
			}
		}
		return nil
	})
	observer = js.Global().Get("MutationObserver").New(cb)
	observer.Call("observe", p.document.Get("documentElement"), map[string]any{
		"childList": true,
		"subtree":   true,
	})
	v := <-found
	cb.Release()
	return v
}

// TouchSupported reports whether the browser can create touch events.
func (p *Page) TouchSupported() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	p.document.Call("createEvent", "TouchEvent")
	return true
}

// Alert shows a blocking browser alert.
func (p *Page) Alert(msg string) {
	p.window.Call("alert", msg)
}

// UserAgent returns navigator.userAgent.
func (p *Page) UserAgent() string {
	return p.window.Get("navigator").Get("userAgent").String()
}

// OnDocument registers fn for a document event for the lifetime of the page.
func (p *Page) OnDocument(eventType string, fn func()) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	p.document.Call("addEventListener", eventType, f)
}
