//go:build js && wasm

package dom

import (
	"strings"
	"syscall/js"

	"github.com/frudas24/eaglermobile/internal/gesture"
	"github.com/frudas24/eaglermobile/internal/surface"
)

// Node wraps any page element handed to the shim.
type Node struct {
	v js.Value
}

// Wrap returns a Node for v.
func Wrap(v js.Value) *Node {
	return &Node{v: v}
}

// Value returns the underlying JS value.
func (n *Node) Value() js.Value {
	return n.v
}

// ID returns the element id, or its lowercase tag name when it has none.
func (n *Node) ID() string {
	if id := n.v.Get("id"); id.Truthy() {
		return id.String()
	}
	if tag := n.v.Get("tagName"); tag.Truthy() {
		return strings.ToLower(tag.String())
	}
	return ""
}

// valuer is implemented by every wrapper in this package.
type valuer interface {
	Value() js.Value
}

// unwrap returns the JS value behind a wrapper, or null.
func unwrap(x any) js.Value {
	if v, ok := x.(valuer); ok && v != nil {
		return v.Value()
	}
	return js.Null()
}

// Element is a control element on the surface.
// Its listeners live as long as the page.
type Element struct {
	Node
}

var _ surface.Element = (*Element)(nil)

// AddClass adds CSS classes.
func (e *Element) AddClass(names ...string) {
	list := e.v.Get("classList")
	for _, n := range names {
		list.Call("add", n)
	}
}

// SetStyle replaces the inline style.
func (e *Element) SetStyle(css string) {
	e.v.Get("style").Set("cssText", css)
}

// SetText sets the text content.
func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

// SetActive toggles the pressed look.
func (e *Element) SetActive(active bool) {
	e.v.Get("classList").Call("toggle", surface.ActiveClass, active)
}

// SetHidden toggles the hide class.
func (e *Element) SetHidden(hidden bool) {
	e.v.Get("classList").Call("toggle", surface.HideClass, hidden)
}

// OnTouch forwards touch events reduced to their first target touch.
// touchcancel is reported as an end.
func (e *Element) OnTouch(fn func(surface.TouchEvent)) {
	for _, phase := range []struct {
		name  string
		phase surface.TouchPhase
	}{
		{"touchstart", surface.TouchStart},
		{"touchmove", surface.TouchMove},
		{"touchend", surface.TouchEnd},
		{"touchcancel", surface.TouchEnd},
	} {
		p := phase.phase
		e.listen(phase.name, func(ev js.Value) {
			fn(touchEvent(p, ev))
		})
	}
}

// listen registers a non-passive listener so handlers may cancel the event.
func (e *Element) listen(name string, fn func(ev js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	e.v.Call("addEventListener", name, f, map[string]any{"passive": false})
}

// touchEvent converts a DOM TouchEvent.
func touchEvent(phase surface.TouchPhase, ev js.Value) surface.TouchEvent {
	out := surface.TouchEvent{
		Phase:          phase,
		PreventDefault: func() { ev.Call("preventDefault") },
	}
	touches := ev.Get("targetTouches")
	if touches.Truthy() && touches.Length() > 0 {
		t := touches.Index(0)
		out.Point = gesture.Point{X: t.Get("pageX").Float(), Y: t.Get("pageY").Float()}
	}
	return out
}

// Field is the text bridge input.
type Field struct {
	Element
}

var _ surface.Field = (*Field)(nil)

// SetValue replaces the field value.
func (f *Field) SetValue(v string) {
	f.v.Set("value", v)
}

// Focus selects the field, which opens the on-screen keyboard.
func (f *Field) Focus() {
	f.v.Call("select")
}

// Blur drops focus, which closes the on-screen keyboard.
func (f *Field) Blur() {
	f.v.Call("blur")
}

// OnInput forwards input events as (inputType, data).
func (f *Field) OnInput(fn func(inputType, data string)) {
	f.listen("input", func(ev js.Value) {
		data := ""
		if d := ev.Get("data"); d.Truthy() {
			data = d.String()
		}
		fn(ev.Get("inputType").String(), data)
	})
}

// Input is a page <input> element managed by the file-input patch.
type Input struct {
	Node
	onChange js.Func
}

// SetValue clears or sets the value. An empty value resets the selected file.
func (i *Input) SetValue(v string) {
	if v == "" {
		i.v.Set("value", js.Null())
		return
	}
	i.v.Set("value", v)
}

// SetStyle replaces the inline style.
func (i *Input) SetStyle(css string) {
	i.v.Get("style").Set("cssText", css)
}

// SetHidden sets the hidden attribute.
func (i *Input) SetHidden(hidden bool) {
	i.v.Set("hidden", hidden)
}

// OnChange runs fn after the user picks a file.
func (i *Input) OnChange(fn func()) {
	if i.onChange.Truthy() {
		i.v.Call("removeEventListener", "change", i.onChange)
		i.onChange.Release()
	}
	i.onChange = js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	i.v.Call("addEventListener", "change", i.onChange)
}

// Style is an injected <style> block.
type Style struct {
	Node
}

var _ surface.StyleBlock = (*Style)(nil)

// SetDisabled switches the block's rules off or on.
func (s *Style) SetDisabled(disabled bool) {
	s.v.Set("disabled", disabled)
}

// NewElement wraps an existing page element, such as the game canvas.
func NewElement(v js.Value) *Element {
	return &Element{Node: Node{v: v}}
}
