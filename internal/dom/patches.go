//go:build js && wasm

package dom

import (
	"fmt"
	"strings"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/capability"
	"github.com/frudas24/eaglermobile/internal/session"
)

// Patches are the providers installed over the browser's prototypes.
type Patches struct {
	Policy      capability.DefaultActionPolicy
	PointerLock capability.PointerLockProvider
	Fullscreen  capability.FullscreenProvider
	Inputs      capability.InputElementProvider
	Logger      *zap.Logger
}

// PointerLockNatives captures the browser's pointer lock functions.
func (p *Page) PointerLockNatives() capability.Natives {
	return p.natives(
		js.Global().Get("Element").Get("prototype").Get("requestPointerLock"),
		getter(js.Global().Get("Document").Get("prototype"), "pointerLockElement"),
		js.Global().Get("Document").Get("prototype").Get("exitPointerLock"),
	)
}

// FullscreenNatives captures the browser's fullscreen functions, falling
// back to the webkit-prefixed ones.
func (p *Page) FullscreenNatives() capability.Natives {
	elProto := js.Global().Get("Element").Get("prototype")
	docProto := js.Global().Get("Document").Get("prototype")
	request := elProto.Get("requestFullscreen")
	if !request.Truthy() {
		request = elProto.Get("webkitRequestFullscreen")
	}
	exit := docProto.Get("exitFullscreen")
	if !exit.Truthy() {
		exit = docProto.Get("webkitExitFullscreen")
	}
	get := getter(docProto, "fullscreenElement")
	if !get.Truthy() {
		get = getter(docProto, "webkitFullscreenElement")
	}
	return p.natives(request, get, exit)
}

// natives binds saved functions into capability.Natives. Missing functions
// stay nil and report capability.ErrUnsupported.
func (p *Page) natives(request, get, exit js.Value) capability.Natives {
	var n capability.Natives
	if request.Type() == js.TypeFunction {
		n.Request = func(el session.Element) error {
			return call(request, unwrap(el))
		}
	}
	if get.Type() == js.TypeFunction {
		n.Element = func() session.Element {
			v := get.Call("call", p.document)
			if !v.Truthy() {
				return nil
			}
			return Wrap(v)
		}
	}
	if exit.Type() == js.TypeFunction {
		n.Exit = func() error {
			return call(exit, p.document)
		}
	}
	return n
}

// getter returns the property getter of name on obj, or undefined.
func getter(obj js.Value, name string) js.Value {
	desc := js.Global().Get("Object").Call("getOwnPropertyDescriptor", obj, name)
	if !desc.Truthy() {
		return js.Undefined()
	}
	return desc.Get("get")
}

// call invokes fn with this, converting JS exceptions into errors.
func call(fn, this js.Value, args ...any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	fn.Call("call", append([]any{this}, args...)...)
	return nil
}

// Install replaces the browser prototypes with the given providers. The
// callbacks live for the lifetime of the page and are never released.
func (p *Page) Install(patches Patches) {
	logger := patches.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	p.installKeydownGate()
	p.installPreventDefault(patches.Policy)
	if patches.Inputs != nil {
		p.installCreateElement(patches.Inputs, logger)
	}
	if patches.PointerLock != nil {
		lock := patches.PointerLock
		p.installCapability("requestPointerLock", "pointerLockElement", "exitPointerLock",
			lock.RequestPointerLock, lock.PointerLockElement, lock.ExitPointerLock, logger)
	}
	if patches.Fullscreen != nil {
		full := patches.Fullscreen
		p.installCapability("requestFullscreen", "fullscreenElement", "exitFullscreen",
			full.RequestFullscreen, full.FullscreenElement, full.ExitFullscreen, logger)
	}
	logger.Debug("capability patches installed")
}

// installKeydownGate wraps every keydown listener so it only sees events
// carrying the isValid marker. Wrappers are kept in a WeakMap so
// removeEventListener still finds them.
func (p *Page) installKeydownGate() {
	proto := js.Global().Get("EventTarget").Get("prototype")
	origAdd := proto.Get("addEventListener")
	origRemove := proto.Get("removeEventListener")
	wrappers := js.Global().Get("WeakMap").New()

	wrap := func(fn js.Value) js.Value {
		if w := wrappers.Call("get", fn); w.Truthy() {
			return w
		}
		w := js.FuncOf(func(this js.Value, args []js.Value) any {
			valid := len(args) > 0 && args[0].Get("isValid").Truthy()
			if !capability.AllowKeydown(capability.KeydownEvent, valid) {
				return nil
			}
			if fn.Type() == js.TypeFunction {
				return fn.Call("apply", this, jsArray(args))
			}
			return fn.Get("handleEvent").Call("apply", fn, jsArray(args))
		})
		wrappers.Call("set", fn, w.Value)
		return w.Value
	}
	gated := func(args []js.Value) bool {
		return len(args) >= 2 && args[0].Type() == js.TypeString &&
			args[0].String() == capability.KeydownEvent &&
			(args[1].Type() == js.TypeFunction || args[1].Type() == js.TypeObject)
	}

	add := js.FuncOf(func(this js.Value, args []js.Value) any {
		if gated(args) {
			args = append([]js.Value{args[0], wrap(args[1])}, args[2:]...)
		}
		return origAdd.Call("apply", this, jsArray(args))
	})
	remove := js.FuncOf(func(this js.Value, args []js.Value) any {
		if gated(args) {
			if w := wrappers.Call("get", args[1]); w.Truthy() {
				args = append([]js.Value{args[0], w}, args[2:]...)
			}
		}
		return origRemove.Call("apply", this, jsArray(args))
	})
	defineMethod(proto, "addEventListener", add.Value)
	defineMethod(proto, "removeEventListener", remove.Value)
}

// installPreventDefault lets the policy veto Event.preventDefault.
func (p *Page) installPreventDefault(policy capability.DefaultActionPolicy) {
	proto := js.Global().Get("Event").Get("prototype")
	orig := proto.Get("preventDefault")
	fn := js.FuncOf(func(this js.Value, _ []js.Value) any {
		activeID := ""
		if active := p.document.Get("activeElement"); active.Truthy() {
			activeID = active.Get("id").String()
		}
		if policy.Allow(activeID, this.Get("type").String()) {
			orig.Call("call", this)
		}
		return nil
	})
	defineMethod(proto, "preventDefault", fn.Value)
}

// installCreateElement routes document.createElement("input") through the
// provider. A literal true second argument marks the shim's own requests.
func (p *Page) installCreateElement(inputs capability.InputElementProvider, logger *zap.Logger) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Type() == js.TypeString && strings.EqualFold(args[0].String(), "input") {
			internal := len(args) > 1 && args[1].Type() == js.TypeBoolean && args[1].Bool()
			el, err := inputs.CreateInput(internal)
			if err == nil {
				return unwrap(el)
			}
			logger.Warn("input patch failed, using the browser element", zap.Error(err))
		}
		return p.createElement.Call("apply", this, jsArray(args))
	})
	p.document.Set("createElement", fn)
}

// installCapability patches Element.prototype.<request>,
// Document.prototype.<element> and Document.prototype.<exit>.
func (p *Page) installCapability(
	request, element, exit string,
	onRequest func(session.Element) error,
	current func() session.Element,
	onExit func() error,
	logger *zap.Logger,
) {
	elProto := js.Global().Get("Element").Get("prototype")
	docProto := js.Global().Get("Document").Get("prototype")

	req := js.FuncOf(func(this js.Value, _ []js.Value) any {
		err := onRequest(Wrap(this))
		if err != nil {
			logger.Debug("capability request failed", zap.String("method", request), zap.Error(err))
		}
		return promise(err)
	})
	get := js.FuncOf(func(js.Value, []js.Value) any {
		return unwrap(current())
	})
	ex := js.FuncOf(func(js.Value, []js.Value) any {
		err := onExit()
		if err != nil {
			logger.Debug("capability exit failed", zap.String("method", exit), zap.Error(err))
		}
		return promise(err)
	})

	defineMethod(elProto, request, req.Value)
	js.Global().Get("Object").Call("defineProperty", docProto, element, map[string]any{
		"get":          get.Value,
		"configurable": true,
	})
	defineMethod(docProto, exit, ex.Value)
}

// defineMethod replaces a prototype method.
func defineMethod(proto js.Value, name string, fn js.Value) {
	js.Global().Get("Object").Call("defineProperty", proto, name, map[string]any{
		"value":        fn,
		"writable":     true,
		"configurable": true,
	})
}

// promise returns a settled Promise for err.
func promise(err error) js.Value {
	p := js.Global().Get("Promise")
	if err == nil {
		return p.Call("resolve")
	}
	return p.Call("reject", js.Global().Get("Error").New(err.Error()))
}

// jsArray converts callback arguments into a JS array for apply.
func jsArray(args []js.Value) js.Value {
	arr := js.Global().Get("Array").New(len(args))
	for i, a := range args {
		arr.SetIndex(i, a)
	}
	return arr
}
