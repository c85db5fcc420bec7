package capability

import "fmt"

// OverlayStyle covers the viewport with a semi-transparent file input so the
// user can tap it directly; touch browsers ignore programmatic clicks.
const OverlayStyle = "position:absolute;left:0%;right:100%;top:0%;bottom:100%;width:100%;height:100%;background-color:rgba(255,255,255,0.5);"

// InputElement is an <input> element owned by the page.
type InputElement interface {
	SetValue(v string)
	SetStyle(css string)
	SetHidden(hidden bool)
	OnChange(fn func())
}

// InputHost creates input elements with the browser's original
// document.createElement and manages their attachment.
type InputHost interface {
	NewInput() (InputElement, error)
	Attached(el InputElement) bool
	Append(el InputElement) error
}

// InputElementProvider backs document.createElement("input").
type InputElementProvider interface {
	// CreateInput returns an input element. internal marks requests made by
	// the shim itself, which always get a plain detached element.
	CreateInput(internal bool) (InputElement, error)
}

// SimulatedInput turns page-created inputs into a visible overlay the user
// taps to open the file picker.
type SimulatedInput struct {
	host    InputHost
	overlay InputElement
}

// NewSimulatedInput returns a provider creating elements through host.
func NewSimulatedInput(host InputHost) *SimulatedInput {
	return &SimulatedInput{host: host}
}

// CreateInput returns a plain element for internal requests. Page requests
// reuse the overlay while it is attached, otherwise a new overlay is appended
// to the body and hides itself after a file is chosen.
func (p *SimulatedInput) CreateInput(internal bool) (InputElement, error) {
	if internal {
		return p.host.NewInput()
	}
	if p.overlay == nil || !p.host.Attached(p.overlay) {
		el, err := p.host.NewInput()
		if err != nil {
			return nil, fmt.Errorf("create overlay input: %w", err)
		}
		if err := p.host.Append(el); err != nil {
			return nil, fmt.Errorf("attach overlay input: %w", err)
		}
		el.OnChange(func() { el.SetHidden(true) })
		p.overlay = el
	}
	p.overlay.SetValue("")
	p.overlay.SetStyle(OverlayStyle)
	p.overlay.SetHidden(false)
	return p.overlay, nil
}

// NativeInput creates every input element unmodified.
type NativeInput struct {
	host InputHost
}

// NewNativeInput returns a passthrough provider.
func NewNativeInput(host InputHost) *NativeInput {
	return &NativeInput{host: host}
}

// CreateInput returns a plain detached element.
func (p *NativeInput) CreateInput(bool) (InputElement, error) {
	return p.host.NewInput()
}
