package capability_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frudas24/eaglermobile/internal/capability"
)

type fakeInput struct {
	value    string
	style    string
	hidden   bool
	onChange func()
}

func (f *fakeInput) SetValue(v string)     { f.value = v }
func (f *fakeInput) SetStyle(css string)   { f.style = css }
func (f *fakeInput) SetHidden(hidden bool) { f.hidden = hidden }
func (f *fakeInput) OnChange(fn func())    { f.onChange = fn }

type fakeHost struct {
	created  []*fakeInput
	attached map[capability.InputElement]bool
	err      error
}

func newFakeHost() *fakeHost {
	return &fakeHost{attached: map[capability.InputElement]bool{}}
}

func (h *fakeHost) NewInput() (capability.InputElement, error) {
	if h.err != nil {
		return nil, h.err
	}
	el := &fakeInput{value: "stale", hidden: true}
	h.created = append(h.created, el)
	return el, nil
}

func (h *fakeHost) Attached(el capability.InputElement) bool { return h.attached[el] }

func (h *fakeHost) Append(el capability.InputElement) error {
	h.attached[el] = true
	return nil
}

// TestSimulatedInput_OverlayReused verifies page requests share one visible overlay.
func TestSimulatedInput_OverlayReused(t *testing.T) {
	host := newFakeHost()
	p := capability.NewSimulatedInput(host)

	first, err := p.CreateInput(false)
	require.NoError(t, err)
	overlay := first.(*fakeInput)
	require.Equal(t, "", overlay.value)
	require.Equal(t, capability.OverlayStyle, overlay.style)
	require.False(t, overlay.hidden)

	overlay.onChange()
	require.True(t, overlay.hidden)

	second, err := p.CreateInput(false)
	require.NoError(t, err)
	require.Same(t, overlay, second.(*fakeInput))
	require.False(t, overlay.hidden)
	require.Len(t, host.created, 1)
}

// TestSimulatedInput_Reattaches verifies a removed overlay is replaced.
func TestSimulatedInput_Reattaches(t *testing.T) {
	host := newFakeHost()
	p := capability.NewSimulatedInput(host)
	first, err := p.CreateInput(false)
	require.NoError(t, err)
	delete(host.attached, first)

	second, err := p.CreateInput(false)
	require.NoError(t, err)
	require.NotSame(t, first.(*fakeInput), second.(*fakeInput))
	require.True(t, host.Attached(second))
}

// TestSimulatedInput_InternalIsPlain verifies shim-owned inputs are never turned into the overlay.
func TestSimulatedInput_InternalIsPlain(t *testing.T) {
	host := newFakeHost()
	p := capability.NewSimulatedInput(host)

	el, err := p.CreateInput(true)
	require.NoError(t, err)
	require.False(t, host.Attached(el))
	require.Equal(t, "", el.(*fakeInput).style)

	overlay, err := p.CreateInput(false)
	require.NoError(t, err)
	require.NotSame(t, el.(*fakeInput), overlay.(*fakeInput))
}

// TestSimulatedInput_HostError verifies creation errors are wrapped.
func TestSimulatedInput_HostError(t *testing.T) {
	boom := errors.New("boom")
	host := newFakeHost()
	host.err = boom
	_, err := capability.NewSimulatedInput(host).CreateInput(false)
	require.ErrorIs(t, err, boom)
}

// TestNativeInput verifies passthrough creation.
func TestNativeInput(t *testing.T) {
	host := newFakeHost()
	el, err := capability.NewNativeInput(host).CreateInput(false)
	require.NoError(t, err)
	require.False(t, host.Attached(el))
}
