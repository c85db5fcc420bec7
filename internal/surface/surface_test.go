package surface_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/gesture"
	"github.com/frudas24/eaglermobile/internal/input"
	"github.com/frudas24/eaglermobile/internal/layout"
	"github.com/frudas24/eaglermobile/internal/session"
	"github.com/frudas24/eaglermobile/internal/surface"
	"github.com/frudas24/eaglermobile/internal/testutil"
)

type fakeElement struct {
	testutil.FakeIndicator
	tag     string
	classes []string
	style   string
	text    string
	touch   func(surface.TouchEvent)
}

func (e *fakeElement) AddClass(names ...string)            { e.classes = append(e.classes, names...) }
func (e *fakeElement) SetStyle(css string)                 { e.style = css }
func (e *fakeElement) SetText(text string)                 { e.text = text }
func (e *fakeElement) OnTouch(fn func(surface.TouchEvent)) { e.touch = fn }

type fakeField struct {
	fakeElement
	testutil.FakeField
	id    string
	input func(inputType, data string)
}

func (f *fakeField) OnInput(fn func(inputType, data string)) { f.input = fn }

type fakeDocument struct {
	height   float64
	created  []*fakeElement
	field    *fakeField
	appended []surface.Element
}

func (d *fakeDocument) CreateElement(tag string) (surface.Element, error) {
	el := &fakeElement{tag: tag}
	d.created = append(d.created, el)
	return el, nil
}

func (d *fakeDocument) CreateField(id string) (surface.Field, error) {
	d.field = &fakeField{id: id}
	return d.field, nil
}

func (d *fakeDocument) Append(el surface.Element) error {
	d.appended = append(d.appended, el)
	return nil
}

func (d *fakeDocument) ViewportHeight() float64 { return d.height }

type canvas struct{}

func (canvas) ID() string { return "canvas" }

type fixture struct {
	doc    *fakeDocument
	rec    *testutil.Recorder
	clk    *testutil.ManualClock
	sess   *session.Session
	inGame *testutil.FakeStyle
	inMenu *testutil.FakeStyle
	vis    *surface.Visibility
	canvas *fakeElement
	s      *surface.Surface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		doc:    &fakeDocument{height: 1000},
		rec:    &testutil.Recorder{},
		clk:    &testutil.ManualClock{},
		sess:   session.New(),
		inGame: &testutil.FakeStyle{},
		inMenu: &testutil.FakeStyle{},
		canvas: &fakeElement{tag: "canvas"},
	}
	f.vis = surface.NewVisibility(f.inGame, f.inMenu)
	s, err := surface.Build(f.doc, layout.Default(), surface.Deps{
		Emitter:    input.NewEmitter(f.rec, f.rec),
		Session:    f.sess,
		Clock:      f.clk,
		Visibility: f.vis,
		Canvas:     f.canvas,
		Logger:     zap.NewNop(),
	})
	require.NoError(t, err)
	f.s = s
	return f
}

func (f *fixture) element(t *testing.T, name string) *fakeElement {
	t.Helper()
	el, ok := f.s.Element(name)
	require.True(t, ok, name)
	return el.(*fakeElement)
}

func tap(el *fakeElement, phase surface.TouchPhase, x float64) {
	el.touch(surface.TouchEvent{Phase: phase, Point: gesture.Point{X: x, Y: 500}})
}

// TestBuild_CreatesEveryControl verifies classes, styles and append order.
func TestBuild_CreatesEveryControl(t *testing.T) {
	f := newFixture(t)
	l := layout.Default()

	require.Len(t, f.doc.created, len(l.Controls))
	require.Len(t, f.doc.appended, len(l.Controls)+1)
	require.Same(t, f.doc.field, f.doc.appended[0].(*fakeField))
	require.Equal(t, "hiddenInput", f.doc.field.id)
	require.Equal(t, gesture.Placeholder, f.doc.field.Value)
	require.Equal(t, []string{"inMenu"}, f.doc.field.classes)

	fwd := f.element(t, "forwardButton")
	require.Equal(t, "div", fwd.tag)
	require.Equal(t, []string{"forwardButton", "inGame", surface.ControlClass}, fwd.classes)
	require.Equal(t, "left:10vh;bottom:20vh;", fwd.style)

	require.True(t, f.element(t, "strafeLeftButton").IsHidden())
	require.True(t, f.element(t, "strafeRightButton").IsHidden())
	require.False(t, f.element(t, "jumpButton").IsHidden())
}

// TestTouch_RoutesToGestures verifies controls drive the emitter.
func TestTouch_RoutesToGestures(t *testing.T) {
	f := newFixture(t)

	jump := f.element(t, "jumpButton")
	tap(jump, surface.TouchStart, 0)
	tap(jump, surface.TouchEnd, 0)

	place := f.element(t, "placeButton")
	tap(place, surface.TouchStart, 0)
	tap(place, surface.TouchEnd, 0)

	tap(f.element(t, "scrollUpButton"), surface.TouchStart, 0)

	persp := f.element(t, "perspectiveButton")
	tap(persp, surface.TouchStart, 0)
	tap(persp, surface.TouchEnd, 0)

	require.Equal(t, []string{
		"keydown: ", "keyup: ",
		"mousedown:2", "mouseup:2",
		"wheel:-10",
		"keydown:F", "keydown:5", "keyup:5", "keyup:F",
	}, f.rec.Summary())
}

// TestTouch_ForwardStrafeDrivesIndicators verifies the forward control uses its indicators.
func TestTouch_ForwardStrafeDrivesIndicators(t *testing.T) {
	f := newFixture(t)
	fwd := f.element(t, "forwardButton")
	right := f.element(t, "strafeRightButton")

	tap(fwd, surface.TouchStart, 200)
	require.False(t, right.IsHidden())
	tap(fwd, surface.TouchMove, 350)
	require.True(t, right.IsActive())
	tap(fwd, surface.TouchEnd, 350)
	require.True(t, right.IsHidden())

	require.Equal(t, []string{"keydown:W", "keydown:D", "keyup:W", "keyup:D", "keyup:A"}, f.rec.Summary())
}

// TestTouch_MoveSuppressesDrag verifies every move cancels the default action.
func TestTouch_MoveSuppressesDrag(t *testing.T) {
	f := newFixture(t)
	cancelled := 0
	prevent := func() { cancelled++ }

	require.NoError(t, f.s.Touch("jumpButton", surface.TouchEvent{Phase: surface.TouchStart, PreventDefault: prevent}))
	require.NoError(t, f.s.Touch("jumpButton", surface.TouchEvent{Phase: surface.TouchMove, PreventDefault: prevent}))
	require.NoError(t, f.s.Touch("strafeLeftButton", surface.TouchEvent{Phase: surface.TouchMove, PreventDefault: prevent}))
	require.Equal(t, 2, cancelled)
}

// TestTouch_Unknown verifies touches for missing controls are rejected.
func TestTouch_Unknown(t *testing.T) {
	f := newFixture(t)
	err := f.s.Touch("ghostButton", surface.TouchEvent{Phase: surface.TouchStart})
	require.ErrorIs(t, err, surface.ErrUnknownControl)
}

// TestCanvas_Look verifies canvas drags move the camera while locked.
func TestCanvas_Look(t *testing.T) {
	f := newFixture(t)
	f.sess.SetPointerLock(canvas{})

	tap(f.canvas, surface.TouchStart, 100)
	tap(f.canvas, surface.TouchMove, 100)
	tap(f.canvas, surface.TouchMove, 110)
	tap(f.canvas, surface.TouchEnd, 110)
	require.Equal(t, []string{"mousemove:10,0"}, f.rec.Summary())
}

// TestKeyboardButton_TogglesBridge verifies the keyboard control focuses the bridge field.
func TestKeyboardButton_TogglesBridge(t *testing.T) {
	f := newFixture(t)
	kb := f.element(t, "keyboardButton")
	tap(kb, surface.TouchStart, 0)
	tap(kb, surface.TouchEnd, 0)
	require.True(t, f.sess.KeyboardEnabled())
	require.True(t, f.doc.field.Focused)

	f.doc.field.input(gesture.InputInsertText, "A")
	require.Equal(t, []string{"keydown:Shift", "keydown:A", "keyup:A", "keyup:Shift"}, f.rec.Summary())
}

// TestRelease_EndsActiveGestures verifies held keys are released once, and later ends are ignored.
func TestRelease_EndsActiveGestures(t *testing.T) {
	f := newFixture(t)
	fwd := f.element(t, "forwardButton")
	back := f.element(t, "backButton")
	tap(fwd, surface.TouchStart, 0)
	tap(back, surface.TouchStart, 0)
	f.rec.Reset()

	require.NoError(t, f.s.Release())
	require.ElementsMatch(t, []string{"keyup:S", "keyup:W", "keyup:D", "keyup:A"}, f.rec.Summary())

	f.rec.Reset()
	tap(back, surface.TouchEnd, 0)
	tap(fwd, surface.TouchEnd, 0)
	require.Empty(t, f.rec.Summary())
}

// TestRelease_KeepsLatchedControl verifies a latched crouch survives a release.
func TestRelease_KeepsLatchedControl(t *testing.T) {
	f := newFixture(t)
	crouch := f.element(t, "crouchButton")
	tap(crouch, surface.TouchStart, 0)
	f.clk.Advance(time.Second)
	require.True(t, crouch.IsActive())

	require.NoError(t, f.s.Release())
	require.Equal(t, []string{"keydown:Shift"}, f.rec.Summary())
	require.True(t, crouch.IsActive())
}

// TestVisibility_ExactlyOneSubset verifies the two style blocks are always complementary.
func TestVisibility_ExactlyOneSubset(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, layout.SubsetInMenu, f.vis.Shown())
	for _, locked := range []bool{true, true, false, true, false, false} {
		f.vis.Apply(locked)
		require.NotEqual(t, f.inGame.Disabled, f.inMenu.Disabled)
		require.Equal(t, locked, f.inGame.Disabled)
		if locked {
			require.Equal(t, layout.SubsetInGame, f.vis.Shown())
		} else {
			require.Equal(t, layout.SubsetInMenu, f.vis.Shown())
		}
	}
}

// TestBuild_AppliesInitialVisibility verifies a surface built while locked shows the in-game subset.
func TestBuild_AppliesInitialVisibility(t *testing.T) {
	sess := session.New()
	sess.SetPointerLock(canvas{})
	inGame, inMenu := &testutil.FakeStyle{}, &testutil.FakeStyle{}
	vis := surface.NewVisibility(inGame, inMenu)
	rec := &testutil.Recorder{}
	_, err := surface.Build(&fakeDocument{height: 800}, layout.Default(), surface.Deps{
		Emitter:    input.NewEmitter(rec, rec),
		Session:    sess,
		Visibility: vis,
	})
	require.NoError(t, err)
	require.Equal(t, layout.SubsetInGame, vis.Shown())
	require.True(t, inGame.Disabled)
	require.False(t, inMenu.Disabled)
}

// TestTouchPhase_String verifies phases map to their DOM event names.
func TestTouchPhase_String(t *testing.T) {
	require.Equal(t, "touchstart", surface.TouchStart.String())
	require.Equal(t, "touchmove", surface.TouchMove.String())
	require.Equal(t, "touchend", surface.TouchEnd.String())
}
