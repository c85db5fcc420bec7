package gesture_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frudas24/eaglermobile/internal/gesture"
	"github.com/frudas24/eaglermobile/internal/input"
	"github.com/frudas24/eaglermobile/internal/testutil"
)

type holdFixture struct {
	rec    *testutil.Recorder
	clk    *testutil.ManualClock
	ind    *testutil.FakeIndicator
	crouch *gesture.HoldLock
}

func newHoldFixture() *holdFixture {
	rec := &testutil.Recorder{}
	clk := &testutil.ManualClock{}
	ind := &testutil.FakeIndicator{}
	em := input.NewEmitter(rec, rec)
	return &holdFixture{
		rec:    rec,
		clk:    clk,
		ind:    ind,
		crouch: gesture.NewHoldLock(gesture.KeyPress(em, input.KeyShift), ind, clk, time.Second),
	}
}

// TestHoldLock_QuickTap verifies a tap shorter than the hold duration is a plain press.
func TestHoldLock_QuickTap(t *testing.T) {
	f := newHoldFixture()
	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	f.clk.Advance(300 * time.Millisecond)
	require.NoError(t, f.crouch.TouchEnd())

	require.Equal(t, []string{"keydown:Shift", "keyup:Shift"}, f.rec.Summary())
	require.Equal(t, gesture.LockIdle, f.crouch.State())
	require.False(t, f.ind.IsActive())

	// The cancelled timer must not latch later.
	f.clk.Advance(5 * time.Second)
	require.Equal(t, gesture.LockIdle, f.crouch.State())
	require.Zero(t, f.ind.ActiveFlips)
}

// TestHoldLock_LatchesAfterHold verifies holding past the duration latches once and suppresses key-up.
func TestHoldLock_LatchesAfterHold(t *testing.T) {
	f := newHoldFixture()
	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	f.clk.Advance(time.Second)
	require.Equal(t, gesture.LockLatched, f.crouch.State())
	require.True(t, f.ind.IsActive())

	require.NoError(t, f.crouch.TouchEnd())
	require.Equal(t, gesture.LockLatched, f.crouch.State())
	require.True(t, f.crouch.Engaged())
	require.Equal(t, []string{"keydown:Shift"}, f.rec.Summary())
	require.Equal(t, 1, f.ind.ActiveFlips)
}

// TestHoldLock_TapUnlatches verifies a quick tap on a latched control releases the key.
func TestHoldLock_TapUnlatches(t *testing.T) {
	f := newHoldFixture()
	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	f.clk.Advance(time.Second)
	require.NoError(t, f.crouch.TouchEnd())
	f.rec.Reset()

	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	require.Equal(t, gesture.LockUnlatching, f.crouch.State())
	require.NoError(t, f.crouch.TouchEnd())

	require.Equal(t, gesture.LockIdle, f.crouch.State())
	require.False(t, f.ind.IsActive())
	require.Equal(t, []string{"keydown:Shift", "keyup:Shift"}, f.rec.Summary())
}

// TestHoldLock_LongPressOnLatched verifies holding a latched control drops back to a plain press.
func TestHoldLock_LongPressOnLatched(t *testing.T) {
	f := newHoldFixture()
	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	f.clk.Advance(time.Second)
	require.NoError(t, f.crouch.TouchEnd())

	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	f.clk.Advance(time.Second)
	require.Equal(t, gesture.LockPressed, f.crouch.State())
	require.False(t, f.ind.IsActive())

	require.NoError(t, f.crouch.TouchEnd())
	require.Equal(t, gesture.LockIdle, f.crouch.State())
	require.Zero(t, f.clk.Pending())
}

// TestHoldLock_StaleTimerIgnored verifies a timer armed by an earlier press cannot latch a later one.
func TestHoldLock_StaleTimerIgnored(t *testing.T) {
	f := newHoldFixture()
	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	f.clk.Advance(900 * time.Millisecond)
	require.NoError(t, f.crouch.TouchEnd())

	require.NoError(t, f.crouch.TouchStart(gesture.Point{}))
	f.clk.Advance(200 * time.Millisecond)
	require.Equal(t, gesture.LockPressed, f.crouch.State())
	f.clk.Advance(800 * time.Millisecond)
	require.Equal(t, gesture.LockLatched, f.crouch.State())
}

// TestLockState_String verifies phase names.
func TestLockState_String(t *testing.T) {
	require.Equal(t, "idle", gesture.LockIdle.String())
	require.Equal(t, "pressed", gesture.LockPressed.String())
	require.Equal(t, "latched", gesture.LockLatched.String())
	require.Equal(t, "unlatching", gesture.LockUnlatching.String())
}

// TestHoldLock_ReentrantRelease verifies a listener that ends the touch while
// the key-down is being dispatched does not block and leaves no key held.
func TestHoldLock_ReentrantRelease(t *testing.T) {
	rec := &testutil.Recorder{}
	clk := &testutil.ManualClock{}
	ind := &testutil.FakeIndicator{}
	em := input.NewEmitter(rec, rec)

	var crouch *gesture.HoldLock
	reentered := false
	press := func(state input.State) error {
		if err := em.Key(input.KeyShift, state); err != nil {
			return err
		}
		if state == input.Down && !reentered {
			reentered = true
			return crouch.TouchEnd()
		}
		return nil
	}
	crouch = gesture.NewHoldLock(press, ind, clk, time.Second)

	done := make(chan error, 1)
	go func() { done <- crouch.TouchStart(gesture.Point{}) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("touch start blocked on a re-entrant release")
	}

	require.Equal(t, []string{"keydown:Shift", "keyup:Shift"}, rec.Summary())
	require.Equal(t, gesture.LockIdle, crouch.State())
	clk.Advance(2 * time.Second)
	require.Equal(t, gesture.LockIdle, crouch.State())
	require.False(t, ind.IsActive())
}
