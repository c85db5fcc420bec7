package session

import "testing"

type fakeElement string

func (f fakeElement) ID() string { return string(f) }

// TestPointerLock_SetAndClear verifies pointer lock state round-trips.
func TestPointerLock_SetAndClear(t *testing.T) {
	s := New()
	if s.PointerLocked() {
		t.Fatalf("expected unlocked session")
	}
	s.SetPointerLock(fakeElement("canvas"))
	if !s.PointerLocked() || s.PointerLock().ID() != "canvas" {
		t.Fatalf("expected canvas to hold pointer lock")
	}
	s.SetPointerLock(nil)
	if s.PointerLocked() || s.PointerLock() != nil {
		t.Fatalf("expected pointer lock cleared")
	}
}

// TestFullscreen_IndependentOfPointerLock verifies the two targets do not share state.
func TestFullscreen_IndependentOfPointerLock(t *testing.T) {
	s := New()
	s.SetFullscreen(fakeElement("root"))
	if s.PointerLocked() {
		t.Fatalf("fullscreen must not imply pointer lock")
	}
	if s.Fullscreen() == nil || s.Fullscreen().ID() != "root" {
		t.Fatalf("expected root fullscreen element")
	}
}

// TestToggleKeyboard verifies the keyboard flag flips.
func TestToggleKeyboard(t *testing.T) {
	s := New()
	if !s.ToggleKeyboard() || !s.KeyboardEnabled() {
		t.Fatalf("expected keyboard enabled after first toggle")
	}
	if s.ToggleKeyboard() || s.KeyboardEnabled() {
		t.Fatalf("expected keyboard disabled after second toggle")
	}
}

// TestSnapshot verifies snapshot content.
func TestSnapshot(t *testing.T) {
	s := New()
	s.SetPointerLock(fakeElement("canvas"))
	s.SetKeyboardEnabled(true)
	snap := s.Snapshot()
	if !snap.PointerLocked || snap.PointerLockID != "canvas" || snap.Fullscreen || !snap.KeyboardEnabled {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
