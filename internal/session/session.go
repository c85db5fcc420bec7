// Package session holds the touch-input state shared by patches and controls.
package session

import "sync"

// Element identifies a page element that can hold simulated pointer lock or
// fullscreen.
type Element interface {
	ID() string
}

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	PointerLocked   bool   `json:"pointerLocked"`
	PointerLockID   string `json:"pointerLockId,omitempty"`
	Fullscreen      bool   `json:"fullscreen"`
	FullscreenID    string `json:"fullscreenId,omitempty"`
	KeyboardEnabled bool   `json:"keyboardEnabled"`
}

// Session owns the page-lifetime state of one touch-input shim instance.
type Session struct {
	mu              sync.RWMutex
	pointerLock     Element
	fullscreen      Element
	keyboardEnabled bool
}

// New returns an empty session: nothing locked, keyboard hidden.
func New() *Session {
	return &Session{}
}

// SetPointerLock records the element holding simulated pointer lock; nil clears it.
func (s *Session) SetPointerLock(el Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointerLock = el
}

// PointerLock returns the element holding simulated pointer lock, or nil.
func (s *Session) PointerLock() Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pointerLock
}

// PointerLocked reports whether an element holds simulated pointer lock.
func (s *Session) PointerLocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pointerLock != nil
}

// SetFullscreen records the simulated fullscreen element; nil clears it.
func (s *Session) SetFullscreen(el Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen = el
}

// Fullscreen returns the simulated fullscreen element, or nil.
func (s *Session) Fullscreen() Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fullscreen
}

// SetKeyboardEnabled records whether the on-screen keyboard should be shown.
func (s *Session) SetKeyboardEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyboardEnabled = enabled
}

// KeyboardEnabled reports whether the on-screen keyboard should be shown.
func (s *Session) KeyboardEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyboardEnabled
}

// ToggleKeyboard flips the keyboard flag and returns the new value.
func (s *Session) ToggleKeyboard() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyboardEnabled = !s.keyboardEnabled
	return s.keyboardEnabled
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		PointerLocked:   s.pointerLock != nil,
		Fullscreen:      s.fullscreen != nil,
		KeyboardEnabled: s.keyboardEnabled,
	}
	if s.pointerLock != nil {
		snap.PointerLockID = s.pointerLock.ID()
	}
	if s.fullscreen != nil {
		snap.FullscreenID = s.fullscreen.ID()
	}
	return snap
}
