package capability

import (
	"fmt"
	"strings"
)

// KeydownEvent is the only listener type gated by AllowKeydown.
const KeydownEvent = "keydown"

// AllowKeydown reports whether a listener registered for eventType should see
// an event. Keydown events reach page listeners only when they carry the
// validated marker set by the synthetic emitter; the game otherwise double
// handles virtual keyboard input.
func AllowKeydown(eventType string, valid bool) bool {
	if eventType != KeydownEvent {
		return true
	}
	return valid
}

// Scope selects which events have preventDefault suppressed while the text
// bridge is focused.
type Scope string

const (
	// ScopeAll suppresses preventDefault for every event type.
	ScopeAll Scope = "all"
	// ScopeKeyboard suppresses it for text-entry events only.
	ScopeKeyboard Scope = "keyboard"
)

// ParseScope validates a scope name. Empty selects ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch sc := Scope(strings.ToLower(strings.TrimSpace(s))); sc {
	case "":
		return ScopeAll, nil
	case ScopeAll, ScopeKeyboard:
		return sc, nil
	default:
		return "", fmt.Errorf("%w: scope %q", ErrInvalidMode, s)
	}
}

var keyboardEvents = map[string]bool{
	"keydown":     true,
	"keyup":       true,
	"keypress":    true,
	"input":       true,
	"beforeinput": true,
}

// DefaultActionPolicy decides whether Event.preventDefault takes effect.
type DefaultActionPolicy struct {
	// BridgeID is the id of the text bridge field.
	BridgeID string
	Scope    Scope
}

// Allow reports whether preventDefault should run for an event of eventType
// while the element with activeID has focus. While the bridge is focused the
// page must not cancel default actions, or the virtual keyboard cannot type.
func (p DefaultActionPolicy) Allow(activeID, eventType string) bool {
	if activeID == "" || activeID != p.BridgeID {
		return true
	}
	if p.Scope == ScopeKeyboard {
		return !keyboardEvents[eventType]
	}
	return false
}
