package input

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownKey indicates a key name that cannot be mapped to a key code.
var ErrUnknownKey = errors.New("unknown key")

// Named keys with fixed key codes.
const (
	KeyShift     = "Shift"
	KeyBackspace = "Backspace"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
)

var namedKeyCodes = map[string]int{
	KeyShift:     16,
	KeyBackspace: 8,
	KeyEnter:     13,
	KeyEscape:    27,
}

// KeyCode returns the legacy keyCode for a key name.
//
// Named keys use their fixed codes. Any other name must be a single character
// and maps to the code point of its upper-case form, which is what the game
// reads from keyCode/which ("a" → 65, " " → 32, "À" → 192).
func KeyCode(name string) (int, error) {
	if code, ok := namedKeyCodes[name]; ok {
		return code, nil
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size != len(name) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return int(unicode.ToUpper(r)), nil
}

// KeyEvent builds a validated keyboard event for name.
func KeyEvent(name string, state State) (Event, error) {
	code, err := KeyCode(name)
	if err != nil {
		return Event{}, err
	}
	typ := TypeKeyDown
	if state == Up {
		typ = TypeKeyUp
	}
	return Event{
		Type:    typ,
		Target:  TargetWindow,
		Key:     name,
		KeyCode: code,
		Valid:   true,
	}, nil
}

// IsShifted reports whether r is an upper-case or otherwise shifted variant of
// itself, i.e. it differs from its lower-case form.
func IsShifted(r rune) bool {
	return unicode.ToLower(r) != r
}
