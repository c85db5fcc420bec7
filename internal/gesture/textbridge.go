package gesture

import "github.com/frudas24/eaglermobile/internal/input"

// Placeholder is the bridge field value kept between input events. A
// non-empty value lets the virtual keyboard report deletions.
const Placeholder = " "

// Input types reported by the bridge field.
const (
	InputInsertText     = "insertText"
	InputDeleteBackward = "deleteContentBackward"
	InputDeleteForward  = "deleteContentForward"
)

// Field is the off-screen text input that receives virtual keyboard input.
type Field interface {
	SetValue(v string)
	Focus()
	Blur()
}

// KeyboardFlag is the session flag toggled by the keyboard button.
type KeyboardFlag interface {
	ToggleKeyboard() bool
}

// TextBridge converts input events on the bridge field into key taps.
type TextBridge struct {
	em    *input.Emitter
	field Field
}

// NewTextBridge returns a bridge that resets field to the placeholder on
// every input event.
func NewTextBridge(em *input.Emitter, field Field) *TextBridge {
	return &TextBridge{em: em, field: field}
}

// Input handles one input event. Only the first rune of inserted text is
// typed; upper-case runes are wrapped in Shift.
func (b *TextBridge) Input(inputType, data string) error {
	b.field.SetValue(Placeholder)
	switch inputType {
	case InputInsertText:
		for _, r := range data {
			name := string(r)
			if input.IsShifted(r) {
				return b.em.TapShifted(name)
			}
			return b.em.Tap(name)
		}
		return nil
	case InputDeleteBackward, InputDeleteForward:
		return b.em.Tap(input.KeyBackspace)
	default:
		return nil
	}
}

// KeyboardToggle shows or hides the virtual keyboard by focusing the bridge field.
type KeyboardToggle struct {
	field Field
	flag  KeyboardFlag
}

// NewKeyboardToggle returns the keyboard button handler.
func NewKeyboardToggle(field Field, flag KeyboardFlag) *KeyboardToggle {
	return &KeyboardToggle{field: field, flag: flag}
}

// TouchStart blurs the field so the following focus reopens the keyboard.
func (k *KeyboardToggle) TouchStart(Point) error {
	k.field.Blur()
	return nil
}

// TouchMove does nothing.
func (k *KeyboardToggle) TouchMove(Point) error {
	return nil
}

// TouchEnd flips the keyboard flag and focuses or blurs the field to match.
func (k *KeyboardToggle) TouchEnd() error {
	if k.flag.ToggleKeyboard() {
		k.field.Focus()
	} else {
		k.field.Blur()
	}
	return nil
}
