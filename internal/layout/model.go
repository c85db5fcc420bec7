// Package layout describes the on-screen control set: which controls exist,
// where they sit, which subset shows them and which gesture drives them.
package layout

import (
	"errors"
	"fmt"
	"time"

	"github.com/frudas24/eaglermobile/internal/input"
)

var (
	// ErrInvalid indicates a layout that fails validation.
	ErrInvalid = errors.New("invalid layout")
	// ErrUnknownControl indicates a lookup for a control that does not exist.
	ErrUnknownControl = errors.New("unknown control")
)

// Gesture names the handler bound to a control.
type Gesture string

const (
	GestureKey           Gesture = "key"
	GestureCombo         Gesture = "combo"
	GesturePointer       Gesture = "pointer"
	GestureWheel         Gesture = "wheel"
	GestureHoldLock      Gesture = "hold-lock"
	GestureForwardStrafe Gesture = "forward-strafe"
	// GestureIndicator controls have no handler; another control drives them.
	GestureIndicator Gesture = "indicator"
	GestureKeyboard  Gesture = "keyboard"
)

// Subset is the visibility group of a control.
type Subset string

const (
	// SubsetInGame controls show while pointer lock is held.
	SubsetInGame Subset = "inGame"
	// SubsetInMenu controls show otherwise.
	SubsetInMenu Subset = "inMenu"
)

// Wheel directions.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Control is one on-screen control.
type Control struct {
	Name      string   `yaml:"name"`
	Subset    Subset   `yaml:"subset"`
	Element   string   `yaml:"element,omitempty"`
	Style     string   `yaml:"style,omitempty"`
	Label     string   `yaml:"label,omitempty"`
	Gesture   Gesture  `yaml:"gesture"`
	Keys      []string `yaml:"keys,omitempty"`
	Button    int      `yaml:"button,omitempty"`
	Direction string   `yaml:"direction,omitempty"`
	Left      string   `yaml:"left,omitempty"`
	Right     string   `yaml:"right,omitempty"`
}

// Bridge is the off-screen text field fed by the virtual keyboard.
type Bridge struct {
	ID     string `yaml:"id"`
	Subset Subset `yaml:"subset"`
	Style  string `yaml:"style,omitempty"`
}

// Layout is the full control set plus gesture tuning.
type Layout struct {
	// StrafeThreshold is the fraction of the viewport height a forward drag
	// must travel sideways before it strafes.
	StrafeThreshold float64       `yaml:"strafeThreshold"`
	HoldDuration    time.Duration `yaml:"holdDuration"`
	ScrollDelta     float64       `yaml:"scrollDelta"`
	Bridge          Bridge        `yaml:"bridge"`
	Controls        []Control     `yaml:"controls"`
}

// Control returns the control with the given name.
func (l Layout) Control(name string) (Control, error) {
	for _, c := range l.Controls {
		if c.Name == name {
			return c, nil
		}
	}
	return Control{}, fmt.Errorf("%w: %q", ErrUnknownControl, name)
}

// InSubset returns the controls shown with subset s, in layout order.
func (l Layout) InSubset(s Subset) []Control {
	var out []Control
	for _, c := range l.Controls {
		if c.Subset == s {
			out = append(out, c)
		}
	}
	return out
}

// ElementName returns the tag to create for c.
func (c Control) ElementName() string {
	if c.Element == "" {
		return "button"
	}
	return c.Element
}

// WheelDelta returns the signed scroll delta of a wheel control; up is negative.
func (c Control) WheelDelta(magnitude float64) float64 {
	if c.Direction == DirectionUp {
		return -magnitude
	}
	return magnitude
}

// Validate reports every structural problem in l, joined and wrapped in ErrInvalid.
func (l Layout) Validate() error {
	var errs []error
	if l.StrafeThreshold <= 0 {
		errs = append(errs, errors.New("strafeThreshold must be > 0"))
	}
	if l.HoldDuration <= 0 {
		errs = append(errs, errors.New("holdDuration must be > 0"))
	}
	if l.ScrollDelta <= 0 {
		errs = append(errs, errors.New("scrollDelta must be > 0"))
	}
	if l.Bridge.ID == "" {
		errs = append(errs, errors.New("bridge.id is required"))
	}
	if !validSubset(l.Bridge.Subset) {
		errs = append(errs, fmt.Errorf("bridge: subset %q must be inGame or inMenu", l.Bridge.Subset))
	}

	names := make(map[string]Control, len(l.Controls))
	for i, c := range l.Controls {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("controls[%d]: name is required", i))
			continue
		}
		if _, dup := names[c.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate name", c.Name))
		}
		if c.Name == l.Bridge.ID {
			errs = append(errs, fmt.Errorf("%s: name collides with bridge id", c.Name))
		}
		names[c.Name] = c
		if !validSubset(c.Subset) {
			errs = append(errs, fmt.Errorf("%s: subset %q must be inGame or inMenu", c.Name, c.Subset))
		}
		errs = append(errs, c.validateGesture()...)
	}

	for _, c := range l.Controls {
		if c.Gesture != GestureForwardStrafe {
			continue
		}
		for _, ref := range []string{c.Left, c.Right} {
			target, ok := names[ref]
			switch {
			case ref == "":
				errs = append(errs, fmt.Errorf("%s: left and right indicators are required", c.Name))
			case !ok:
				errs = append(errs, fmt.Errorf("%s: indicator %q does not exist", c.Name, ref))
			case target.Gesture != GestureIndicator:
				errs = append(errs, fmt.Errorf("%s: %q must use the indicator gesture", c.Name, ref))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// validateGesture checks the fields each gesture kind depends on.
func (c Control) validateGesture() []error {
	var errs []error
	needKeys := func(n int) {
		if len(c.Keys) < n {
			errs = append(errs, fmt.Errorf("%s: %s needs at least %d key(s)", c.Name, c.Gesture, n))
		}
	}
	switch c.Gesture {
	case GestureKey, GestureHoldLock:
		needKeys(1)
	case GestureCombo:
		needKeys(2)
	case GestureForwardStrafe:
		if len(c.Keys) != 3 {
			errs = append(errs, fmt.Errorf("%s: forward-strafe needs forward, left and right keys", c.Name))
		}
	case GesturePointer:
		if c.Button < 0 || c.Button > 2 {
			errs = append(errs, fmt.Errorf("%s: button %d out of range", c.Name, c.Button))
		}
	case GestureWheel:
		if c.Direction != DirectionUp && c.Direction != DirectionDown {
			errs = append(errs, fmt.Errorf("%s: direction must be up or down", c.Name))
		}
	case GestureIndicator, GestureKeyboard:
	default:
		errs = append(errs, fmt.Errorf("%s: unknown gesture %q", c.Name, c.Gesture))
	}
	for _, k := range c.Keys {
		if _, err := input.KeyCode(k); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	return errs
}

func validSubset(s Subset) bool {
	return s == SubsetInGame || s == SubsetInMenu
}
