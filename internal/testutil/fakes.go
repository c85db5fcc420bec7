package testutil

import "sync"

// FakeIndicator records the visual state of a control.
type FakeIndicator struct {
	mu          sync.Mutex
	Active      bool
	Hidden      bool
	ActiveFlips int
}

// SetActive records the active state.
func (f *FakeIndicator) SetActive(active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Active != active {
		f.ActiveFlips++
	}
	f.Active = active
}

// SetHidden records the hidden state.
func (f *FakeIndicator) SetHidden(hidden bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Hidden = hidden
}

// IsActive returns the recorded active state.
func (f *FakeIndicator) IsActive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Active
}

// IsHidden returns the recorded hidden state.
func (f *FakeIndicator) IsHidden() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Hidden
}

// FakeField records text-field interactions.
type FakeField struct {
	Value   string
	Focused bool
	Calls   []string
}

// SetValue records a value write.
func (f *FakeField) SetValue(v string) {
	f.Value = v
	f.Calls = append(f.Calls, "SetValue")
}

// Focus records focus (select) of the field.
func (f *FakeField) Focus() {
	f.Focused = true
	f.Calls = append(f.Calls, "Focus")
}

// Blur records blur of the field.
func (f *FakeField) Blur() {
	f.Focused = false
	f.Calls = append(f.Calls, "Blur")
}

// FakeStyle records the disabled flag of a style block.
type FakeStyle struct {
	Disabled bool
	Writes   int
}

// SetDisabled records the disabled flag.
func (f *FakeStyle) SetDisabled(disabled bool) {
	f.Disabled = disabled
	f.Writes++
}

// FakeNotifier records notified DOM event types.
type FakeNotifier struct {
	Events []string
}

// Notify records eventType.
func (f *FakeNotifier) Notify(eventType string) {
	f.Events = append(f.Events, eventType)
}
