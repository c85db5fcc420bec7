package capability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frudas24/eaglermobile/internal/capability"
)

// TestAllowKeydown verifies only unvalidated keydown events are dropped.
func TestAllowKeydown(t *testing.T) {
	require.True(t, capability.AllowKeydown("keydown", true))
	require.False(t, capability.AllowKeydown("keydown", false))
	require.True(t, capability.AllowKeydown("keyup", false))
	require.True(t, capability.AllowKeydown("mousedown", false))
}

// TestDefaultActionPolicy_ScopeAll verifies the bridge disables every preventDefault while focused.
func TestDefaultActionPolicy_ScopeAll(t *testing.T) {
	p := capability.DefaultActionPolicy{BridgeID: "hiddenInput", Scope: capability.ScopeAll}
	require.True(t, p.Allow("", "touchmove"))
	require.True(t, p.Allow("canvas", "keydown"))
	require.False(t, p.Allow("hiddenInput", "keydown"))
	require.False(t, p.Allow("hiddenInput", "touchmove"))
}

// TestDefaultActionPolicy_ScopeKeyboard verifies the narrowed scope keeps touch suppression.
func TestDefaultActionPolicy_ScopeKeyboard(t *testing.T) {
	p := capability.DefaultActionPolicy{BridgeID: "hiddenInput", Scope: capability.ScopeKeyboard}
	require.False(t, p.Allow("hiddenInput", "keydown"))
	require.False(t, p.Allow("hiddenInput", "beforeinput"))
	require.True(t, p.Allow("hiddenInput", "touchmove"))
}

// TestParseScope verifies scope parsing.
func TestParseScope(t *testing.T) {
	s, err := capability.ParseScope("")
	require.NoError(t, err)
	require.Equal(t, capability.ScopeAll, s)
	s, err = capability.ParseScope("KEYBOARD")
	require.NoError(t, err)
	require.Equal(t, capability.ScopeKeyboard, s)
	_, err = capability.ParseScope("mouse")
	require.ErrorIs(t, err, capability.ErrInvalidMode)
}
