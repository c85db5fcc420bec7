package surface

import (
	"sync"

	"github.com/frudas24/eaglermobile/internal/layout"
)

// Style block ids and their rules. Each block hides one subset; disabling a
// block shows that subset.
const (
	InGameStyleID  = "inGameStyle"
	InMenuStyleID  = "inMenuStyle"
	InGameStyleCSS = ".inGame { display: none; }"
	InMenuStyleCSS = ".inMenu { display: none; }"
)

// Visibility switches between the in-game and in-menu control subsets.
// Exactly one subset is shown at any time.
type Visibility struct {
	mu     sync.Mutex
	inGame StyleBlock
	inMenu StyleBlock
	locked bool
}

// NewVisibility returns a switch over the two style blocks, starting in the
// in-menu state.
func NewVisibility(inGame, inMenu StyleBlock) *Visibility {
	v := &Visibility{inGame: inGame, inMenu: inMenu}
	v.Apply(false)
	return v
}

// Apply shows the in-game subset when locked and the in-menu subset otherwise.
func (v *Visibility) Apply(locked bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.locked = locked
	v.inGame.SetDisabled(locked)
	v.inMenu.SetDisabled(!locked)
}

// Shown returns the subset currently visible.
func (v *Visibility) Shown() layout.Subset {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.locked {
		return layout.SubsetInGame
	}
	return layout.SubsetInMenu
}
