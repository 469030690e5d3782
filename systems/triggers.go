package systems

import (
	"math/rand"

	"buch-dungeon/generation"
)

// StairsTrigger fires once, the first time the player touches the stairs
type StairsTrigger struct {
	Fired bool
}

// Touch reports true on the first touch only
func (t *StairsTrigger) Touch() bool {
	if t.Fired {
		return false
	}
	t.Fired = true
	return true
}

// ChestTrigger grants a weapon the first time the player touches a chest.
// Later touches of any chest do nothing.
type ChestTrigger struct {
	Fired  bool
	Weapon string

	rng     *rand.Rand
	weapons []string
}

// NewChestTrigger creates a chest trigger picking from generation.ChestWeapons
func NewChestTrigger(rng *rand.Rand) *ChestTrigger {
	return &ChestTrigger{rng: rng, weapons: generation.ChestWeapons}
}

// Touch picks the weapon on the first touch. It reports whether this touch
// granted it.
func (t *ChestTrigger) Touch() (string, bool) {
	if t.Fired {
		return "", false
	}
	t.Fired = true
	t.Weapon = t.weapons[t.rng.Intn(len(t.weapons))]
	return t.Weapon, true
}
