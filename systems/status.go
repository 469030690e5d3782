package systems

import "fmt"

// InputState is the player's intent for one frame
type InputState struct {
	Up, Down, Left, Right bool
}

// Any reports whether a direction is held
func (in InputState) Any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// StatusDisplay holds the HUD values. The renderer draws one overlay per
// field from the current values, so repeated updates replace the text.
type StatusDisplay struct {
	Level  int
	Life   int
	Weapon string
}

// NewStatusDisplay creates the HUD state for a level
func NewStatusDisplay(level, life int) *StatusDisplay {
	return &StatusDisplay{Level: level, Life: life}
}

// SetLife replaces the life percentage, floored at zero
func (s *StatusDisplay) SetLife(life int) {
	if life < 0 {
		life = 0
	}
	s.Life = life
}

// Damage lowers life by amount and returns the new value
func (s *StatusDisplay) Damage(amount int) int {
	s.SetLife(s.Life - amount)
	return s.Life
}

// SetWeapon replaces the weapon name
func (s *StatusDisplay) SetWeapon(name string) {
	s.Weapon = name
}

// MissionText is the objective overlay
func (s *StatusDisplay) MissionText() string {
	return fmt.Sprintf("Mission: find the stairs.\nCurrent level: %d", s.Level)
}

// LifeText is the life overlay
func (s *StatusDisplay) LifeText() string {
	return fmt.Sprintf("Life\n%d%%", s.Life)
}

// WeaponText is the weapon overlay
func (s *StatusDisplay) WeaponText() string {
	return fmt.Sprintf("Weapon\n%s", s.Weapon)
}
