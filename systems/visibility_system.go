package systems

import (
	"buch-dungeon/ecs"
	"buch-dungeon/generation"
	"buch-dungeon/tilemap"
)

// Shadow alpha per room state
const (
	ShadowUnvisited = 1.0
	ShadowActive    = 0.0
	ShadowVisited   = 0.5
)

// VisibilitySystem darkens the shadow layer outside the player's room.
// Unvisited rooms stay black, the active room is clear and rooms the player
// has left are dimmed.
type VisibilitySystem struct {
	shadow *tilemap.Layer
	active *generation.Room
}

// NewVisibilitySystem creates a visibility system over a shadow layer filled
// with an opaque tile
func NewVisibilitySystem(shadow *tilemap.Layer) *VisibilitySystem {
	return &VisibilitySystem{shadow: shadow}
}

// ActiveRoom returns the room currently lit
func (s *VisibilitySystem) ActiveRoom() *generation.Room {
	return s.active
}

// Update lights room. Standing in a gap between rooms changes nothing.
func (s *VisibilitySystem) Update(world *ecs.World, room *generation.Room) {
	if room == nil || room == s.active {
		return
	}

	from := -1
	s.setRoomAlpha(room, ShadowActive)
	if s.active != nil {
		from = s.active.ID
		s.setRoomAlpha(s.active, ShadowVisited)
	}
	s.active = room

	if world != nil {
		world.EmitEvent(ActiveRoomChangeEvent{FromRoomID: from, ToRoomID: room.ID})
	}
}

func (s *VisibilitySystem) setRoomAlpha(room *generation.Room, alpha float64) {
	s.shadow.ForEachTile(room.X, room.Y, room.Width, room.Height, func(x, y, _ int) {
		s.shadow.SetAlpha(x, y, alpha)
	})
}
