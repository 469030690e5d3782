package systems

import (
	"buch-dungeon/components"
	"buch-dungeon/ecs"
)

// HazardSystem hurts the player on contact with hazard entities. After a hit
// the player is immune for Cooldown seconds.
type HazardSystem struct {
	Cooldown float64
	immune   float64
}

// NewHazardSystem creates a hazard system
func NewHazardSystem(cooldown float64) *HazardSystem {
	return &HazardSystem{Cooldown: cooldown}
}

// Check returns the hits the player takes this frame. At most one hazard hits
// per frame, the oldest first.
func (s *HazardSystem) Check(world *ecs.World, playerID ecs.EntityID, dt float64) []PlayerDamagedEvent {
	if s.immune > 0 {
		s.immune -= dt
		if s.immune > 0 {
			return nil
		}
	}

	posComp, hasPos := world.GetComponent(playerID, components.Position)
	bodyComp, hasBody := world.GetComponent(playerID, components.Body)
	if !hasPos || !hasBody {
		return nil
	}
	playerPos := posComp.(*components.PositionComponent)
	playerBody := bodyComp.(*components.BodyComponent)

	for _, entity := range world.GetEntitiesWithComponent(components.Hazard) {
		pos, ok1 := world.GetComponent(entity.ID, components.Position)
		body, ok2 := world.GetComponent(entity.ID, components.Body)
		if !ok1 || !ok2 {
			continue
		}

		if !components.Overlaps(playerBody, playerPos, body.(*components.BodyComponent), pos.(*components.PositionComponent)) {
			continue
		}

		hazard, _ := world.GetComponent(entity.ID, components.Hazard)
		s.immune = s.Cooldown
		return []PlayerDamagedEvent{{
			PlayerID: playerID,
			SourceID: entity.ID,
			Damage:   hazard.(*components.HazardComponent).Damage,
		}}
	}
	return nil
}
