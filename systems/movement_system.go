package systems

import (
	"math"

	"buch-dungeon/components"
	"buch-dungeon/ecs"
	"buch-dungeon/tilemap"
)

// TouchedTile is a colliding tile a body ran into this frame
type TouchedTile struct {
	Layer *tilemap.Layer
	X, Y  int
	Index int
}

// MovementSystem moves bodies and keeps them out of colliding tiles
type MovementSystem struct {
	// Player speed in pixels per second
	Speed float64

	// The player collides with every layer; other tile colliders with the first one only
	layers []*tilemap.Layer
}

// NewMovementSystem creates a movement system. layers[0] is the ground layer.
func NewMovementSystem(speed float64, layers ...*tilemap.Layer) *MovementSystem {
	return &MovementSystem{Speed: speed, layers: layers}
}

// Update moves every non-player entity with a velocity, resolving tile
// colliders against the ground layer
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.GetEntitiesWithComponent(components.Velocity) {
		if entity.HasTag("player") {
			continue
		}
		pos, vel, body := s.movable(world, entity.ID)
		if pos == nil {
			continue
		}

		var layers []*tilemap.Layer
		if body != nil && world.HasComponent(entity.ID, components.TileCollider) && len(s.layers) > 0 {
			layers = s.layers[:1]
		}
		s.move(pos, body, vel.X*dt, vel.Y*dt, layers)
	}
}

// MovePlayer applies one frame of input to the player and returns the tiles
// the player bumped into. A frozen player does not move.
func (s *MovementSystem) MovePlayer(world *ecs.World, playerID ecs.EntityID, in InputState, dt float64) []TouchedTile {
	pos, vel, body := s.movable(world, playerID)
	if pos == nil {
		return nil
	}

	vel.X, vel.Y = 0, 0

	var player *components.PlayerComponent
	if comp, ok := world.GetComponent(playerID, components.Player); ok {
		player = comp.(*components.PlayerComponent)
	}
	if player != nil && player.Frozen {
		return nil
	}

	if in.Left {
		vel.X = -s.Speed
	} else if in.Right {
		vel.X = s.Speed
	}
	if in.Up {
		vel.Y = -s.Speed
	} else if in.Down {
		vel.Y = s.Speed
	}

	// Normalize so diagonal movement isn't faster
	if vel.X != 0 && vel.Y != 0 {
		vel.X /= math.Sqrt2
		vel.Y /= math.Sqrt2
	}

	if player != nil {
		if vel.X < 0 {
			player.FacingLeft = true
		} else if vel.X > 0 {
			player.FacingLeft = false
		}
	}

	if body == nil {
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		return nil
	}
	return s.move(pos, body, vel.X*dt, vel.Y*dt, s.layers)
}

func (s *MovementSystem) movable(world *ecs.World, id ecs.EntityID) (*components.PositionComponent, *components.VelocityComponent, *components.BodyComponent) {
	posComp, hasPos := world.GetComponent(id, components.Position)
	velComp, hasVel := world.GetComponent(id, components.Velocity)
	if !hasPos || !hasVel {
		return nil, nil, nil
	}

	var body *components.BodyComponent
	if comp, ok := world.GetComponent(id, components.Body); ok {
		body = comp.(*components.BodyComponent)
	}
	return posComp.(*components.PositionComponent), velComp.(*components.VelocityComponent), body
}

// move applies dx then dy, pushing the body back out of any colliding tile
// it enters. Resolving one axis at a time lets bodies slide along walls.
func (s *MovementSystem) move(pos *components.PositionComponent, body *components.BodyComponent, dx, dy float64, layers []*tilemap.Layer) []TouchedTile {
	var touched []TouchedTile

	if dx != 0 {
		pos.X += dx
		hits := blockingTiles(pos, body, layers)
		if len(hits) > 0 {
			touched = append(touched, hits...)
			minX, _, maxX, _ := body.Rect(pos)
			if dx > 0 {
				edge := math.Inf(1)
				for _, h := range hits {
					edge = math.Min(edge, h.Layer.TileToWorldX(h.X))
				}
				pos.X -= maxX - edge
			} else {
				edge := math.Inf(-1)
				for _, h := range hits {
					edge = math.Max(edge, h.Layer.TileToWorldX(h.X+1))
				}
				pos.X += edge - minX
			}
		}
	}

	if dy != 0 {
		pos.Y += dy
		hits := blockingTiles(pos, body, layers)
		if len(hits) > 0 {
			touched = append(touched, hits...)
			_, minY, _, maxY := body.Rect(pos)
			if dy > 0 {
				edge := math.Inf(1)
				for _, h := range hits {
					edge = math.Min(edge, h.Layer.TileToWorldY(h.Y))
				}
				pos.Y -= maxY - edge
			} else {
				edge := math.Inf(-1)
				for _, h := range hits {
					edge = math.Max(edge, h.Layer.TileToWorldY(h.Y+1))
				}
				pos.Y += edge - minY
			}
		}
	}

	return touched
}

// edgeEpsilon absorbs rounding left over after pushing a body out of a tile
const edgeEpsilon = 1e-6

// blockingTiles lists the colliding tiles overlapped by the body
func blockingTiles(pos *components.PositionComponent, body *components.BodyComponent, layers []*tilemap.Layer) []TouchedTile {
	minX, minY, maxX, maxY := body.Rect(pos)

	var hits []TouchedTile
	for _, layer := range layers {
		// A body whose edge sits on a tile boundary does not enter the next tile
		x0, y0 := layer.WorldToTileX(minX+edgeEpsilon), layer.WorldToTileY(minY+edgeEpsilon)
		x1, y1 := layer.WorldToTileX(maxX-edgeEpsilon), layer.WorldToTileY(maxY-edgeEpsilon)

		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				if layer.IsColliding(tx, ty) {
					hits = append(hits, TouchedTile{Layer: layer, X: tx, Y: ty, Index: layer.GetTileAt(tx, ty)})
				}
			}
		}
	}
	return hits
}
