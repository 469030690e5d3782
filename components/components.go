package components

import (
	"buch-dungeon/ecs"
)

// Define component IDs for our game
const (
	Position ecs.ComponentID = iota
	Body
	Velocity
	Player
	Actor
	Animation
	Patrol
	Hazard
	TileCollider
	Camera
	Name
)

// PositionComponent stores the entity's pixel position (sprite center)
type PositionComponent struct {
	X, Y float64
}

// BodyComponent is an axis-aligned collision box relative to the position
type BodyComponent struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

// Rect returns the box in world pixels as min and max corners
func (b *BodyComponent) Rect(pos *PositionComponent) (minX, minY, maxX, maxY float64) {
	minX = pos.X + b.OffsetX
	minY = pos.Y + b.OffsetY
	return minX, minY, minX + b.Width, minY + b.Height
}

// Overlaps reports whether two bodies intersect
func Overlaps(a *BodyComponent, pa *PositionComponent, b *BodyComponent, pb *PositionComponent) bool {
	aMinX, aMinY, aMaxX, aMaxY := a.Rect(pa)
	bMinX, bMinY, bMaxX, bMaxY := b.Rect(pb)
	return aMinX < bMaxX && bMinX < aMaxX && aMinY < bMaxY && bMinY < aMaxY
}

// VelocityComponent stores movement in pixels per second
type VelocityComponent struct {
	X, Y float64
}

// PlayerComponent holds the player's game fields
type PlayerComponent struct {
	Frozen     bool // input ignored, used while leaving the dungeon
	HasWeapon  bool
	Weapon     string
	FacingLeft bool
}

// ActorKind names the actor variants
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorPatrolEnemy
	ActorBladeTrap
	ActorBoss
	ActorFlyingEnemy
)

func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorPatrolEnemy:
		return "antifairy"
	case ActorBladeTrap:
		return "bladetrap"
	case ActorBoss:
		return "king"
	case ActorFlyingEnemy:
		return "insect"
	default:
		return "unknown"
	}
}

// ActorComponent records which variant an entity is
type ActorComponent struct {
	Kind ActorKind
}

// PatrolComponent moves an entity back and forth between two points
type PatrolComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Duration     float64 // seconds for one leg
	Elapsed      float64
}

// Advance moves the tween forward and returns the new position. The tween
// runs linearly to the target, then back, forever.
func (p *PatrolComponent) Advance(dt float64) (x, y float64) {
	if p.Duration <= 0 {
		return p.FromX, p.FromY
	}
	cycle := 2 * p.Duration
	p.Elapsed += dt
	for p.Elapsed >= cycle {
		p.Elapsed -= cycle
	}

	t := p.Elapsed / p.Duration
	if t > 1 {
		t = 2 - t
	}
	return p.FromX + (p.ToX-p.FromX)*t, p.FromY + (p.ToY-p.FromY)*t
}

// HazardComponent marks an entity that hurts the player on contact
type HazardComponent struct {
	Damage int
}

// TileColliderComponent keeps an entity out of colliding ground tiles
type TileColliderComponent struct{}
