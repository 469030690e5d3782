package spawners

import (
	"buch-dungeon/components"
	"buch-dungeon/ecs"
)

// Player walks while moving and rests on the idle frame otherwise
type Player struct {
	id ecs.EntityID
}

func (p *Player) ID() ecs.EntityID { return p.id }

func (p *Player) Update(world *ecs.World, dt float64) {
	anim := animationOf(world, p.id)
	if anim == nil {
		return
	}

	moving := false
	if comp, ok := world.GetComponent(p.id, components.Velocity); ok {
		vel := comp.(*components.VelocityComponent)
		moving = vel.X != 0 || vel.Y != 0
	}

	if moving {
		anim.Play(components.AnimPlayerWalk)
		anim.Advance(dt)
	} else if anim.Playing {
		anim.Stop(components.PlayerIdleFrame)
	}
}

// PatrolEnemy follows its patrol tween
type PatrolEnemy struct {
	id ecs.EntityID
}

func (e *PatrolEnemy) ID() ecs.EntityID { return e.id }

func (e *PatrolEnemy) Update(world *ecs.World, dt float64) {
	patrolComp, hasPatrol := world.GetComponent(e.id, components.Patrol)
	posComp, hasPos := world.GetComponent(e.id, components.Position)
	if hasPatrol && hasPos {
		pos := posComp.(*components.PositionComponent)
		pos.X, pos.Y = patrolComp.(*components.PatrolComponent).Advance(dt)
	}
	advance(world, e.id, dt)
}

// BladeTrap stays where it was placed
type BladeTrap struct {
	id ecs.EntityID
}

func (b *BladeTrap) ID() ecs.EntityID { return b.id }

func (b *BladeTrap) Update(world *ecs.World, dt float64) {
	advance(world, b.id, dt)
}

// Boss idles on its throne
type Boss struct {
	id ecs.EntityID
}

func (b *Boss) ID() ecs.EntityID { return b.id }

func (b *Boss) Update(world *ecs.World, dt float64) {
	advance(world, b.id, dt)
}

// FlyingEnemy hovers where it spawned; the movement system keeps it out of walls
type FlyingEnemy struct {
	id ecs.EntityID
}

func (f *FlyingEnemy) ID() ecs.EntityID { return f.id }

func (f *FlyingEnemy) Update(world *ecs.World, dt float64) {
	advance(world, f.id, dt)
}

func animationOf(world *ecs.World, id ecs.EntityID) *components.AnimationComponent {
	if comp, ok := world.GetComponent(id, components.Animation); ok {
		return comp.(*components.AnimationComponent)
	}
	return nil
}

func advance(world *ecs.World, id ecs.EntityID, dt float64) {
	if anim := animationOf(world, id); anim != nil {
		anim.Advance(dt)
	}
}
