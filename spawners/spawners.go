package spawners

import (
	"fmt"

	"buch-dungeon/components"
	"buch-dungeon/data"
	"buch-dungeon/ecs"
)

// Patrol leg of the antifairy, relative to the player's spawn point
const (
	patrolStartX  = 50
	patrolStartY  = -30
	patrolTargetX = 120
	patrolTargetY = 180
	patrolSeconds = 2
	bladeTrapX    = 50
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world           *ecs.World
	templateManager *data.TemplateManager
	logMessage      func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, templateManager *data.TemplateManager, logFunc func(string)) *EntitySpawner {
	if templateManager == nil {
		templateManager = data.NewTemplateManager()
	}
	return &EntitySpawner{
		world:           world,
		templateManager: templateManager,
		logMessage:      logFunc,
	}
}

// CreatePlayer creates the player entity at the given pixel position
func (s *EntitySpawner) CreatePlayer(x, y float64) *ecs.Entity {
	playerEntity := s.createActorEntity(components.ActorPlayer, "player", x, y)

	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{})
	s.world.AddComponent(playerEntity.ID, components.Velocity, &components.VelocityComponent{})

	anim := components.NewAnimationComponent(components.AnimPlayerWalk)
	anim.Stop(components.PlayerIdleFrame)
	s.world.AddComponent(playerEntity.ID, components.Animation, anim)

	s.world.AddActor(&Player{id: playerEntity.ID})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Player created at %.0f,%.0f", x, y))
	}
	return playerEntity
}

// CreatePatrolEnemy creates the antifairy near the player's spawn point. It
// patrols back and forth forever.
func (s *EntitySpawner) CreatePatrolEnemy(originX, originY float64) *ecs.Entity {
	startX, startY := originX+patrolStartX, originY+patrolStartY
	enemy := s.createActorEntity(components.ActorPatrolEnemy, "enemy", startX, startY)

	s.world.AddComponent(enemy.ID, components.Patrol, &components.PatrolComponent{
		FromX:    startX,
		FromY:    startY,
		ToX:      originX + patrolTargetX,
		ToY:      originY + patrolTargetY,
		Duration: patrolSeconds,
	})
	s.world.AddComponent(enemy.ID, components.Animation, components.NewAnimationComponent(components.AnimAntifairy))
	s.addHazard(enemy.ID, components.ActorPatrolEnemy)

	s.world.AddActor(&PatrolEnemy{id: enemy.ID})
	return enemy
}

// CreateBladeTrap creates the still blade trap next to the player's spawn point
func (s *EntitySpawner) CreateBladeTrap(originX, originY float64) *ecs.Entity {
	trap := s.createActorEntity(components.ActorBladeTrap, "enemy", originX+bladeTrapX, originY)

	s.world.AddComponent(trap.ID, components.Animation, components.NewAnimationComponent(components.AnimBladeTrap))
	s.world.AddComponent(trap.ID, components.TileCollider, &components.TileColliderComponent{})
	s.addHazard(trap.ID, components.ActorBladeTrap)

	s.world.AddActor(&BladeTrap{id: trap.ID})
	return trap
}

// SpawnBoss creates the King playing its idle animation
func (s *EntitySpawner) SpawnBoss(x, y float64) ecs.EntityID {
	boss := s.createActorEntity(components.ActorBoss, "boss", x, y)
	s.world.AddComponent(boss.ID, components.Animation, components.NewAnimationComponent(components.AnimKing))
	s.world.AddActor(&Boss{id: boss.ID})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Boss spawned at %.0f,%.0f", x, y))
	}
	return boss.ID
}

// SpawnFlyingEnemy creates the insect. It collides with the ground layer.
func (s *EntitySpawner) SpawnFlyingEnemy(x, y float64) ecs.EntityID {
	insect := s.createActorEntity(components.ActorFlyingEnemy, "enemy", x, y)
	s.world.AddComponent(insect.ID, components.Velocity, &components.VelocityComponent{})
	s.world.AddComponent(insect.ID, components.TileCollider, &components.TileColliderComponent{})
	s.world.AddComponent(insect.ID, components.Animation, components.NewAnimationComponent(components.AnimInsect))
	s.world.AddActor(&FlyingEnemy{id: insect.ID})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Flying enemy spawned at %.0f,%.0f", x, y))
	}
	return insect.ID
}

// CreateCamera creates a camera entity that follows the given target entity
func (s *EntitySpawner) CreateCamera(target ecs.EntityID, viewW, viewH, worldW, worldH float64) *ecs.Entity {
	cameraEntity := s.world.CreateEntity()
	s.world.TagEntity(cameraEntity.ID, "camera")

	cameraComp := components.NewCameraComponent(target, viewW, viewH, worldW, worldH)
	s.world.AddComponent(cameraEntity.ID, components.Camera, cameraComp)

	return cameraEntity
}

// createActorEntity adds the parts every actor shares: tags, position, body
// and name from its template
func (s *EntitySpawner) createActorEntity(kind components.ActorKind, tag string, x, y float64) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, tag)
	s.world.TagEntity(entity.ID, kind.String())

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{X: x, Y: y})
	s.world.AddComponent(entity.ID, components.Actor, &components.ActorComponent{Kind: kind})

	if template, ok := s.templateManager.GetTemplate(kind.String()); ok {
		s.world.AddComponent(entity.ID, components.Body, &components.BodyComponent{
			Width:   template.BodyWidth,
			Height:  template.BodyHeight,
			OffsetX: template.BodyOffsetX,
			OffsetY: template.BodyOffsetY,
		})
		s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent(template.Name))
	} else if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("WARNING: no template for %s, created without a body", kind))
	}

	return entity
}

func (s *EntitySpawner) addHazard(id ecs.EntityID, kind components.ActorKind) {
	if template, ok := s.templateManager.GetTemplate(kind.String()); ok && template.Damage > 0 {
		s.world.AddComponent(id, components.Hazard, &components.HazardComponent{Damage: template.Damage})
	}
}
