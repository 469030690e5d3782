package systems

import (
	"github.com/sirupsen/logrus"

	"buch-dungeon/ecs"
	"buch-dungeon/generation"
	"buch-dungeon/tilemap"
)

// Offset from the flying anchor to the flying enemy's spawn point
const (
	flyingSpawnOffsetX = 30
	flyingSpawnOffsetY = -30
)

// RoomLocator finds the room covering a tile
type RoomLocator interface {
	GetRoomAt(x, y int) *generation.Room
}

// EncounterSpawner creates the encounter enemies
type EncounterSpawner interface {
	SpawnBoss(x, y float64) ecs.EntityID
	SpawnFlyingEnemy(x, y float64) ecs.EntityID
}

// EncounterSystem spawns the boss and the flying enemy when the player first
// enters the room holding their anchor
type EncounterSystem struct {
	rooms   RoomLocator
	grid    *tilemap.Layer // converts anchor pixels to tiles
	spawner EncounterSpawner
	log     logrus.FieldLogger

	Boss   generation.Anchor
	Flying generation.Anchor

	// BossPending stays true until the boss has spawned
	BossPending bool
	BossID      ecs.EntityID
	FlyingID    ecs.EntityID
}

// NewEncounterSystem creates an encounter system for one dungeon
func NewEncounterSystem(rooms RoomLocator, grid *tilemap.Layer, spawner EncounterSpawner, boss, flying generation.Anchor, log logrus.FieldLogger) *EncounterSystem {
	if log == nil {
		log = logrus.New()
	}
	return &EncounterSystem{
		rooms:       rooms,
		grid:        grid,
		spawner:     spawner,
		log:         log,
		Boss:        boss,
		Flying:      flying,
		BossPending: true,
	}
}

// Update checks both encounters against the room the player stands in
func (s *EncounterSystem) Update(world *ecs.World, playerRoom *generation.Room) {
	if playerRoom == nil {
		return
	}

	if s.BossPending && s.anchorRoom(s.Boss) == playerRoom {
		s.BossID = s.spawner.SpawnBoss(s.Boss.X, s.Boss.Y)
		s.BossPending = false

		s.log.WithFields(logrus.Fields{"room": playerRoom.ID, "x": s.Boss.X, "y": s.Boss.Y}).Info("Boss encounter triggered")
		GetMessageLog().AddTyped("The King awaits you here!", MessageTypeAlert)
		world.EmitEvent(SpawnEvent{EventKind: EventBossSpawned, EntityID: s.BossID, X: s.Boss.X, Y: s.Boss.Y, RoomID: playerRoom.ID})
	}

	if s.FlyingID == 0 && s.anchorRoom(s.Flying) == playerRoom {
		x, y := s.Flying.X+flyingSpawnOffsetX, s.Flying.Y+flyingSpawnOffsetY
		s.FlyingID = s.spawner.SpawnFlyingEnemy(x, y)

		s.log.WithFields(logrus.Fields{"room": playerRoom.ID, "x": x, "y": y}).Info("Flying enemy spawned")
		GetMessageLog().AddTyped("Something buzzes in the dark.", MessageTypeAlert)
		world.EmitEvent(SpawnEvent{EventKind: EventFlyingSpawned, EntityID: s.FlyingID, X: x, Y: y, RoomID: playerRoom.ID})
	}
}

// anchorRoom returns the room holding an anchor, nil for an unset anchor
func (s *EncounterSystem) anchorRoom(a generation.Anchor) *generation.Room {
	if !a.Set {
		return nil
	}
	return s.rooms.GetRoomAt(s.grid.WorldToTileX(a.X), s.grid.WorldToTileY(a.Y))
}
