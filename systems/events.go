package systems

import (
	"buch-dungeon/ecs"
)

// Event type constants
const (
	EventStairsReached    ecs.EventType = "stairs_reached"
	EventChestOpened      ecs.EventType = "chest_opened"
	EventBossSpawned      ecs.EventType = "boss_spawned"
	EventFlyingSpawned    ecs.EventType = "flying_spawned"
	EventPlayerDamaged    ecs.EventType = "player_damaged"
	EventCameraUpdate     ecs.EventType = "camera_update"
	EventFadeComplete     ecs.EventType = "fade_complete"
	EventActiveRoomChange ecs.EventType = "active_room_change"
)

// StairsReachedEvent is emitted the first time the player touches the stairs
type StairsReachedEvent struct {
	PlayerID ecs.EntityID
	TileX    int
	TileY    int
}

// Type returns the event type
func (e StairsReachedEvent) Type() ecs.EventType {
	return EventStairsReached
}

// ChestOpenedEvent is emitted the first time the player touches a chest
type ChestOpenedEvent struct {
	PlayerID ecs.EntityID
	Weapon   string
}

// Type returns the event type
func (e ChestOpenedEvent) Type() ecs.EventType {
	return EventChestOpened
}

// SpawnEvent is emitted when an encounter spawns its enemy
type SpawnEvent struct {
	EventKind ecs.EventType // EventBossSpawned or EventFlyingSpawned
	EntityID  ecs.EntityID
	X, Y      float64
	RoomID    int
}

// Type returns the event type
func (e SpawnEvent) Type() ecs.EventType {
	return e.EventKind
}

// PlayerDamagedEvent is emitted when a hazard hurts the player
type PlayerDamagedEvent struct {
	PlayerID ecs.EntityID
	SourceID ecs.EntityID
	Damage   int
}

// Type returns the event type
func (e PlayerDamagedEvent) Type() ecs.EventType {
	return EventPlayerDamaged
}

// CameraUpdateEvent is emitted when the camera position changes
type CameraUpdateEvent struct {
	CameraID ecs.EntityID // ID of the camera entity
	X        float64      // New X position
	Y        float64      // New Y position
	TargetID ecs.EntityID // ID of the entity the camera is following
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}

// FadeCompleteEvent is emitted once when a camera fade finishes
type FadeCompleteEvent struct {
	CameraID ecs.EntityID
}

// Type returns the event type
func (e FadeCompleteEvent) Type() ecs.EventType {
	return EventFadeComplete
}

// ActiveRoomChangeEvent is emitted when the player walks into another room
type ActiveRoomChangeEvent struct {
	FromRoomID int // -1 when there was no active room
	ToRoomID   int
}

// Type returns the event type
func (e ActiveRoomChangeEvent) Type() ecs.EventType {
	return EventActiveRoomChange
}
