// Package session owns one dungeon instance: its layout, tile layers, actors
// and per-frame game logic. Reaching the stairs finishes a session; the
// caller then builds a new one a level deeper.
package session

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"buch-dungeon/components"
	"buch-dungeon/config"
	"buch-dungeon/data"
	"buch-dungeon/ecs"
	"buch-dungeon/generation"
	"buch-dungeon/logger"
	"buch-dungeon/spawners"
	"buch-dungeon/systems"
	"buch-dungeon/tilemap"
)

// State is the lifecycle of a session
type State int

const (
	// Playing runs the full update
	Playing State = iota
	// Exiting means the stairs were reached and the camera is fading out
	Exiting
	// Finished means the fade is over and the player is gone
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Exiting:
		return "exiting"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// exitFadeSeconds is the camera fade after reaching the stairs
const exitFadeSeconds = 0.25

// Layers are the three tile layers of a dungeon
type Layers struct {
	Ground *tilemap.Layer
	Stuff  *tilemap.Layer
	Shadow *tilemap.Layer
}

// Option tweaks how a session is built
type Option func(*options)

type options struct {
	templates *data.TemplateManager
	log       *logrus.Logger
}

// WithTemplates uses tm for actor bodies and damage
func WithTemplates(tm *data.TemplateManager) Option {
	return func(o *options) { o.templates = tm }
}

// WithLogger logs to l instead of the global logger
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.log = l }
}

// Session is one generated dungeon
type Session struct {
	id    uuid.UUID
	level int
	seed  int64
	state State
	log   *logrus.Entry

	rng     *rand.Rand
	dungeon *generation.Dungeon
	layers  Layers
	seeded  generation.SeedResult

	world    *ecs.World
	playerID ecs.EntityID
	cameraID ecs.EntityID

	movement   *systems.MovementSystem
	hazards    *systems.HazardSystem
	encounters *systems.EncounterSystem
	visibility *systems.VisibilitySystem
	camera     *systems.CameraSystem
	status     *systems.StatusDisplay
	fadeSub    ecs.Subscription

	Stairs *systems.StairsTrigger
	Chest  *systems.ChestTrigger
}

// New generates, paints and seeds a dungeon and places the actors. Every
// random choice of the session comes from a source seeded by one draw from
// rng, so Seed() reproduces the session.
func New(cfg config.Config, level int, rng *rand.Rand, opts ...Option) *Session {
	o := options{log: logger.Log}
	for _, opt := range opts {
		opt(&o)
	}

	seed := rng.Int63()
	s := &Session{
		id:    uuid.New(),
		level: level,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		world: ecs.NewWorld(),
	}
	s.log = o.log.WithFields(logrus.Fields{
		"session": s.id.String(),
		"level":   level,
	})

	s.buildMap(cfg)
	s.placeActors(o.templates)
	s.initSystems(cfg)

	s.log.WithFields(logrus.Fields{
		"seed":  seed,
		"rooms": len(s.dungeon.Rooms()),
		"boss":  s.seeded.Boss.Set,
	}).Info("Dungeon session started")
	systems.GetMessageLog().AddTyped(fmt.Sprintf("Level %d: find the stairs.", level), systems.MessageTypeSystem)

	return s
}

// buildMap generates the layout and fills the tile layers
func (s *Session) buildMap(cfg config.Config) {
	s.dungeon = generation.NewDungeon(cfg.Dungeon, s.rng)
	s.log.Debug("Dungeon layout:\n" + s.dungeon.String())

	w, h := s.dungeon.Width, s.dungeon.Height
	s.layers = Layers{
		Ground: tilemap.NewLayer("ground", w, h, config.TileSize, config.TileSize).Fill(generation.TileBlank),
		Stuff:  tilemap.NewLayer("stuff", w, h, config.TileSize, config.TileSize),
		Shadow: tilemap.NewLayer("shadow", w, h, config.TileSize, config.TileSize).Fill(generation.TileBlank),
	}

	generation.NewPainter(s.rng, s.log).Paint(s.layers.Ground, s.dungeon.Rooms())
	s.seeded = generation.NewSeeder(s.rng).Seed(s.layers.Stuff, s.dungeon.Rooms())

	s.layers.Ground.SetCollisionByExclusion(generation.NonCollidingTiles...)
	s.layers.Stuff.SetCollisionByExclusion(generation.NonCollidingTiles...)
}

// placeActors spawns the player in the start room and the two guards next to it
func (s *Session) placeActors(templates *data.TemplateManager) {
	spawner := spawners.NewEntitySpawner(s.world, templates, func(msg string) { s.log.Debug(msg) })

	start := s.seeded.Start
	x := s.layers.Ground.TileToWorldX(start.CenterX)
	y := s.layers.Ground.TileToWorldY(start.CenterY)

	s.playerID = spawner.CreatePlayer(x, y).ID
	spawner.CreatePatrolEnemy(x, y)
	spawner.CreateBladeTrap(x, y)

	viewW, viewH := config.GetScreenDimensions()
	s.cameraID = spawner.CreateCamera(s.playerID,
		float64(viewW), float64(viewH),
		float64(s.layers.Ground.WidthInPixels()), float64(s.layers.Ground.HeightInPixels()),
	).ID

	s.encounters = systems.NewEncounterSystem(s.dungeon, s.layers.Ground, spawner, s.seeded.Boss, s.seeded.Flying, s.log)
}

func (s *Session) initSystems(cfg config.Config) {
	s.movement = systems.NewMovementSystem(cfg.Player.Speed, s.layers.Ground, s.layers.Stuff)
	s.hazards = systems.NewHazardSystem(cfg.Player.DamageCooldown)
	s.visibility = systems.NewVisibilitySystem(s.layers.Shadow)
	s.camera = systems.NewCameraSystem()
	s.status = systems.NewStatusDisplay(s.level, cfg.Player.Life)
	s.Stairs = &systems.StairsTrigger{}
	s.Chest = systems.NewChestTrigger(s.rng)

	s.world.AddSystem(s.movement)
	s.world.AddSystem(s.camera)

	s.fadeSub = s.world.GetEventManager().Subscribe(systems.EventFadeComplete, func(ecs.Event) {
		s.finish()
	})

	// Light the start room and place the camera before the first frame
	s.visibility.Update(s.world, s.PlayerRoom())
	s.camera.Update(s.world, 0)
}

// Update advances the session by one frame
func (s *Session) Update(in systems.InputState, dt float64) {
	switch s.state {
	case Finished:
		return
	case Exiting:
		// Only the fade runs once the stairs are reached
		s.camera.Update(s.world, dt)
		return
	}

	touched := s.movement.MovePlayer(s.world, s.playerID, in, dt)
	s.handleTouches(touched)
	if s.state != Playing {
		s.camera.Update(s.world, dt)
		return
	}

	for _, hit := range s.hazards.Check(s.world, s.playerID, dt) {
		s.applyDamage(hit)
	}

	room := s.PlayerRoom()
	s.encounters.Update(s.world, room)
	s.world.UpdateActors(dt)
	s.visibility.Update(s.world, room)

	// Other moving bodies, then the camera
	s.world.Update(dt)
}

// handleTouches fires the stairs and chest triggers for tiles the player
// bumped into
func (s *Session) handleTouches(touched []systems.TouchedTile) {
	for _, t := range touched {
		if t.Layer != s.layers.Stuff {
			continue
		}
		switch t.Index {
		case generation.TileStairs:
			if s.Stairs.Touch() {
				s.reachStairs(t)
				return
			}
		case generation.TileChest:
			if weapon, ok := s.Chest.Touch(); ok {
				s.openChest(weapon)
			}
		}
	}
}

func (s *Session) reachStairs(t systems.TouchedTile) {
	s.state = Exiting

	if player := s.player(); player != nil {
		player.Frozen = true
	}
	if comp, ok := s.world.GetComponent(s.playerID, components.Velocity); ok {
		vel := comp.(*components.VelocityComponent)
		vel.X, vel.Y = 0, 0
	}
	if cam := s.Camera(); cam != nil {
		cam.StartFade(exitFadeSeconds)
	}

	s.log.WithFields(logrus.Fields{"x": t.X, "y": t.Y}).Info("Player reached the stairs")
	systems.GetMessageLog().AddTyped("You take the stairs down.", systems.MessageTypeSystem)
	s.world.EmitEvent(systems.StairsReachedEvent{PlayerID: s.playerID, TileX: t.X, TileY: t.Y})
}

func (s *Session) openChest(weapon string) {
	if player := s.player(); player != nil {
		player.HasWeapon = true
		player.Weapon = weapon
	}
	s.status.SetWeapon(weapon)

	s.log.WithField("weapon", weapon).Info("Chest opened")
	systems.GetMessageLog().AddTyped("You found a "+weapon, systems.MessageTypeItem)
	s.world.EmitEvent(systems.ChestOpenedEvent{PlayerID: s.playerID, Weapon: weapon})
}

func (s *Session) applyDamage(hit systems.PlayerDamagedEvent) {
	life := s.status.Damage(hit.Damage)

	source := "something"
	if comp, ok := s.world.GetComponent(hit.SourceID, components.Name); ok {
		source = comp.(*components.NameComponent).Name
	}

	s.log.WithFields(logrus.Fields{"source": source, "damage": hit.Damage, "life": life}).Debug("Player hurt")
	systems.GetMessageLog().AddTyped(fmt.Sprintf("%s hits you for %d.", source, hit.Damage), systems.MessageTypeDamage)
	s.world.EmitEvent(hit)
}

// finish runs when the exit fade completes
func (s *Session) finish() {
	if s.state != Exiting {
		return
	}
	s.world.GetEventManager().Unsubscribe(s.fadeSub)
	s.world.RemoveEntity(s.playerID)
	s.state = Finished
	s.log.Info("Dungeon session finished")
}

func (s *Session) player() *components.PlayerComponent {
	if comp, ok := s.world.GetComponent(s.playerID, components.Player); ok {
		return comp.(*components.PlayerComponent)
	}
	return nil
}

// PlayerPosition returns the player's pixel position. ok is false once the
// player has been removed.
func (s *Session) PlayerPosition() (x, y float64, ok bool) {
	comp, exists := s.world.GetComponent(s.playerID, components.Position)
	if !exists {
		return 0, 0, false
	}
	pos := comp.(*components.PositionComponent)
	return pos.X, pos.Y, true
}

// PlayerRoom returns the room the player stands in, nil in a gap or after
// the player is gone
func (s *Session) PlayerRoom() *generation.Room {
	x, y, ok := s.PlayerPosition()
	if !ok {
		return nil
	}
	return s.dungeon.GetRoomAt(s.layers.Ground.WorldToTileX(x), s.layers.Ground.WorldToTileY(y))
}

// Dead reports whether the player has run out of life
func (s *Session) Dead() bool {
	return s.status.Life <= 0
}

// Camera returns the camera component
func (s *Session) Camera() *components.CameraComponent {
	if comp, ok := s.world.GetComponent(s.cameraID, components.Camera); ok {
		return comp.(*components.CameraComponent)
	}
	return nil
}

func (s *Session) ID() uuid.UUID                         { return s.id }
func (s *Session) State() State                          { return s.state }
func (s *Session) Level() int                            { return s.level }
func (s *Session) Seed() int64                           { return s.seed }
func (s *Session) Dungeon() *generation.Dungeon          { return s.dungeon }
func (s *Session) Layers() Layers                        { return s.layers }
func (s *Session) World() *ecs.World                     { return s.world }
func (s *Session) Status() *systems.StatusDisplay        { return s.status }
func (s *Session) Visibility() *systems.VisibilitySystem { return s.visibility }
func (s *Session) Encounters() *systems.EncounterSystem  { return s.encounters }
func (s *Session) Seeded() generation.SeedResult         { return s.seeded }
func (s *Session) PlayerID() ecs.EntityID                { return s.playerID }
