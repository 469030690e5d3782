package session

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"buch-dungeon/components"
	"buch-dungeon/config"
	"buch-dungeon/ecs"
	"buch-dungeon/generation"
	"buch-dungeon/systems"
)

const frame = 1.0 / 60

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newSession(t *testing.T, seed int64) *Session {
	t.Helper()
	return New(config.Default(), 1, rand.New(rand.NewSource(seed)), WithLogger(quietLogger()))
}

// findSession returns the first session whose seed result satisfies ok
func findSession(t *testing.T, ok func(generation.SeedResult) bool) *Session {
	t.Helper()
	for seed := int64(1); seed <= 200; seed++ {
		s := newSession(t, seed)
		if ok(s.Seeded()) {
			return s
		}
	}
	t.Fatal("No seed produced the wanted layout")
	return nil
}

func teleport(t *testing.T, s *Session, x, y float64) {
	t.Helper()
	comp, ok := s.World().GetComponent(s.PlayerID(), components.Position)
	if !ok {
		t.Fatal("Player has no position")
	}
	pos := comp.(*components.PositionComponent)
	pos.X, pos.Y = x, y
}

// beside places the player just left of a stuff tile, facing it
func beside(t *testing.T, s *Session, tx, ty int) {
	t.Helper()
	ground := s.Layers().Ground
	// Body spans -9..+13 horizontally, so its right edge ends one pixel short
	teleport(t, s, ground.TileToWorldX(tx)-14, ground.TileToWorldY(ty)+10)
}

func TestNewSessionSetup(t *testing.T) {
	s := newSession(t, 1)

	if s.State() != Playing {
		t.Errorf("Expected playing, got %s", s.State())
	}
	if s.Status().Life != 100 || s.Status().Level != 1 || s.Status().Weapon != "" {
		t.Errorf("Unexpected status %+v", *s.Status())
	}

	layers := s.Layers()
	if layers.Ground.Width != 50 || layers.Stuff.Height != 50 || layers.Shadow.Width != 50 {
		t.Error("Layers do not match the dungeon size")
	}
	if n := layers.Stuff.Count(generation.TileStairs); n != 1 {
		t.Errorf("Expected one stairway, got %d", n)
	}

	start := s.Seeded().Start
	if s.PlayerRoom() != start {
		t.Error("Player should start in the start room")
	}
	if a := layers.Shadow.Alpha(start.CenterX, start.CenterY); a != systems.ShadowActive {
		t.Errorf("Start room should be lit, alpha %v", a)
	}
	if end := s.Seeded().End; layers.Shadow.Alpha(end.CenterX, end.CenterY) != systems.ShadowUnvisited {
		t.Error("End room should start dark")
	}

	if len(s.World().GetEntitiesWithTag("enemy")) != 2 {
		t.Error("Expected the antifairy and the blade trap")
	}

	cam := s.Camera()
	if cam.X < 0 || cam.Y < 0 || cam.X > 50*48-800 || cam.Y > 50*48-600 {
		t.Errorf("Camera outside the map: %v,%v", cam.X, cam.Y)
	}
}

func TestSessionSeedReproducesLayout(t *testing.T) {
	a, b := newSession(t, 7), newSession(t, 7)
	if a.Seed() != b.Seed() {
		t.Fatal("Same source gave different seeds")
	}
	if a.Dungeon().String() != b.Dungeon().String() {
		t.Error("Same seed gave different layouts")
	}
	if a.ID() == b.ID() {
		t.Error("Sessions should have distinct IDs")
	}
}

func TestStairsEndTheSession(t *testing.T) {
	s := newSession(t, 3)
	end := s.Seeded().End
	beside(t, s, end.CenterX, end.CenterY)

	var reached int
	s.World().GetEventManager().Subscribe(systems.EventStairsReached, func(ecs.Event) { reached++ })

	events := s.World().GetEventManager()
	if !events.HasSubscribers(systems.EventFadeComplete) {
		t.Fatal("Session should listen for the exit fade")
	}

	s.Update(systems.InputState{Right: true}, frame)

	if !s.Stairs.Fired {
		t.Fatal("Stairs trigger did not fire")
	}
	if s.State() != Exiting {
		t.Fatalf("Expected exiting, got %s", s.State())
	}

	x, y, _ := s.PlayerPosition()
	s.Update(systems.InputState{Left: true}, frame)
	if nx, ny, _ := s.PlayerPosition(); nx != x || ny != y {
		t.Error("Frozen player moved")
	}

	for i := 0; i < 20 && s.State() != Finished; i++ {
		s.Update(systems.InputState{}, frame)
	}
	if s.State() != Finished {
		t.Fatal("Fade never finished")
	}
	if _, _, ok := s.PlayerPosition(); ok {
		t.Error("Player should be removed after the fade")
	}
	if !s.Camera().FadeDone {
		t.Error("Camera fade not marked done")
	}
	if events.HasSubscribers(systems.EventFadeComplete) {
		t.Error("Finished session still listens for the exit fade")
	}

	// Further frames do nothing
	s.Update(systems.InputState{Right: true}, frame)
	if s.State() != Finished || reached != 1 {
		t.Errorf("Finished session changed: state %s, stairs fired %d times", s.State(), reached)
	}
}

func TestChestGrantsOneWeapon(t *testing.T) {
	s := findSession(t, func(r generation.SeedResult) bool {
		for _, c := range r.Others {
			if c.Kind == generation.ContentChest {
				return true
			}
		}
		return false
	})

	var chest *generation.Room
	for _, c := range s.Seeded().Others {
		if c.Kind == generation.ContentChest {
			chest = c.Room
			break
		}
	}

	var opened []string
	s.World().GetEventManager().Subscribe(systems.EventChestOpened, func(e ecs.Event) {
		opened = append(opened, e.(systems.ChestOpenedEvent).Weapon)
	})

	beside(t, s, chest.CenterX, chest.CenterY)
	s.Update(systems.InputState{Right: true}, frame)

	if len(opened) != 1 {
		t.Fatalf("Expected one chest event, got %d", len(opened))
	}
	weapon := opened[0]
	valid := false
	for _, w := range generation.ChestWeapons {
		valid = valid || w == weapon
	}
	if !valid {
		t.Errorf("Unexpected weapon %q", weapon)
	}
	if s.Status().Weapon != weapon {
		t.Errorf("HUD shows %q, want %q", s.Status().Weapon, weapon)
	}
	comp, _ := s.World().GetComponent(s.PlayerID(), components.Player)
	if p := comp.(*components.PlayerComponent); !p.HasWeapon || p.Weapon != weapon {
		t.Error("Player did not receive the weapon")
	}

	// Step back and bump the chest again
	for i := 0; i < 5; i++ {
		s.Update(systems.InputState{Left: true}, frame)
	}
	for i := 0; i < 10; i++ {
		s.Update(systems.InputState{Right: true}, frame)
	}
	if len(opened) != 1 || s.Status().Weapon != weapon {
		t.Error("Chest granted a second weapon")
	}

	// The chest blocks the way
	x, _, _ := s.PlayerPosition()
	if edge := s.Layers().Ground.TileToWorldX(chest.CenterX); x+13 > edge+1e-6 {
		t.Errorf("Player walked into the chest: right edge %v, chest at %v", x+13, edge)
	}
}

func TestHazardDamageHasCooldown(t *testing.T) {
	s := newSession(t, 5)

	trap := s.World().FirstWithTag("bladetrap")
	if trap == nil {
		t.Fatal("No blade trap")
	}
	comp, _ := s.World().GetComponent(trap.ID, components.Position)
	trapPos := comp.(*components.PositionComponent)
	teleport(t, s, trapPos.X, trapPos.Y)

	var hits []systems.PlayerDamagedEvent
	s.World().GetEventManager().Subscribe(systems.EventPlayerDamaged, func(e ecs.Event) {
		hits = append(hits, e.(systems.PlayerDamagedEvent))
	})

	s.Update(systems.InputState{}, frame)
	if s.Status().Life != 95 {
		t.Fatalf("Expected 95 life after the trap, got %d", s.Status().Life)
	}

	// Immune for a second
	for i := 0; i < 30; i++ {
		s.Update(systems.InputState{}, frame)
	}
	if s.Status().Life != 95 {
		t.Errorf("Hit again during cooldown, life %d", s.Status().Life)
	}

	for i := 0; i < 40; i++ {
		s.Update(systems.InputState{}, frame)
	}
	if s.Status().Life != 90 || len(hits) != 2 {
		t.Errorf("Expected a second hit after the cooldown, life %d, hits %d", s.Status().Life, len(hits))
	}
	for _, h := range hits {
		if h.SourceID != trap.ID || h.Damage != 5 {
			t.Errorf("Unexpected hit %+v", h)
		}
	}

	s.Status().SetLife(3)
	for i := 0; i < 70 && !s.Dead(); i++ {
		s.Update(systems.InputState{}, frame)
	}
	if !s.Dead() || s.Status().Life != 0 {
		t.Errorf("Expected death at zero life, got %d", s.Status().Life)
	}
}

func TestBossSpawnsOnceInItsRoom(t *testing.T) {
	s := findSession(t, func(r generation.SeedResult) bool { return r.Boss.Set })
	boss := s.Seeded().Boss

	s.Update(systems.InputState{}, frame)
	if s.World().FirstWithTag("boss") != nil {
		t.Fatal("Boss spawned before the player entered its room")
	}

	teleport(t, s, boss.X, boss.Y)
	s.Update(systems.InputState{}, frame)
	s.Update(systems.InputState{}, frame)

	bosses := s.World().GetEntitiesWithTag("boss")
	if len(bosses) != 1 {
		t.Fatalf("Expected one boss, got %d", len(bosses))
	}
	if s.Encounters().BossPending || s.Encounters().BossID != bosses[0].ID {
		t.Error("Encounter system did not record the boss")
	}
	comp, _ := s.World().GetComponent(bosses[0].ID, components.Position)
	if pos := comp.(*components.PositionComponent); pos.X != boss.X || pos.Y != boss.Y {
		t.Errorf("Boss at %v,%v, anchor at %v,%v", pos.X, pos.Y, boss.X, boss.Y)
	}
}

func TestVisibilityFollowsThePlayer(t *testing.T) {
	s := findSession(t, func(r generation.SeedResult) bool { return len(r.Others) > 0 })
	start := s.Seeded().Start
	next := s.Seeded().Others[0].Room
	shadow := s.Layers().Shadow
	ground := s.Layers().Ground

	teleport(t, s, ground.TileToWorldX(next.CenterX)+24, ground.TileToWorldY(next.CenterY)+24)
	s.Update(systems.InputState{}, frame)

	if s.Visibility().ActiveRoom() != next {
		t.Fatal("Active room did not follow the player")
	}
	if a := shadow.Alpha(next.CenterX, next.CenterY); a != systems.ShadowActive {
		t.Errorf("Entered room alpha %v", a)
	}
	if a := shadow.Alpha(start.CenterX, start.CenterY); a != systems.ShadowVisited {
		t.Errorf("Left room alpha %v", a)
	}
	if end := s.Seeded().End; shadow.Alpha(end.CenterX, end.CenterY) != systems.ShadowUnvisited {
		t.Error("Unvisited end room should stay dark")
	}
}
