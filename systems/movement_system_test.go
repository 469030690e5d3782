package systems

import (
	"math"
	"testing"

	"buch-dungeon/components"
	"buch-dungeon/ecs"
	"buch-dungeon/generation"
	"buch-dungeon/tilemap"
)

// walledRoom builds a 6x6 ground layer with a floor inside a ring of blank
// tiles, plus an empty stuff layer
func walledRoom() (ground, stuff *tilemap.Layer) {
	ground = tilemap.NewLayer("ground", 6, 6, 48, 48).Fill(generation.TileBlank)
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			ground.PutTileAt(6, x, y)
		}
	}
	stuff = tilemap.NewLayer("stuff", 6, 6, 48, 48)

	ground.SetCollisionByExclusion(generation.NonCollidingTiles...)
	stuff.SetCollisionByExclusion(generation.NonCollidingTiles...)
	return ground, stuff
}

func addPlayer(w *ecs.World, x, y float64) ecs.EntityID {
	e := w.CreateEntity()
	w.TagEntity(e.ID, "player")
	w.AddComponent(e.ID, components.Position, &components.PositionComponent{X: x, Y: y})
	w.AddComponent(e.ID, components.Velocity, &components.VelocityComponent{})
	w.AddComponent(e.ID, components.Body, &components.BodyComponent{Width: 22, Height: 33, OffsetX: -9, OffsetY: -5})
	w.AddComponent(e.ID, components.Player, &components.PlayerComponent{})
	return e.ID
}

func positionOf(w *ecs.World, id ecs.EntityID) *components.PositionComponent {
	comp, _ := w.GetComponent(id, components.Position)
	return comp.(*components.PositionComponent)
}

func TestMovePlayerStopsAtWalls(t *testing.T) {
	ground, stuff := walledRoom()
	w := ecs.NewWorld()
	id := addPlayer(w, 120, 120)
	s := NewMovementSystem(300, ground, stuff)

	var touched []TouchedTile
	for i := 0; i < 20; i++ {
		touched = append(touched, s.MovePlayer(w, id, InputState{Right: true}, 0.1)...)
	}

	pos := positionOf(w, id)
	if pos.X != 227 || pos.Y != 120 {
		t.Errorf("Expected to rest against the wall at 227,120, got %v,%v", pos.X, pos.Y)
	}
	if len(touched) == 0 {
		t.Fatal("Expected wall touches")
	}
	for _, tt := range touched {
		if tt.Layer != ground || tt.X != 5 || tt.Index != generation.TileBlank {
			t.Errorf("Unexpected touch %+v", tt)
		}
	}
}

func TestMovePlayerTouchesStuff(t *testing.T) {
	ground, stuff := walledRoom()
	stuff.PutTileAt(generation.TileChest, 4, 2)
	w := ecs.NewWorld()
	id := addPlayer(w, 120, 120)
	s := NewMovementSystem(300, ground, stuff)

	var chest bool
	for i := 0; i < 10; i++ {
		for _, tt := range s.MovePlayer(w, id, InputState{Right: true}, 0.1) {
			if tt.Layer == stuff && tt.Index == generation.TileChest && tt.X == 4 && tt.Y == 2 {
				chest = true
			}
		}
	}

	if !chest {
		t.Error("Chest was never touched")
	}
	if pos := positionOf(w, id); pos.X != 179 {
		t.Errorf("Expected to stop at the chest edge 179, got %v", pos.X)
	}
}

func TestMovePlayerInput(t *testing.T) {
	tests := []struct {
		name       string
		in         InputState
		wantVX     float64
		wantVY     float64
		facingLeft bool
	}{
		{"idle", InputState{}, 0, 0, false},
		{"left", InputState{Left: true}, -300, 0, true},
		{"right", InputState{Right: true}, 300, 0, false},
		{"up", InputState{Up: true}, 0, -300, false},
		{"diagonal", InputState{Right: true, Down: true}, 300 / math.Sqrt2, 300 / math.Sqrt2, false},
		{"left wins over right", InputState{Left: true, Right: true}, -300, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ground, stuff := walledRoom()
			w := ecs.NewWorld()
			id := addPlayer(w, 120, 120)
			s := NewMovementSystem(300, ground, stuff)

			s.MovePlayer(w, id, tt.in, 0.01)

			comp, _ := w.GetComponent(id, components.Velocity)
			vel := comp.(*components.VelocityComponent)
			if math.Abs(vel.X-tt.wantVX) > 1e-9 || math.Abs(vel.Y-tt.wantVY) > 1e-9 {
				t.Errorf("Velocity %v,%v, want %v,%v", vel.X, vel.Y, tt.wantVX, tt.wantVY)
			}

			pos := positionOf(w, id)
			if math.Abs(pos.X-(120+tt.wantVX*0.01)) > 1e-9 || math.Abs(pos.Y-(120+tt.wantVY*0.01)) > 1e-9 {
				t.Errorf("Position %v,%v", pos.X, pos.Y)
			}

			player, _ := w.GetComponent(id, components.Player)
			if player.(*components.PlayerComponent).FacingLeft != tt.facingLeft {
				t.Error("Unexpected facing")
			}
		})
	}
}

func TestFrozenPlayerDoesNotMove(t *testing.T) {
	ground, stuff := walledRoom()
	w := ecs.NewWorld()
	id := addPlayer(w, 120, 120)
	player, _ := w.GetComponent(id, components.Player)
	player.(*components.PlayerComponent).Frozen = true

	s := NewMovementSystem(300, ground, stuff)
	if touched := s.MovePlayer(w, id, InputState{Right: true, Up: true}, 1); touched != nil {
		t.Error("Frozen player touched tiles")
	}

	pos := positionOf(w, id)
	comp, _ := w.GetComponent(id, components.Velocity)
	vel := comp.(*components.VelocityComponent)
	if pos.X != 120 || pos.Y != 120 || vel.X != 0 || vel.Y != 0 {
		t.Errorf("Frozen player moved to %v,%v with velocity %v,%v", pos.X, pos.Y, vel.X, vel.Y)
	}
}

func TestUpdateMovesOtherBodies(t *testing.T) {
	ground, stuff := walledRoom()
	stuff.PutTileAt(generation.TileChest, 4, 2)
	w := ecs.NewWorld()

	// The collider ignores stuff and stops at the ground wall
	insect := w.CreateEntity()
	w.AddComponent(insect.ID, components.Position, &components.PositionComponent{X: 120, Y: 120})
	w.AddComponent(insect.ID, components.Velocity, &components.VelocityComponent{X: 300})
	w.AddComponent(insect.ID, components.Body, &components.BodyComponent{Width: 40, Height: 40, OffsetX: -20, OffsetY: -20})
	w.AddComponent(insect.ID, components.TileCollider, &components.TileColliderComponent{})

	// Without a collider a body flies through walls
	ghost := w.CreateEntity()
	w.AddComponent(ghost.ID, components.Position, &components.PositionComponent{X: 120, Y: 120})
	w.AddComponent(ghost.ID, components.Velocity, &components.VelocityComponent{X: 300})
	w.AddComponent(ghost.ID, components.Body, &components.BodyComponent{Width: 40, Height: 40, OffsetX: -20, OffsetY: -20})

	// The player is left to MovePlayer
	playerID := addPlayer(w, 120, 120)
	vel, _ := w.GetComponent(playerID, components.Velocity)
	vel.(*components.VelocityComponent).X = 300

	s := NewMovementSystem(300, ground, stuff)
	for i := 0; i < 10; i++ {
		s.Update(w, 0.1)
	}

	if x := positionOf(w, insect.ID).X; x != 220 {
		t.Errorf("Collider should rest at 220, got %v", x)
	}
	if x := positionOf(w, ghost.ID).X; math.Abs(x-420) > 1e-9 {
		t.Errorf("Ghost should reach 420, got %v", x)
	}
	if x := positionOf(w, playerID).X; x != 120 {
		t.Errorf("Update moved the player to %v", x)
	}
}
