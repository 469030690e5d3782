package generation

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestNewDungeonDefaultLayout(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d := NewDungeon(DefaultDungeonConfig(), rand.New(rand.NewSource(seed)))
		rooms := d.Rooms()

		if len(rooms) == 0 {
			t.Fatalf("seed %d: no rooms generated", seed)
		}

		for i, r := range rooms {
			if r.Width%2 == 0 || r.Height%2 == 0 {
				t.Errorf("seed %d: room %d has even size %dx%d", seed, i, r.Width, r.Height)
			}
			if r.Width < 7 || r.Width > 15 || r.Height < 7 || r.Height > 15 {
				t.Errorf("seed %d: room %d size %dx%d out of range", seed, i, r.Width, r.Height)
			}
			if r.Width*r.Height > 150 {
				t.Errorf("seed %d: room %d area %d above cap", seed, i, r.Width*r.Height)
			}
			if r.Left < 0 || r.Top < 0 || r.Right >= d.Width-1 || r.Bottom >= d.Height-1 {
				t.Errorf("seed %d: room %d leaves the map: %+v", seed, i, *r)
			}
			for j := i + 1; j < len(rooms); j++ {
				if r.Overlaps(rooms[j]) {
					t.Errorf("seed %d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestNewDungeonIsDeterministicForSeed(t *testing.T) {
	a := NewDungeon(DefaultDungeonConfig(), rand.New(rand.NewSource(42)))
	b := NewDungeon(DefaultDungeonConfig(), rand.New(rand.NewSource(42)))

	if a.String() != b.String() {
		t.Error("Same seed produced different layouts")
	}
}

func TestDoorsSitOnWallsAndFaceAnotherRoom(t *testing.T) {
	d := NewDungeon(DefaultDungeonConfig(), rand.New(rand.NewSource(7)))
	pad := DefaultDungeonConfig().DoorPadding

	if len(d.Rooms()) > 1 {
		doors := 0
		for _, r := range d.Rooms() {
			doors += len(r.DoorLocations())
		}
		if doors == 0 {
			t.Fatal("Rooms are not connected by any door")
		}
	}

	for _, r := range d.Rooms() {
		for _, door := range r.DoorLocations() {
			onHorizontal := door.Y == 0 || door.Y == r.Height-1
			onVertical := door.X == 0 || door.X == r.Width-1
			if onHorizontal == onVertical {
				t.Errorf("room %d: door %+v is not on exactly one wall", r.ID, door)
				continue
			}
			if onHorizontal && (door.X < pad || door.X > r.Width-1-pad) {
				t.Errorf("room %d: door %+v too close to a corner", r.ID, door)
			}
			if onVertical && (door.Y < pad || door.Y > r.Height-1-pad) {
				t.Errorf("room %d: door %+v too close to a corner", r.ID, door)
			}

			// The tile just outside the door belongs to another room
			x, y := r.X+door.X, r.Y+door.Y
			switch {
			case door.Y == 0:
				y--
			case door.Y == r.Height-1:
				y++
			case door.X == 0:
				x--
			default:
				x++
			}
			other := d.GetRoomAt(x, y)
			if other == nil || other == r {
				t.Errorf("room %d: door %+v leads nowhere", r.ID, door)
				continue
			}
			if !r.IsConnectedTo(other) {
				t.Errorf("room %d: door %+v has no matching door in room %d", r.ID, door, other.ID)
			}
		}
	}
}

func TestGetRoomAt(t *testing.T) {
	d := NewDungeon(DefaultDungeonConfig(), rand.New(rand.NewSource(3)))
	first := d.Rooms()[0]

	tests := []struct {
		name string
		x, y int
		want *Room
	}{
		{"center", first.CenterX, first.CenterY, first},
		{"corner", first.Left, first.Top, first},
		{"outside map", -1, 0, nil},
		{"past map edge", d.Width, d.Height, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.GetRoomAt(tt.x, tt.y); got != tt.want {
				t.Errorf("GetRoomAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMaxRoomsIsRespected(t *testing.T) {
	cfg := DefaultDungeonConfig()
	cfg.MaxRooms = 4

	d := NewDungeon(cfg, rand.New(rand.NewSource(11)))
	if n := len(d.Rooms()); n == 0 || n > 4 {
		t.Errorf("Expected 1-4 rooms, got %d", n)
	}
}

func TestDungeonString(t *testing.T) {
	d := NewDungeon(DefaultDungeonConfig(), rand.New(rand.NewSource(5)))
	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")

	if len(lines) != d.Height {
		t.Fatalf("Expected %d lines, got %d", d.Height, len(lines))
	}
	r := d.Rooms()[0]
	if lines[r.Top][r.Left] != '#' {
		t.Errorf("Expected wall at room corner, got %q", lines[r.Top][r.Left])
	}
	if lines[r.CenterY][r.CenterX] != '.' {
		t.Errorf("Expected floor at room center, got %q", lines[r.CenterY][r.CenterX])
	}
}

func TestRoomGeometry(t *testing.T) {
	r := NewRoom(7, 9)
	r.SetPosition(10, 20)

	if r.Right != 16 || r.Bottom != 28 {
		t.Errorf("Unexpected bounds: right=%d bottom=%d", r.Right, r.Bottom)
	}
	if r.CenterX != 13 || r.CenterY != 24 {
		t.Errorf("Unexpected center: %d,%d", r.CenterX, r.CenterY)
	}

	adjacent := NewRoom(5, 5)
	adjacent.SetPosition(17, 20)
	if r.Overlaps(adjacent) {
		t.Error("Adjacent rooms should not overlap")
	}

	overlapping := NewRoom(5, 5)
	overlapping.SetPosition(16, 28)
	if !r.Overlaps(overlapping) {
		t.Error("Rooms sharing a corner tile should overlap")
	}
}

func TestNewDungeonRoundsEvenMinimumsToOddRooms(t *testing.T) {
	tests := []struct {
		name          string
		width, height RangeConfig
		maxArea       int
	}{
		{"area cap between even and odd minimum", RangeConfig{8, 15, true}, RangeConfig{8, 15, true}, 70},
		{"range without an odd size", RangeConfig{8, 8, true}, RangeConfig{7, 9, true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDungeonConfig()
			cfg.MaxRooms = 8
			cfg.Rooms = RoomConfig{Width: tt.width, Height: tt.height, MaxArea: tt.maxArea}

			done := make(chan *Dungeon, 1)
			go func() { done <- NewDungeon(cfg, rand.New(rand.NewSource(1))) }()

			var d *Dungeon
			select {
			case d = <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("NewDungeon did not return")
			}

			for i, r := range d.Rooms() {
				if r.Width%2 == 0 || r.Height%2 == 0 {
					t.Errorf("Room %d has even size %dx%d", i, r.Width, r.Height)
				}
				if r.Width < 9 {
					t.Errorf("Room %d is %d wide, below the smallest odd width 9", i, r.Width)
				}
			}
		})
	}
}

func TestRangeConfigSmallest(t *testing.T) {
	tests := []struct {
		r        RangeConfig
		smallest int
		empty    bool
	}{
		{RangeConfig{7, 15, true}, 7, false},
		{RangeConfig{8, 15, true}, 9, false},
		{RangeConfig{8, 8, true}, 9, true},
		{RangeConfig{8, 8, false}, 8, false},
		{RangeConfig{9, 7, false}, 9, true},
	}
	for _, tt := range tests {
		if got := tt.r.Smallest(); got != tt.smallest {
			t.Errorf("%+v.Smallest() = %d, want %d", tt.r, got, tt.smallest)
		}
		if got := tt.r.Empty(); got != tt.empty {
			t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.empty)
		}
	}
}
