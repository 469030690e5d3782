package generation

import (
	"math/rand"
	"testing"

	"buch-dungeon/tilemap"
)

func newTestGround() *tilemap.Layer {
	return tilemap.NewLayer("ground", 30, 30, 48, 48).Fill(TileBlank)
}

func indexesOf(weights []tilemap.WeightedIndex) map[int]bool {
	set := make(map[int]bool)
	for _, w := range weights {
		for _, i := range w.Indexes {
			set[i] = true
		}
	}
	return set
}

func TestPaintRoomFloorsWallsAndCorners(t *testing.T) {
	room := NewRoom(7, 9)
	room.SetPosition(5, 5)

	ground := newTestGround()
	NewPainter(rand.New(rand.NewSource(1)), nil).Paint(ground, []*Room{room})

	corners := map[[2]int]int{
		{room.Left, room.Top}:     TileWallTopLeft,
		{room.Right, room.Top}:    TileWallTopRight,
		{room.Right, room.Bottom}: TileWallBottomRight,
		{room.Left, room.Bottom}:  TileWallBottomLeft,
	}
	for pos, want := range corners {
		if got := ground.GetTileAt(pos[0], pos[1]); got != want {
			t.Errorf("Corner %v: got %d, want %d", pos, got, want)
		}
	}

	floors := indexesOf(FloorTiles)
	top, bottom := indexesOf(WallTopTiles), indexesOf(WallBottomTiles)
	left, right := indexesOf(WallLeftTiles), indexesOf(WallRightTiles)

	for y := room.Top; y <= room.Bottom; y++ {
		for x := room.Left; x <= room.Right; x++ {
			index := ground.GetTileAt(x, y)
			isCorner := (x == room.Left || x == room.Right) && (y == room.Top || y == room.Bottom)
			switch {
			case isCorner:
			case y == room.Top && !top[index]:
				t.Errorf("Top wall %d,%d has tile %d", x, y, index)
			case y == room.Bottom && !bottom[index]:
				t.Errorf("Bottom wall %d,%d has tile %d", x, y, index)
			case x == room.Left && y != room.Top && y != room.Bottom && !left[index]:
				t.Errorf("Left wall %d,%d has tile %d", x, y, index)
			case x == room.Right && y != room.Top && y != room.Bottom && !right[index]:
				t.Errorf("Right wall %d,%d has tile %d", x, y, index)
			case x > room.Left && x < room.Right && y > room.Top && y < room.Bottom && !floors[index]:
				t.Errorf("Floor %d,%d has tile %d", x, y, index)
			}
		}
	}

	if ground.GetTileAt(room.Left-1, room.Top) != TileBlank {
		t.Error("Painter wrote outside the room")
	}
}

func TestPaintDoorPatterns(t *testing.T) {
	room := NewRoom(9, 9)
	room.SetPosition(10, 10)

	tests := []struct {
		name    string
		door    Point
		pattern [][]int
		at      Point
	}{
		{"top", Point{4, 0}, DoorTopPattern, Point{13, 10}},
		{"bottom", Point{4, 8}, DoorBottomPattern, Point{13, 18}},
		{"left", Point{0, 4}, DoorLeftPattern, Point{10, 13}},
		{"right", Point{8, 4}, DoorRightPattern, Point{18, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := *room
			r.doors = nil
			r.addDoor(r.X+tt.door.X, r.Y+tt.door.Y)

			ground := newTestGround()
			NewPainter(rand.New(rand.NewSource(2)), nil).Paint(ground, []*Room{&r})

			for dy, row := range tt.pattern {
				for dx, want := range row {
					if got := ground.GetTileAt(tt.at.X+dx, tt.at.Y+dy); got != want {
						t.Errorf("Pattern cell %d,%d: got %d, want %d", dx, dy, got, want)
					}
				}
			}
		})
	}
}

func TestPaintSkipsDoorOffTheWalls(t *testing.T) {
	room := NewRoom(7, 7)
	room.SetPosition(3, 3)
	room.addDoor(room.CenterX, room.CenterY)

	ground := newTestGround()
	NewPainter(rand.New(rand.NewSource(3)), nil).Paint(ground, []*Room{room})

	floors := indexesOf(FloorTiles)
	for y := room.CenterY - 1; y <= room.CenterY+1; y++ {
		for x := room.CenterX - 1; x <= room.CenterX+1; x++ {
			if !floors[ground.GetTileAt(x, y)] {
				t.Errorf("Interior door painted a pattern at %d,%d", x, y)
			}
		}
	}
}

func TestPaintGeneratedDungeonCoversEveryRoom(t *testing.T) {
	d := NewDungeon(DefaultDungeonConfig(), rand.New(rand.NewSource(9)))
	ground := tilemap.NewLayer("ground", d.Width, d.Height, 48, 48).Fill(TileBlank)
	NewPainter(rand.New(rand.NewSource(9)), nil).Paint(ground, d.Rooms())

	for _, r := range d.Rooms() {
		if ground.GetTileAt(r.CenterX, r.CenterY) == TileBlank {
			t.Errorf("Room %d center left blank", r.ID)
		}
	}
}
