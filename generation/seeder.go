package generation

import (
	"math/rand"

	"buch-dungeon/tilemap"
)

// ContentKind identifies what a room was seeded with
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentChest
	ContentPot
	ContentTowers
)

func (k ContentKind) String() string {
	switch k {
	case ContentChest:
		return "chest"
	case ContentPot:
		return "pot"
	case ContentTowers:
		return "towers"
	default:
		return "none"
	}
}

const (
	chestThreshold = 0.25
	potThreshold   = 0.5

	// Rooms at least this tall get four towers instead of two
	largeRoomHeight = 9

	// Share of the remaining rooms that receive content
	filledRoomShare = 0.9
)

// Pixel offsets applied to encounter anchors
const (
	bossAnchorOffsetX   = 25
	bossAnchorOffsetY   = 15
	flyingAnchorOffsetX = 5
)

// Anchor is a pixel position that becomes set exactly once
type Anchor struct {
	X, Y float64
	Room *Room
	Set  bool
}

// Record sets the anchor unless it is already set. It reports whether the
// anchor changed.
func (a *Anchor) Record(x, y float64, room *Room) bool {
	if a.Set {
		return false
	}
	a.X, a.Y, a.Room, a.Set = x, y, room, true
	return true
}

// RoomContent records what one room received
type RoomContent struct {
	Room  *Room
	Kind  ContentKind
	Roll  float64
	Tiles []Point // stuff-layer cells written for this room
	Large bool    // four towers rather than two
}

// SeedResult describes the seeded dungeon
type SeedResult struct {
	Start  *Room
	End    *Room
	Others []RoomContent
	Boss   Anchor
	Flying Anchor
}

// Seeder places stairs, chests, pots and towers on the stuff layer
type Seeder struct {
	rng *rand.Rand

	// Draw returns the per-room roll in [0,1). It defaults to rng.Float64.
	Draw func() float64
}

// NewSeeder creates a seeder backed by rng
func NewSeeder(rng *rand.Rand) *Seeder {
	return &Seeder{rng: rng, Draw: rng.Float64}
}

// Seed splits the rooms into start, end and filled rooms and places content.
//
// The first room is the start room and stays empty. One of the remaining rooms
// is picked at random as the end room and gets the stairs. The rest are
// shuffled and the first 90% of them get a chest, a pot or towers.
func (s *Seeder) Seed(stuff *tilemap.Layer, rooms []*Room) SeedResult {
	var result SeedResult
	if len(rooms) == 0 {
		return result
	}

	remaining := make([]*Room, len(rooms)-1)
	copy(remaining, rooms[1:])
	result.Start = rooms[0]

	if len(remaining) == 0 {
		// A single room has to hold the stairs itself
		result.End = result.Start
	} else {
		i := s.rng.Intn(len(remaining))
		result.End = remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	stuff.PutTileAt(TileStairs, result.End.CenterX, result.End.CenterY)

	shuffle(s.rng, remaining)
	others := remaining[:int(float64(len(remaining))*filledRoomShare)]

	for _, room := range others {
		content := s.fillRoom(stuff, room)

		if content.Kind == ContentTowers && content.Large {
			result.Boss.Record(
				stuff.TileToWorldX(room.CenterX)+bossAnchorOffsetX,
				stuff.TileToWorldY(room.CenterY)+bossAnchorOffsetY,
				room,
			)
		} else {
			result.Flying.Record(
				stuff.TileToWorldX(room.Left)+flyingAnchorOffsetX,
				stuff.TileToWorldY(room.Bottom),
				room,
			)
		}

		result.Others = append(result.Others, content)
	}

	return result
}

func (s *Seeder) fillRoom(stuff *tilemap.Layer, room *Room) RoomContent {
	roll := s.Draw()
	content := RoomContent{Room: room, Roll: roll}

	switch {
	case roll <= chestThreshold:
		content.Kind = ContentChest
		content.Tiles = put(stuff, [][]int{{TileChest}}, room.CenterX, room.CenterY)
	case roll <= potThreshold:
		// Keep pots two tiles off the walls so they never block a door
		content.Kind = ContentPot
		x := randomInteger(s.rng, room.Left+2, room.Right-2)
		y := randomInteger(s.rng, room.Top+2, room.Bottom-2)
		stuff.WeightedRandomize(x, y, 1, 1, PotTiles, s.rng)
		content.Tiles = []Point{{X: x, Y: y}}
	default:
		content.Kind = ContentTowers
		cx, cy := room.CenterX, room.CenterY
		if room.Height >= largeRoomHeight {
			content.Large = true
			content.Tiles = append(content.Tiles, put(stuff, TowerPattern, cx-1, cy+1)...)
			content.Tiles = append(content.Tiles, put(stuff, TowerPattern, cx+1, cy+1)...)
			content.Tiles = append(content.Tiles, put(stuff, TowerPattern, cx-1, cy-2)...)
			content.Tiles = append(content.Tiles, put(stuff, TowerPattern, cx+1, cy-2)...)
		} else {
			content.Tiles = append(content.Tiles, put(stuff, TowerPattern, cx-1, cy-1)...)
			content.Tiles = append(content.Tiles, put(stuff, TowerPattern, cx+1, cy-1)...)
		}
	}
	return content
}

// put writes pattern and returns the cells it covered
func put(layer *tilemap.Layer, pattern [][]int, x, y int) []Point {
	layer.PutTilesAt(pattern, x, y)
	var cells []Point
	for dy, row := range pattern {
		for dx := range row {
			cells = append(cells, Point{X: x + dx, Y: y + dy})
		}
	}
	return cells
}

// Towers counts the tower placements (pattern instances) in a room's content
func (c RoomContent) Towers() int {
	if c.Kind != ContentTowers {
		return 0
	}
	return len(c.Tiles) / len(TowerPattern)
}
