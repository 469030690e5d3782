package generation

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"buch-dungeon/tilemap"
)

// Painter draws rooms onto the ground layer
type Painter struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// NewPainter creates a painter. log may be nil.
func NewPainter(rng *rand.Rand, log logrus.FieldLogger) *Painter {
	if log == nil {
		log = logrus.New()
	}
	return &Painter{rng: rng, log: log}
}

// Paint fills floors, walls and doors of every room into ground
func (p *Painter) Paint(ground *tilemap.Layer, rooms []*Room) {
	for _, room := range rooms {
		p.paintRoom(ground, room)
	}
}

func (p *Painter) paintRoom(ground *tilemap.Layer, room *Room) {
	x, y, w, h := room.X, room.Y, room.Width, room.Height

	// Mostly clean floor, the occasional dirty tile
	ground.WeightedRandomize(x+1, y+1, w-2, h-2, FloorTiles, p.rng)

	ground.PutTileAt(TileWallTopLeft, room.Left, room.Top)
	ground.PutTileAt(TileWallTopRight, room.Right, room.Top)
	ground.PutTileAt(TileWallBottomRight, room.Right, room.Bottom)
	ground.PutTileAt(TileWallBottomLeft, room.Left, room.Bottom)

	ground.WeightedRandomize(room.Left+1, room.Top, w-2, 1, WallTopTiles, p.rng)
	ground.WeightedRandomize(room.Left+1, room.Bottom, w-2, 1, WallBottomTiles, p.rng)
	ground.WeightedRandomize(room.Left, room.Top+1, 1, h-2, WallLeftTiles, p.rng)
	ground.WeightedRandomize(room.Right, room.Top+1, 1, h-2, WallRightTiles, p.rng)

	for _, door := range room.DoorLocations() {
		switch {
		case door.Y == 0:
			ground.PutTilesAt(DoorTopPattern, x+door.X-1, y+door.Y)
		case door.Y == h-1:
			ground.PutTilesAt(DoorBottomPattern, x+door.X-1, y+door.Y)
		case door.X == 0:
			ground.PutTilesAt(DoorLeftPattern, x+door.X, y+door.Y-1)
		case door.X == w-1:
			ground.PutTilesAt(DoorRightPattern, x+door.X, y+door.Y-1)
		default:
			p.log.WithFields(logrus.Fields{
				"room": room.ID,
				"door": door,
			}).Debug("Door is not on a wall, skipped")
		}
	}
}
