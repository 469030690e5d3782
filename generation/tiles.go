package generation

import "buch-dungeon/tilemap"

// Tile indices into the 48px dungeon tileset
const (
	TileBlank  = 20
	TileChest  = 166
	TileStairs = 81

	TileWallTopLeft     = 3
	TileWallTopRight    = 4
	TileWallBottomRight = 23
	TileWallBottomLeft  = 22
)

// Weighted tile sets
var (
	FloorTiles = []tilemap.WeightedIndex{
		{Indexes: []int{6}, Weight: 9},
		{Indexes: []int{7, 8, 26}, Weight: 1},
	}

	WallTopTiles = []tilemap.WeightedIndex{
		{Indexes: []int{39}, Weight: 4},
		{Indexes: []int{57, 58, 59}, Weight: 1},
	}
	WallBottomTiles = []tilemap.WeightedIndex{
		{Indexes: []int{1}, Weight: 4},
		{Indexes: []int{78, 79, 80}, Weight: 1},
	}
	WallLeftTiles = []tilemap.WeightedIndex{
		{Indexes: []int{21}, Weight: 4},
		{Indexes: []int{76, 95, 114}, Weight: 1},
	}
	WallRightTiles = []tilemap.WeightedIndex{
		{Indexes: []int{19}, Weight: 4},
		{Indexes: []int{77, 96, 115}, Weight: 1},
	}

	PotTiles = []tilemap.WeightedIndex{
		{Indexes: []int{13}, Weight: 1},
		{Indexes: []int{32}, Weight: 1},
		{Indexes: []int{51}, Weight: 1},
	}
)

// Fixed tile patterns, one slice per row
var (
	DoorTopPattern    = [][]int{{40, 6, 38}}
	DoorBottomPattern = [][]int{{2, 6, 0}}
	DoorLeftPattern   = [][]int{{40}, {6}, {2}}
	DoorRightPattern  = [][]int{{38}, {6}, {0}}

	TowerPattern = [][]int{{186}, {205}}
)

// NonCollidingTiles are the indices the player can walk over. Every other
// non-empty tile on the ground and stuff layers blocks movement.
var NonCollidingTiles = []int{tilemap.Empty, 6, 7, 8, 26}

// ChestWeapons lists the weapons a chest can hold
var ChestWeapons = []string{"sword", "axe", "bow"}

// IsPotTile reports whether index is one of the pot variants
func IsPotTile(index int) bool {
	for _, w := range PotTiles {
		for _, i := range w.Indexes {
			if i == index {
				return true
			}
		}
	}
	return false
}

// IsTowerTile reports whether index belongs to the tower pattern
func IsTowerTile(index int) bool {
	for _, row := range TowerPattern {
		for _, i := range row {
			if i == index {
				return true
			}
		}
	}
	return false
}
