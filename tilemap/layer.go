package tilemap

import (
	"math"
	"math/rand"
)

// Empty marks a cell with no tile
const Empty = -1

// WeightedIndex is one entry of a weighted random tile set. When Indexes holds
// more than one tile, one of them is picked uniformly once the entry wins.
type WeightedIndex struct {
	Indexes []int
	Weight  float64
}

// Layer is a grid of tile indices with per-tile alpha and a collision mask
type Layer struct {
	Name       string
	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int // in pixels
	TileHeight int // in pixels

	tiles     [][]int
	alpha     [][]float64
	noCollide map[int]bool
	collides  bool
}

// NewLayer creates a blank layer where every cell is Empty and fully opaque
func NewLayer(name string, width, height, tileWidth, tileHeight int) *Layer {
	tiles := make([][]int, height)
	alpha := make([][]float64, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]int, width)
		alpha[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = Empty
			alpha[y][x] = 1
		}
	}

	return &Layer{
		Name:       name,
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		tiles:      tiles,
		alpha:      alpha,
	}
}

// InBounds reports whether the tile coordinate lies inside the layer
func (l *Layer) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Fill sets every cell to index and returns the layer for chaining
func (l *Layer) Fill(index int) *Layer {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			l.tiles[y][x] = index
		}
	}
	return l
}

// GetTileAt returns the tile index at x,y, or Empty when out of bounds
func (l *Layer) GetTileAt(x, y int) int {
	if !l.InBounds(x, y) {
		return Empty
	}
	return l.tiles[y][x]
}

// PutTileAt writes a single tile. Writes outside the layer are dropped.
func (l *Layer) PutTileAt(index, x, y int) {
	if !l.InBounds(x, y) {
		return
	}
	l.tiles[y][x] = index
}

// PutTilesAt writes a pattern of rows with its top-left corner at x,y
func (l *Layer) PutTilesAt(pattern [][]int, x, y int) {
	for dy, row := range pattern {
		for dx, index := range row {
			l.PutTileAt(index, x+dx, y+dy)
		}
	}
}

// WeightedRandomize fills the rectangle with tiles drawn independently from weights
func (l *Layer) WeightedRandomize(x, y, width, height int, weights []WeightedIndex, rng *rand.Rand) {
	total := 0.0
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return
	}

	for ty := y; ty < y+height; ty++ {
		for tx := x; tx < x+width; tx++ {
			l.PutTileAt(pickWeighted(weights, total, rng), tx, ty)
		}
	}
}

// pickWeighted selects a tile index based on weighted probability
func pickWeighted(weights []WeightedIndex, total float64, rng *rand.Rand) int {
	roll := rng.Float64() * total
	sum := 0.0
	for _, w := range weights {
		sum += w.Weight
		if roll < sum {
			return pickOne(w.Indexes, rng)
		}
	}
	// Float rounding can leave roll == total
	return pickOne(weights[len(weights)-1].Indexes, rng)
}

func pickOne(indexes []int, rng *rand.Rand) int {
	if len(indexes) == 1 {
		return indexes[0]
	}
	return indexes[rng.Intn(len(indexes))]
}

// Count returns how many cells hold the given index
func (l *Layer) Count(index int) int {
	n := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.tiles[y][x] == index {
				n++
			}
		}
	}
	return n
}

// FindTiles returns the coordinates of every cell holding index, row by row
func (l *Layer) FindTiles(index int) [][2]int {
	var found [][2]int
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.tiles[y][x] == index {
				found = append(found, [2]int{x, y})
			}
		}
	}
	return found
}

// SetCollisionByExclusion makes every non-empty tile collide except the listed indices
func (l *Layer) SetCollisionByExclusion(excluded ...int) {
	l.noCollide = make(map[int]bool, len(excluded))
	for _, index := range excluded {
		l.noCollide[index] = true
	}
	l.collides = true
}

// IsColliding reports whether the tile at x,y blocks movement. Cells outside
// the layer never collide.
func (l *Layer) IsColliding(x, y int) bool {
	if !l.collides {
		return false
	}
	index := l.GetTileAt(x, y)
	if index == Empty {
		return false
	}
	return !l.noCollide[index]
}

// SetAlpha sets the alpha of one cell
func (l *Layer) SetAlpha(x, y int, alpha float64) {
	if !l.InBounds(x, y) {
		return
	}
	l.alpha[y][x] = alpha
}

// Alpha returns the alpha of one cell (0 when out of bounds)
func (l *Layer) Alpha(x, y int) float64 {
	if !l.InBounds(x, y) {
		return 0
	}
	return l.alpha[y][x]
}

// ForEachTile calls fn for every in-bounds cell of the rectangle
func (l *Layer) ForEachTile(x, y, width, height int, fn func(tx, ty, index int)) {
	for ty := y; ty < y+height; ty++ {
		for tx := x; tx < x+width; tx++ {
			if l.InBounds(tx, ty) {
				fn(tx, ty, l.tiles[ty][tx])
			}
		}
	}
}

// WorldToTileX converts a pixel x coordinate to a tile column
func (l *Layer) WorldToTileX(px float64) int {
	return int(math.Floor(px / float64(l.TileWidth)))
}

// WorldToTileY converts a pixel y coordinate to a tile row
func (l *Layer) WorldToTileY(py float64) int {
	return int(math.Floor(py / float64(l.TileHeight)))
}

// TileToWorldX returns the left pixel edge of a tile column
func (l *Layer) TileToWorldX(tx int) float64 {
	return float64(tx * l.TileWidth)
}

// TileToWorldY returns the top pixel edge of a tile row
func (l *Layer) TileToWorldY(ty int) float64 {
	return float64(ty * l.TileHeight)
}

// WidthInPixels returns the layer width in pixels
func (l *Layer) WidthInPixels() int {
	return l.Width * l.TileWidth
}

// HeightInPixels returns the layer height in pixels
func (l *Layer) HeightInPixels() int {
	return l.Height * l.TileHeight
}
