package render

import (
	"fmt"
	"image"
	_ "image/png" // tilesets and spritesheets are PNG files
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"buch-dungeon/tilemap"
)

// Tileset is an image cut into equally sized frames. Tile layers and actor
// spritesheets both draw from one.
type Tileset struct {
	Image   *ebiten.Image
	Sheet   tilemap.Sheet
	Columns int // frames across
	Rows    int // frames down

	frames map[int]*ebiten.Image
}

// LoadImage decodes an image file into an ebiten image
func LoadImage(filename string) (*ebiten.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", filename, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// NewTileset slices img with the given layout
func NewTileset(img *ebiten.Image, sheet tilemap.Sheet) *Tileset {
	bounds := img.Bounds()
	return &Tileset{
		Image:   img,
		Sheet:   sheet,
		Columns: sheet.Columns(bounds.Dx()),
		Rows:    sheet.Rows(bounds.Dy()),
		frames:  make(map[int]*ebiten.Image),
	}
}

// LoadTileset loads and slices a tileset image
func LoadTileset(filename string, sheet tilemap.Sheet) (*Tileset, error) {
	img, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return NewTileset(img, sheet), nil
}

// Len returns the number of frames in the tileset
func (t *Tileset) Len() int {
	return t.Columns * t.Rows
}

// Frame returns the sub-image of one frame, nil when index is out of range
func (t *Tileset) Frame(index int) *ebiten.Image {
	if index < 0 || index >= t.Len() {
		return nil
	}
	if frame, ok := t.frames[index]; ok {
		return frame
	}
	frame := t.Image.SubImage(t.Sheet.Frame(index, t.Columns)).(*ebiten.Image)
	t.frames[index] = frame
	return frame
}

// DrawTile draws frame index with its top-left corner at x,y
func (t *Tileset) DrawTile(target *ebiten.Image, index int, x, y, alpha float64) bool {
	frame := t.Frame(index)
	if frame == nil {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	target.DrawImage(frame, op)
	return true
}
