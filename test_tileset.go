package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"buch-dungeon/render"
)

// TilesetViewer shows every frame of a tileset with its index, the number
// the tile layers store.
type TilesetViewer struct {
	tileset       *render.Tileset
	filename      string
	cellSize      int
	displayWidth  int // frames shown across
	displayHeight int // frames shown down
	offsetRow     int
	screenWidth   int
	screenHeight  int
}

// NewTilesetViewer creates a new tileset viewer
func NewTilesetViewer(filename string) (*TilesetViewer, error) {
	tileset, err := render.LoadTileset(filename, render.TilesetSheet)
	if err != nil {
		return nil, err
	}

	cellSize := tileset.Sheet.FrameWidth + 4
	displayWidth := tileset.Columns
	if displayWidth > 16 {
		displayWidth = 16
	}
	displayHeight := 10

	return &TilesetViewer{
		tileset:       tileset,
		filename:      filename,
		cellSize:      cellSize,
		displayWidth:  displayWidth,
		displayHeight: displayHeight,
		screenWidth:   displayWidth*cellSize + 20,
		screenHeight:  displayHeight*cellSize + 110, // header and footer
	}, nil
}

// Update scrolls by rows; Page Up/Down move a screen at a time
func (t *TilesetViewer) Update() error {
	rows := (t.tileset.Len() + t.displayWidth - 1) / t.displayWidth
	maxRow := rows - t.displayHeight
	if maxRow < 0 {
		maxRow = 0
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		t.offsetRow++
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		t.offsetRow--
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		t.offsetRow += t.displayHeight
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		t.offsetRow -= t.displayHeight
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	if t.offsetRow > maxRow {
		t.offsetRow = maxRow
	}
	if t.offsetRow < 0 {
		t.offsetRow = 0
	}
	return nil
}

// Draw displays the frames with their indices
func (t *TilesetViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tileset: %s", t.filename), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%dx%d frames (%d total)", t.tileset.Columns, t.tileset.Rows, t.tileset.Len()), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Rows from %d", t.offsetRow), 10, 50)

	for y := 0; y < t.displayHeight; y++ {
		for x := 0; x < t.displayWidth; x++ {
			index := (y+t.offsetRow)*t.displayWidth + x
			if index >= t.tileset.Len() {
				continue
			}

			sx := 10 + x*t.cellSize
			sy := 80 + y*t.cellSize
			vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(t.cellSize-2), float32(t.cellSize-2), color.RGBA{60, 60, 60, 255}, false)
			t.tileset.DrawTile(screen, index, float64(sx), float64(sy), 1)
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", index), sx+2, sy+t.cellSize-18)
		}
	}

	ebitenutil.DebugPrintAt(screen, "Arrow keys: scroll | Page Up/Down: fast | ESC: quit", 10, t.screenHeight-20)
}

// Layout implements ebiten.Game's Layout.
func (t *TilesetViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return t.screenWidth, t.screenHeight
}
