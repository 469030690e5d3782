package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font metrics
const (
	GlyphWidth = 6
	LineHeight = 16
)

// Padding of the HUD text boxes
const (
	boxPadX = 20
	boxPadY = 10
)

// TextSize returns the pixel size of text in the debug font
func TextSize(text string) (w, h int) {
	lines := strings.Split(text, "\n")
	longest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return longest * GlyphWidth, len(lines) * LineHeight
}

// DrawText draws text in the given colour. The debug font is white, so the
// text is printed to a scratch image and tinted on the way to dst.
func DrawText(dst *ebiten.Image, text string, x, y int, clr color.Color) {
	w, h := TextSize(text)
	if w == 0 {
		return
	}

	line := ebiten.NewImage(w+GlyphWidth, h)
	ebitenutil.DebugPrintAt(line, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(clr)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(line, op)
}

// DrawTextBox draws text on a padded, filled box with its top-left corner at x,y
func DrawTextBox(dst *ebiten.Image, text string, x, y int, fg, bg color.Color) {
	w, h := TextSize(text)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w+2*boxPadX), float32(h+2*boxPadY), bg, false)
	DrawText(dst, text, x+boxPadX, y+boxPadY, fg)
}

// DrawCentered draws text centred horizontally on dst at row y
func DrawCentered(dst *ebiten.Image, text string, y int, clr color.Color) {
	w, _ := TextSize(text)
	DrawText(dst, text, (dst.Bounds().Dx()-w)/2, y, clr)
}
