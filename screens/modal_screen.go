package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"buch-dungeon/render"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
	}
}

// SetContent replaces the body text
func (s *ModalScreen) SetContent(content string) {
	s.content = content
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	b := screen.Bounds()
	x := float32(b.Dx()-s.width) / 2
	y := float32(b.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	titleW, _ := render.TextSize(s.title)
	render.DrawText(screen, s.title, int(x)+(s.width-titleW)/2, int(y)+10, s.textColor)
	render.DrawText(screen, s.content, int(x)+10, int(y)+30, s.textColor)
}
