package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"buch-dungeon/render"
	"buch-dungeon/systems"
)

// DebugScreen shows the message log in a modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewDebugScreen creates a debug screen over the global message log
func NewDebugScreen() *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		log:        systems.GetMessageLog(),
		width:      600,
		height:     400,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:  color.White,
	}
}

// Update scrolls with the arrow keys; Escape closes the window
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	x := (b.Dx() - s.width) / 2
	y := (b.Dy() - s.height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), 2, color.White, false)

	title := "MESSAGE LOG"
	titleW, _ := render.TextSize(title)
	render.DrawText(screen, title, x+(s.width-titleW)/2, y+8, s.textColor)

	messages := s.log.Messages
	startY := 30
	maxLines := (s.height - startY - 24) / render.LineHeight

	// Keep the last page full when scrolled to the end
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = len(messages) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		render.DrawText(screen, msg.Text, x+10, y+startY+i*render.LineHeight, msg.GetColor())
	}

	if len(messages) > maxLines {
		area := float32(s.height - startY - 24)
		barHeight := float32(maxLines) / float32(len(messages)) * area
		barY := float32(y+startY) + float32(startIdx)/float32(len(messages))*area
		vector.DrawFilledRect(screen, float32(x+s.width-10), barY, 5, barHeight, color.White, false)
	}

	render.DrawText(screen, "Up/Down: Scroll  ESC: Close", x+10, y+s.height-20, s.textColor)
}
