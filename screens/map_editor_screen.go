package screens

import (
	"fmt"
	"image/color"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"buch-dungeon/config"
	"buch-dungeon/render"
)

// maxInputDigits matches config.MaxRoomsLimit
const maxInputDigits = 3

// MapEditorScreen asks for the number of rooms of the next dungeon
type MapEditorScreen struct {
	*BaseScreen
	input []rune
	chars []rune
	err   error
}

// NewMapEditorScreen creates the map editor
func NewMapEditorScreen() *MapEditorScreen {
	return &MapEditorScreen{BaseScreen: NewBaseScreen()}
}

// Update reads digits. Enter starts a dungeon with the typed room count,
// Escape goes back to the menu.
func (s *MapEditorScreen) Update() error {
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, c := range s.chars {
		if unicode.IsDigit(c) && len(s.input) < maxInputDigits {
			s.input = append(s.input, c)
			s.err = nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
		s.err = nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		rooms, err := config.ParseMaxRooms(string(s.input))
		if err != nil {
			s.err = err
			return nil
		}
		return &StartRequest{MaxRooms: rooms}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrBackToMenu
	}
	return nil
}

// Draw renders the prompt
func (s *MapEditorScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})

	render.DrawText(screen, "Map Editor", 16, 16, color.White)
	render.DrawText(screen, fmt.Sprintf("Number of rooms (1-%d): %s_", config.MaxRoomsLimit, string(s.input)), 16, 56, color.White)
	render.DrawText(screen, "Enter: start dungeon  Backspace: delete  Escape: menu", 16, 88, color.RGBA{200, 200, 200, 255})

	if s.err != nil {
		render.DrawText(screen, s.err.Error(), 16, 120, color.RGBA{255, 100, 100, 255})
	}
}
