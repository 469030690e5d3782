package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"buch-dungeon/render"
)

// MainMenuScreen is the title menu: 1 starts a dungeon, 2 opens the map editor
type MainMenuScreen struct {
	*BaseScreen
	title       string
	options     []string
	titleColor  color.Color
	optionColor color.Color
}

// NewMainMenuScreen creates the main menu
func NewMainMenuScreen() *MainMenuScreen {
	return &MainMenuScreen{
		BaseScreen: NewBaseScreen(),
		title:      "BUCH DUNGEON",
		options: []string{
			"Press 1 to Start Game",
			"Press 2 to Map Editor",
			"Press Escape to Quit",
		},
		titleColor:  color.RGBA{255, 230, 150, 255}, // Gold
		optionColor: color.RGBA{200, 200, 200, 255}, // Light Gray
	}
}

// Update handles input for the main menu
func (s *MainMenuScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1), inpututil.IsKeyJustPressed(ebiten.KeyNumpad1):
		return ErrStartDungeon
	case inpututil.IsKeyJustPressed(ebiten.Key2), inpututil.IsKeyJustPressed(ebiten.KeyNumpad2):
		return ErrOpenEditor
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrQuit
	}
	return nil
}

// Draw renders the menu
func (s *MainMenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})

	centerY := screen.Bounds().Dy() / 2
	render.DrawCentered(screen, s.title, centerY-80, s.titleColor)

	optionSpacing := 30
	startY := centerY - (len(s.options)*optionSpacing)/2
	for i, option := range s.options {
		render.DrawCentered(screen, option, startY+i*optionSpacing, s.optionColor)
	}
}
