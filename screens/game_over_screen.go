package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen is shown over the dungeon when the player's life runs out
type GameOverScreen struct {
	*ModalScreen
}

// NewGameOverScreen creates a new game over screen for the level reached
func NewGameOverScreen(level int) *GameOverScreen {
	content := fmt.Sprintf("You fell on level %d.\n\nPress Escape to return to the menu", level)
	return &GameOverScreen{
		ModalScreen: NewModalScreen("Game Over!", content, 320, 110),
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrBackToMenu
	}
	return nil
}
