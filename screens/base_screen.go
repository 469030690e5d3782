package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"buch-dungeon/config"
)

// BaseScreen provides the fixed logical size every screen renders at
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout keeps the logical screen at the game resolution; Ebitengine scales
// it to the window
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// GetWidth returns the screen width
func (s *BaseScreen) GetWidth() int {
	w, _ := config.GetScreenDimensions()
	return w
}

// GetHeight returns the screen height
func (s *BaseScreen) GetHeight() int {
	_, h := config.GetScreenDimensions()
	return h
}
