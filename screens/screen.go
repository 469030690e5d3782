package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen transitions. A screen's Update returns one of these to ask the game
// for another screen.
var (
	ErrStartDungeon = errors.New("start dungeon")
	ErrOpenEditor   = errors.New("open map editor")
	ErrBackToMenu   = errors.New("back to menu")
	ErrQuit         = errors.New("quit")

	// ErrCloseScreen pops an overlay off its stack
	ErrCloseScreen = errors.New("close screen")
)

// StartRequest asks for a dungeon with a room count chosen in the map
// editor. It matches ErrStartDungeon with errors.Is.
type StartRequest struct {
	MaxRooms int
}

func (r *StartRequest) Error() string {
	return ErrStartDungeon.Error()
}

// Is makes errors.Is(req, ErrStartDungeon) hold
func (r *StartRequest) Is(target error) bool {
	return target == ErrStartDungeon
}

// Screen represents a game screen that can be pushed onto the screen stack
type Screen interface {
	// Update updates the screen state
	Update() error
	// Draw draws the screen
	Draw(screen *ebiten.Image)
	// Layout handles screen layout
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack manages a stack of screens. Only the top screen gets input;
// all of them are drawn, bottom first.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a new screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a new screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Replace drops every screen and pushes screen
func (s *ScreenStack) Replace(screen Screen) {
	s.screens = s.screens[:0]
	s.Push(screen)
}

// Len returns the number of stacked screens
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update updates the top screen. ErrCloseScreen pops it and is not passed on.
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	err := top.Update()
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout handles layout for the top screen
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
