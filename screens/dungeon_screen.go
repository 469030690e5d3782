package screens

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"buch-dungeon/config"
	"buch-dungeon/render"
	"buch-dungeon/session"
	"buch-dungeon/systems"
)

// DungeonScreen plays dungeon sessions. Taking the stairs starts a new
// session one level deeper; running out of life shows the game over screen.
type DungeonScreen struct {
	*BaseScreen
	cfg      config.Config
	rng      *rand.Rand
	opts     []session.Option
	renderer *render.Renderer
	log      *logrus.Logger

	session  *session.Session
	overlays *ScreenStack
}

// NewDungeonScreen starts a session on level 1
func NewDungeonScreen(cfg config.Config, rng *rand.Rand, renderer *render.Renderer, log *logrus.Logger, opts ...session.Option) *DungeonScreen {
	s := &DungeonScreen{
		BaseScreen: NewBaseScreen(),
		cfg:        cfg,
		rng:        rng,
		opts:       append([]session.Option{session.WithLogger(log)}, opts...),
		renderer:   renderer,
		log:        log,
		overlays:   NewScreenStack(),
	}
	s.startLevel(1)
	return s
}

func (s *DungeonScreen) startLevel(level int) {
	s.session = session.New(s.cfg, level, s.rng, s.opts...)
}

// Session returns the running session
func (s *DungeonScreen) Session() *session.Session {
	return s.session
}

// Update advances the session one tick unless an overlay is open
func (s *DungeonScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if _, open := s.overlays.Peek().(*DebugScreen); open {
			s.overlays.Pop()
		} else if s.overlays.Len() == 0 {
			s.overlays.Push(NewDebugScreen())
		}
		return nil
	}

	if s.overlays.Len() > 0 {
		return s.overlays.Update()
	}

	s.session.Update(ReadInput(), 1/float64(ebiten.TPS()))

	switch {
	case s.session.State() == session.Finished:
		next := s.session.Level() + 1
		s.log.WithField("level", next).Info("Descending")
		s.startLevel(next)
	case s.session.Dead():
		s.log.WithField("level", s.session.Level()).Info("Player died")
		systems.GetMessageLog().AddTyped("You died.", systems.MessageTypeDamage)
		s.overlays.Push(NewGameOverScreen(s.session.Level()))
	}
	return nil
}

// Draw draws the session and any open overlay
func (s *DungeonScreen) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.session)
	s.overlays.Draw(screen)
}

// ReadInput maps the arrow keys and WASD to movement intent
func ReadInput() systems.InputState {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return systems.InputState{
		Up:    pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
	}
}
