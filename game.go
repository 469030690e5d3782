package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"buch-dungeon/config"
	"buch-dungeon/data"
	"buch-dungeon/render"
	"buch-dungeon/screens"
	"buch-dungeon/session"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg       config.Config
	rng       *rand.Rand
	templates *data.TemplateManager
	renderer  *render.Renderer
	log       *logrus.Logger

	screens *screens.ScreenStack
	showFPS bool
}

// NewGame creates a new game instance showing the main menu
func NewGame(cfg config.Config, templates *data.TemplateManager, assets *render.Assets, log *logrus.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("Random source ready")

	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		templates: templates,
		renderer:  render.NewRenderer(assets, templates, log),
		log:       log,
		screens:   screens.NewScreenStack(),
	}
	g.screens.Push(screens.NewMainMenuScreen())
	return g
}

// Update updates the current screen and applies the transition it asks for
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showFPS = !g.showFPS
	}

	err := g.screens.Update()
	if err == nil {
		return nil
	}

	var start *screens.StartRequest
	switch {
	case errors.As(err, &start):
		g.startDungeon(start.MaxRooms)
	case errors.Is(err, screens.ErrStartDungeon):
		g.startDungeon(g.cfg.Dungeon.MaxRooms)
	case errors.Is(err, screens.ErrOpenEditor):
		g.screens.Replace(screens.NewMapEditorScreen())
	case errors.Is(err, screens.ErrBackToMenu):
		g.screens.Replace(screens.NewMainMenuScreen())
	case errors.Is(err, screens.ErrQuit):
		g.log.Info("Quitting")
		return ebiten.Termination
	default:
		return err
	}
	return nil
}

func (g *Game) startDungeon(maxRooms int) {
	cfg := g.cfg
	cfg.Dungeon.MaxRooms = maxRooms
	g.log.WithField("maxRooms", maxRooms).Info("Starting dungeon")
	g.screens.Replace(screens.NewDungeonScreen(cfg, g.rng, g.renderer, g.log, session.WithTemplates(g.templates)))
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)

	if g.showFPS {
		w, _ := config.GetScreenDimensions()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), w-90, 4)
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screens.Layout(outsideWidth, outsideHeight)
}
