package main

import (
	"flag"
	"io"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"buch-dungeon/config"
	"buch-dungeon/console"
	"buch-dungeon/data"
	"buch-dungeon/logger"
	"buch-dungeon/render"
)

func main() {
	consoleMode := flag.Bool("console", false, "browse generated layouts in the terminal")
	viewTileset := flag.Bool("view-tileset", false, "show the tileset frames with their indices")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	flag.Parse()

	if *consoleMode {
		// Log lines would scribble over the terminal
		logger.InitWithOutput(io.Discard)
	} else {
		logger.Init()
	}
	log := logger.Log

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.WithError(err).Warn("Using default configuration")
	}

	if *consoleMode {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		if err := console.Run(cfg.Dungeon, rand.New(rand.NewSource(seed)), log); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *viewTileset {
		viewer, err := NewTilesetViewer(cfg.Assets.Tileset)
		if err != nil {
			log.Fatal(err)
		}
		ebiten.SetWindowSize(viewer.Layout(0, 0))
		ebiten.SetWindowTitle("Tileset Viewer - " + cfg.Assets.Tileset)
		if err := ebiten.RunGame(viewer); err != nil {
			log.Fatal(err)
		}
		return
	}

	templates := data.NewTemplateManager()
	if cfg.Assets.Templates != "" {
		if err := templates.LoadTemplatesFromFile(cfg.Assets.Templates); err != nil {
			log.WithError(err).Warn("Using built-in actor templates")
		}
	}

	game := NewGame(cfg, templates, render.LoadAssets(cfg.Assets, log), log)

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowTitle("Buch Dungeon")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
