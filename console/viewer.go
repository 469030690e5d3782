// Package console draws dungeon layouts in a terminal
package console

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"buch-dungeon/generation"
)

const helpLine = "r: regenerate  q: quit"

var (
	styleWall  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleDoor  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHelp  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Viewer shows one generated dungeon at a time
type Viewer struct {
	screen  tcell.Screen
	cfg     generation.DungeonConfig
	rng     *rand.Rand
	log     logrus.FieldLogger
	dungeon *generation.Dungeon
	count   int
}

// NewViewer generates a first dungeon for an initialised screen
func NewViewer(screen tcell.Screen, cfg generation.DungeonConfig, rng *rand.Rand, log logrus.FieldLogger) *Viewer {
	v := &Viewer{screen: screen, cfg: cfg, rng: rng, log: log}
	v.Regenerate()
	return v
}

// Dungeon returns the layout on screen
func (v *Viewer) Dungeon() *generation.Dungeon {
	return v.dungeon
}

// Regenerate replaces the layout with a fresh one
func (v *Viewer) Regenerate() {
	v.dungeon = generation.NewDungeon(v.cfg, v.rng)
	v.count++
	if v.log != nil {
		v.log.WithFields(logrus.Fields{
			"dungeon": v.count,
			"rooms":   len(v.dungeon.Rooms()),
		}).Debug("Generated dungeon")
	}
}

// Draw paints the layout and the help line
func (v *Viewer) Draw() {
	v.screen.Clear()

	for y, line := range strings.Split(strings.TrimRight(v.dungeon.String(), "\n"), "\n") {
		for x, c := range line {
			v.screen.SetContent(x, y, c, nil, glyphStyle(c))
		}
	}

	_, h := v.screen.Size()
	status := fmt.Sprintf("#%d  %d rooms  %s", v.count, len(v.dungeon.Rooms()), helpLine)
	for x, c := range status {
		v.screen.SetContent(x, h-1, c, nil, styleHelp)
	}
	v.screen.Show()
}

func glyphStyle(c rune) tcell.Style {
	switch c {
	case '#':
		return styleWall
	case '+':
		return styleDoor
	case '.':
		return styleFloor
	}
	return tcell.StyleDefault
}

// command applies one key press and reports whether the viewer should exit
func (v *Viewer) command(key tcell.Key, r rune) (quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			v.Regenerate()
			v.Draw()
		}
	}
	return false
}

// Loop handles events until the user quits
func (v *Viewer) Loop() {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			if v.command(ev.Key(), ev.Rune()) {
				return
			}
		}
	}
}

// Run opens the terminal and shows dungeons until the user quits
func Run(cfg generation.DungeonConfig, rng *rand.Rand, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal screen: %w", err)
	}
	defer screen.Fini()

	NewViewer(screen, cfg, rng, log).Loop()
	return nil
}
