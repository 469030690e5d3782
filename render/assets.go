package render

import (
	"github.com/sirupsen/logrus"

	"buch-dungeon/components"
	"buch-dungeon/config"
	"buch-dungeon/tilemap"
)

// Layouts of the bundled images. The tileset and the character sheet are
// extruded: 1px margin and 2px spacing around every frame.
var (
	TilesetSheet = tilemap.Sheet{FrameWidth: config.TileSize, FrameHeight: config.TileSize, Margin: 1, Spacing: 2}

	SpriteSheets = map[string]tilemap.Sheet{
		components.SheetCharacters: {FrameWidth: 64, FrameHeight: 64, Margin: 1, Spacing: 2},
		components.SheetAntifairy:  {FrameWidth: 21, FrameHeight: 21},
		components.SheetInsect:     {FrameWidth: 65, FrameHeight: 64},
		components.SheetBladeTrap:  {FrameWidth: 21, FrameHeight: 22},
	}
)

// Assets holds the loaded images. A missing image leaves its entry nil and
// the renderer falls back to flat colours.
type Assets struct {
	Tiles  *Tileset
	Sheets map[string]*Tileset
}

// LoadAssets loads the tileset and every spritesheet named in cfg
func LoadAssets(cfg config.AssetsConfig, log logrus.FieldLogger) *Assets {
	assets := &Assets{Sheets: make(map[string]*Tileset)}

	if tiles, err := LoadTileset(cfg.Tileset, TilesetSheet); err != nil {
		log.WithError(err).WithField("path", cfg.Tileset).Warn("Tileset unavailable, drawing flat tiles")
	} else {
		assets.Tiles = tiles
		log.WithFields(logrus.Fields{"path": cfg.Tileset, "tiles": tiles.Len()}).Debug("Tileset loaded")
	}

	paths := map[string]string{
		components.SheetCharacters: cfg.Characters,
		components.SheetAntifairy:  cfg.Antifairy,
		components.SheetInsect:     cfg.Insect,
		components.SheetBladeTrap:  cfg.BladeTrap,
	}
	for name, path := range paths {
		sheet, err := LoadTileset(path, SpriteSheets[name])
		if err != nil {
			log.WithError(err).WithField("sheet", name).Warn("Spritesheet unavailable, drawing flat sprites")
			continue
		}
		assets.Sheets[name] = sheet
	}

	return assets
}
