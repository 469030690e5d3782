// Package render draws a dungeon session with Ebitengine: the three tile
// layers, the actors, the HUD overlays and the exit fade.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"buch-dungeon/components"
	"buch-dungeon/config"
	"buch-dungeon/data"
	"buch-dungeon/ecs"
	"buch-dungeon/generation"
	"buch-dungeon/session"
	"buch-dungeon/systems"
	"buch-dungeon/tilemap"
)

var (
	hudText       = color.Black
	hudBackground = color.White
)

// Messages shown along the bottom edge
const recentMessages = 3

// Renderer draws sessions
type Renderer struct {
	assets    *Assets
	templates *data.TemplateManager
	camera    *systems.CameraSystem
	log       logrus.FieldLogger

	// sheets already reported missing, so the warning is logged once
	missing map[string]bool
}

// NewRenderer creates a renderer. templates gives sprite sizes and the
// fallback colours; nil uses the built-in templates.
func NewRenderer(assets *Assets, templates *data.TemplateManager, log logrus.FieldLogger) *Renderer {
	if templates == nil {
		templates = data.NewTemplateManager()
	}
	if assets == nil {
		assets = &Assets{Sheets: map[string]*Tileset{}}
	}
	return &Renderer{
		assets:    assets,
		templates: templates,
		camera:    systems.NewCameraSystem(),
		log:       log,
		missing:   make(map[string]bool),
	}
}

// Draw draws one frame of s. Sprites go above the shadow layer.
func (r *Renderer) Draw(screen *ebiten.Image, s *session.Session) {
	screen.Fill(color.Black)

	cam := s.Camera()
	if cam == nil {
		return
	}

	layers := s.Layers()
	r.drawLayer(screen, layers.Ground, cam)
	r.drawLayer(screen, layers.Stuff, cam)
	r.drawLayer(screen, layers.Shadow, cam)
	r.drawActors(screen, s.World(), cam)
	r.drawHUD(screen, s.Status())
	r.drawMessages(screen)
	r.drawFade(screen, cam)
}

// drawLayer draws the tiles under the camera, each at its own alpha
func (r *Renderer) drawLayer(screen *ebiten.Image, layer *tilemap.Layer, cam *components.CameraComponent) {
	x0, y0 := layer.WorldToTileX(cam.X), layer.WorldToTileY(cam.Y)
	x1, y1 := layer.WorldToTileX(cam.X+cam.ViewWidth), layer.WorldToTileY(cam.Y+cam.ViewHeight)

	layer.ForEachTile(x0, y0, x1-x0+1, y1-y0+1, func(tx, ty, index int) {
		if index == tilemap.Empty {
			return
		}
		alpha := layer.Alpha(tx, ty)
		if alpha <= 0 {
			return
		}

		x, y := cam.WorldToScreen(layer.TileToWorldX(tx), layer.TileToWorldY(ty))
		if r.assets.Tiles != nil && r.assets.Tiles.DrawTile(screen, index, x, y, alpha) {
			return
		}

		c := tileColor(index)
		c.A = uint8(alpha * 255)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(layer.TileWidth), float32(layer.TileHeight), c, false)
	})
}

// drawActors draws every actor centred on its position
func (r *Renderer) drawActors(screen *ebiten.Image, world *ecs.World, cam *components.CameraComponent) {
	for _, entity := range world.GetEntitiesWithComponent(components.Actor) {
		posComp, ok := world.GetComponent(entity.ID, components.Position)
		if !ok {
			continue
		}
		pos := posComp.(*components.PositionComponent)
		actorComp, _ := world.GetComponent(entity.ID, components.Actor)
		kind := actorComp.(*components.ActorComponent).Kind

		template, ok := r.templates.GetTemplate(kind.String())
		if !ok {
			continue
		}
		w, h := float64(template.FrameWidth), float64(template.FrameHeight)
		if !r.camera.IsVisible(cam, pos.X-w/2, pos.Y-h/2, w, h) {
			continue
		}

		x, y := cam.WorldToScreen(pos.X, pos.Y)
		if r.drawSprite(screen, world, entity.ID, x, y) {
			continue
		}
		r.drawFlatActor(screen, world, entity.ID, template, x, y)
	}
}

// drawSprite draws the actor's current animation frame. It reports false
// when the spritesheet is missing.
func (r *Renderer) drawSprite(screen *ebiten.Image, world *ecs.World, id ecs.EntityID, x, y float64) bool {
	animComp, ok := world.GetComponent(id, components.Animation)
	if !ok {
		return false
	}
	anim := animComp.(*components.AnimationComponent)

	sheet := r.assets.Sheets[anim.Def.Sheet]
	if sheet == nil {
		r.warnMissing(anim.Def.Sheet)
		return false
	}
	frame := sheet.Frame(anim.Frame)
	if frame == nil {
		return false
	}

	b := frame.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if playerComp, ok := world.GetComponent(id, components.Player); ok && playerComp.(*components.PlayerComponent).FacingLeft {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Translate(x, y)
	screen.DrawImage(frame, op)
	return true
}

// drawFlatActor fills the actor's body with its template colour
func (r *Renderer) drawFlatActor(screen *ebiten.Image, world *ecs.World, id ecs.EntityID, template *data.ActorTemplate, x, y float64) {
	minX, minY := x-8, y-8
	w, h := 16.0, 16.0
	if bodyComp, ok := world.GetComponent(id, components.Body); ok {
		body := bodyComp.(*components.BodyComponent)
		minX, minY, w, h = x+body.OffsetX, y+body.OffsetY, body.Width, body.Height
	}
	vector.DrawFilledRect(screen, float32(minX), float32(minY), float32(w), float32(h), data.ParseHexColor(template.Color), false)
}

func (r *Renderer) warnMissing(sheet string) {
	if r.missing[sheet] {
		return
	}
	r.missing[sheet] = true
	if r.log != nil {
		r.log.WithField("sheet", sheet).Warn("Drawing actors without their spritesheet")
	}
}

// drawHUD draws the mission, life and weapon overlays. The weapon box only
// appears once a weapon has been found.
func (r *Renderer) drawHUD(screen *ebiten.Image, status *systems.StatusDisplay) {
	DrawTextBox(screen, status.MissionText(), config.MissionTextX, config.HUDTextY, hudText, hudBackground)
	DrawTextBox(screen, status.LifeText(), config.LifeTextX, config.HUDTextY, hudText, hudBackground)
	if status.Weapon != "" {
		DrawTextBox(screen, status.WeaponText(), config.WeaponTextX, config.HUDTextY, hudText, hudBackground)
	}
}

// drawMessages shows the newest log lines along the bottom, oldest on top
func (r *Renderer) drawMessages(screen *ebiten.Image) {
	messages := systems.GetMessageLog().RecentMessages(recentMessages)
	bottom := screen.Bounds().Dy() - 8
	for i, msg := range messages {
		DrawText(screen, msg.Text, 8, bottom-(i+1)*LineHeight, msg.GetColor())
	}
}

func (r *Renderer) drawFade(screen *ebiten.Image, cam *components.CameraComponent) {
	alpha := cam.FadeAlpha()
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: uint8(alpha * 255)}, false)
}

// tileColor is the flat colour of a tile when the tileset image is missing
func tileColor(index int) color.NRGBA {
	switch {
	case index == generation.TileBlank:
		return color.NRGBA{0, 0, 0, 255}
	case index == generation.TileStairs:
		return color.NRGBA{230, 190, 60, 255}
	case index == generation.TileChest:
		return color.NRGBA{160, 100, 40, 255}
	case generation.IsPotTile(index):
		return color.NRGBA{190, 90, 60, 255}
	case generation.IsTowerTile(index):
		return color.NRGBA{120, 120, 140, 255}
	case isFloor(index):
		return color.NRGBA{95, 85, 75, 255}
	default:
		return color.NRGBA{60, 45, 40, 255}
	}
}

func isFloor(index int) bool {
	for _, i := range generation.NonCollidingTiles {
		if i == index {
			return true
		}
	}
	return false
}
