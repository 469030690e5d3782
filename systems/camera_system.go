package systems

import (
	"buch-dungeon/components"
	"buch-dungeon/ecs"
)

// CameraSystem handles viewport positioning and the fade-out
type CameraSystem struct {
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves every camera onto its target and advances running fades
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	for _, cameraEntity := range world.GetEntitiesWithTag("camera") {
		cameraComp, exists := world.GetComponent(cameraEntity.ID, components.Camera)
		if !exists {
			continue
		}
		camera := cameraComp.(*components.CameraComponent)

		s.follow(world, cameraEntity.ID, camera)

		if camera.Fading {
			camera.FadeElapsed += dt
			if camera.FadeElapsed >= camera.FadeDuration {
				camera.Fading = false
				camera.FadeDone = true
				world.EmitEvent(FadeCompleteEvent{CameraID: cameraEntity.ID})
			}
		}
	}
}

// follow centers the target in the viewport, constrained to the world bounds.
// A camera whose target is gone keeps its position.
func (s *CameraSystem) follow(world *ecs.World, cameraID ecs.EntityID, camera *components.CameraComponent) {
	if camera.Target == 0 {
		return
	}
	targetPosComp, exists := world.GetComponent(camera.Target, components.Position)
	if !exists {
		return
	}
	targetPos := targetPosComp.(*components.PositionComponent)

	oldX, oldY := camera.X, camera.Y
	camera.X = clamp(targetPos.X-camera.ViewWidth/2, 0, camera.BoundsWidth-camera.ViewWidth)
	camera.Y = clamp(targetPos.Y-camera.ViewHeight/2, 0, camera.BoundsHeight-camera.ViewHeight)

	if oldX != camera.X || oldY != camera.Y {
		world.EmitEvent(CameraUpdateEvent{
			CameraID: cameraID,
			X:        camera.X,
			Y:        camera.Y,
			TargetID: camera.Target,
		})
	}
}

// clamp limits v to [lo, hi]. A world smaller than the view pins to lo.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// IsVisible checks if a world rectangle touches the camera's view
func (s *CameraSystem) IsVisible(camera *components.CameraComponent, x, y, w, h float64) bool {
	return x+w > camera.X &&
		x < camera.X+camera.ViewWidth &&
		y+h > camera.Y &&
		y < camera.Y+camera.ViewHeight
}
