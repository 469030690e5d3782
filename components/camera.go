package components

import (
	"buch-dungeon/ecs"
)

// CameraComponent tracks the viewport position and the fade-out effect
type CameraComponent struct {
	X, Y   float64      // Top-left position of the camera in the world
	Target ecs.EntityID // Entity that the camera follows (usually the player)

	// Viewport and world size in pixels. The camera never shows past the world edge.
	ViewWidth, ViewHeight     float64
	BoundsWidth, BoundsHeight float64

	Fading       bool
	FadeDuration float64 // seconds
	FadeElapsed  float64
	FadeDone     bool
}

// NewCameraComponent creates a camera following target
func NewCameraComponent(target ecs.EntityID, viewW, viewH, boundsW, boundsH float64) *CameraComponent {
	return &CameraComponent{
		Target:       target,
		ViewWidth:    viewW,
		ViewHeight:   viewH,
		BoundsWidth:  boundsW,
		BoundsHeight: boundsH,
	}
}

// StartFade begins fading to black over seconds. A running fade is not restarted.
func (c *CameraComponent) StartFade(seconds float64) {
	if c.Fading || c.FadeDone {
		return
	}
	c.Fading = true
	c.FadeDuration = seconds
	c.FadeElapsed = 0
}

// FadeAlpha returns how dark the fade overlay is, 0 to 1
func (c *CameraComponent) FadeAlpha() float64 {
	switch {
	case c.FadeDone:
		return 1
	case !c.Fading || c.FadeDuration <= 0:
		return 0
	}
	a := c.FadeElapsed / c.FadeDuration
	if a > 1 {
		a = 1
	}
	return a
}

// WorldToScreen converts world pixels to screen pixels
func (c *CameraComponent) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}
