package config

// Screen layout configuration
const (
	// Tile size in pixels, matching the 48px tileset
	TileSize = 48

	// Logical screen dimensions in pixels
	ScreenWidth  = 800
	ScreenHeight = 600

	// HUD overlay positions (top-left corners, pixels)
	MissionTextX = 16
	LifeTextX    = 450
	WeaponTextX  = 620
	HUDTextY     = 16
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1024, 768
}
