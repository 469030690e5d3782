package data

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// ActorTemplate describes how one actor kind looks and collides
type ActorTemplate struct {
	ID   string `yaml:"id"`   // actor kind name, e.g. "king"
	Name string `yaml:"name"` // display name

	// Sprite frame size in pixels, the sprite is drawn centered on the position
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`

	// Collision box relative to the position
	BodyWidth   float64 `yaml:"bodyWidth"`
	BodyHeight  float64 `yaml:"bodyHeight"`
	BodyOffsetX float64 `yaml:"bodyOffsetX"`
	BodyOffsetY float64 `yaml:"bodyOffsetY"`

	Damage int    `yaml:"damage"` // 0 for harmless actors
	Color  string `yaml:"color"`  // flat fill used when the spritesheet is missing
}

// TemplateManager holds the actor templates by ID
type TemplateManager struct {
	Templates map[string]*ActorTemplate
}

// NewTemplateManager creates a manager preloaded with the built-in templates
func NewTemplateManager() *TemplateManager {
	m := &TemplateManager{Templates: make(map[string]*ActorTemplate)}
	for _, t := range DefaultTemplates() {
		t := t
		m.Templates[t.ID] = &t
	}
	return m
}

// DefaultTemplates returns the built-in actor templates
func DefaultTemplates() []ActorTemplate {
	return []ActorTemplate{
		{ID: "player", Name: "Buch", FrameWidth: 64, FrameHeight: 64,
			BodyWidth: 22, BodyHeight: 33, BodyOffsetX: -9, BodyOffsetY: -5, Color: "#3aa0ff"},
		{ID: "antifairy", Name: "Antifairy", FrameWidth: 21, FrameHeight: 21,
			BodyWidth: 21, BodyHeight: 21, BodyOffsetX: -10.5, BodyOffsetY: -10.5, Damage: 10, Color: "#ff66cc"},
		{ID: "bladetrap", Name: "Blade trap", FrameWidth: 21, FrameHeight: 22,
			BodyWidth: 21, BodyHeight: 22, BodyOffsetX: -10.5, BodyOffsetY: -11, Damage: 5, Color: "#c0c0c0"},
		{ID: "king", Name: "The King", FrameWidth: 64, FrameHeight: 64,
			BodyWidth: 30, BodyHeight: 40, BodyOffsetX: -15, BodyOffsetY: -20, Color: "#ffd700"},
		{ID: "insect", Name: "Insect", FrameWidth: 65, FrameHeight: 64,
			BodyWidth: 40, BodyHeight: 40, BodyOffsetX: -20, BodyOffsetY: -20, Color: "#66cc33"},
	}
}

// LoadTemplatesFromFile overrides templates with the entries of a YAML list.
// A missing file leaves the built-in templates untouched.
func (m *TemplateManager) LoadTemplatesFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read templates: %w", err)
	}

	var templates []ActorTemplate
	if err := yaml.Unmarshal(raw, &templates); err != nil {
		return fmt.Errorf("failed to parse templates %s: %w", filePath, err)
	}

	for i := range templates {
		if err := ValidateTemplate(&templates[i]); err != nil {
			return fmt.Errorf("invalid template in %s: %w", filePath, err)
		}
	}
	for i := range templates {
		m.Templates[templates[i].ID] = &templates[i]
	}
	return nil
}

// GetTemplate returns a template by ID
func (m *TemplateManager) GetTemplate(id string) (*ActorTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}

// ValidateTemplate ensures that the template has all required fields
func ValidateTemplate(template *ActorTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("actor template missing id")
	}
	if template.BodyWidth <= 0 || template.BodyHeight <= 0 {
		return fmt.Errorf("actor template '%s' needs a positive body size", template.ID)
	}
	if template.Damage < 0 {
		return fmt.Errorf("actor template '%s' has negative damage", template.ID)
	}
	return nil
}
