package data

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTemplatesCoverEveryActor(t *testing.T) {
	m := NewTemplateManager()
	for _, id := range []string{"player", "antifairy", "bladetrap", "king", "insect"} {
		tpl, ok := m.GetTemplate(id)
		if !ok {
			t.Errorf("Missing template %q", id)
			continue
		}
		if err := ValidateTemplate(tpl); err != nil {
			t.Errorf("Template %q invalid: %v", id, err)
		}
	}
}

func TestLoadTemplatesOverridesByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actors.yaml")
	content := `
- id: bladetrap
  name: Spikes
  bodyWidth: 10
  bodyHeight: 10
  damage: 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewTemplateManager()
	if err := m.LoadTemplatesFromFile(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tpl, _ := m.GetTemplate("bladetrap")
	if tpl.Damage != 50 || tpl.Name != "Spikes" {
		t.Errorf("Template not overridden: %+v", tpl)
	}
	if other, _ := m.GetTemplate("antifairy"); other.Damage != 10 {
		t.Error("Unrelated template changed")
	}
}

func TestLoadTemplatesRejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actors.yaml")
	if err := os.WriteFile(path, []byte("- id: ghost\n  bodyWidth: 0\n  bodyHeight: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewTemplateManager()
	if err := m.LoadTemplatesFromFile(path); err == nil {
		t.Fatal("Expected an error for a zero-width body")
	}
	if _, ok := m.GetTemplate("ghost"); ok {
		t.Error("Invalid template was registered")
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	m := NewTemplateManager()
	if err := m.LoadTemplatesFromFile(filepath.Join(t.TempDir(), "none.yaml")); err != nil {
		t.Errorf("Missing file should be ignored, got %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}},
		{"#zzzzzz", color.RGBA{255, 255, 255, 255}},
		{"#fff", color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := ParseHexColor(tt.in); got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
