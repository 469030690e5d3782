package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"buch-dungeon/generation"
)

// EnvConfigPath names the environment variable that overrides the config path
const EnvConfigPath = "DUNGEON_CONFIG"

// DefaultConfigPath is read when no path is given
const DefaultConfigPath = "config/dungeon.yaml"

// PlayerConfig holds player tuning
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`          // pixels per second
	Life           int     `yaml:"life"`           // starting life percentage
	DamageCooldown float64 `yaml:"damageCooldown"` // seconds between hazard hits
}

// AssetsConfig holds image paths. Missing images fall back to flat colors.
type AssetsConfig struct {
	Tileset    string `yaml:"tileset"`
	Characters string `yaml:"characters"`
	Antifairy  string `yaml:"antifairy"`
	Insect     string `yaml:"insect"`
	BladeTrap  string `yaml:"bladeTrap"`

	// Optional YAML list overriding actor templates
	Templates string `yaml:"templates"`
}

// Config is the game configuration
type Config struct {
	// Seed for random generation. 0 picks a time based seed per session.
	Seed    int64                    `yaml:"seed"`
	Dungeon generation.DungeonConfig `yaml:"dungeon"`
	Player  PlayerConfig             `yaml:"player"`
	Assets  AssetsConfig             `yaml:"assets"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Dungeon: generation.DefaultDungeonConfig(),
		Player: PlayerConfig{
			Speed:          300,
			Life:           100,
			DamageCooldown: 1,
		},
		Assets: AssetsConfig{
			Tileset:    "assets/tilesets/buch-tileset-48px-extruded.png",
			Characters: "assets/spritesheets/buch-characters-64px-extruded.png",
			Antifairy:  "assets/spritesheets/antifairy2.png",
			Insect:     "assets/spritesheets/insecto.png",
			BladeTrap:  "assets/spritesheets/bladeTrap.png",
			Templates:  "config/actors.yaml",
		},
	}
}

// Path returns the config path to read, honouring DUNGEON_CONFIG
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

// Load reads a YAML config file on top of the defaults. A missing file is
// not an error; the defaults are returned as they are.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the values can drive a session
func (c Config) Validate() error {
	d := c.Dungeon
	switch {
	case d.Width < d.Rooms.Width.Min+2 || d.Height < d.Rooms.Height.Min+2:
		return fmt.Errorf("%w: dungeon %dx%d cannot hold a room", ErrInvalid, d.Width, d.Height)
	case d.Rooms.Width.Min < 2*d.DoorPadding+1 || d.Rooms.Height.Min < 2*d.DoorPadding+1:
		return fmt.Errorf("%w: rooms too small for door padding %d", ErrInvalid, d.DoorPadding)
	case d.Rooms.Width.Empty() || d.Rooms.Height.Empty():
		return fmt.Errorf("%w: room size ranges %d-%d x %d-%d hold no valid size", ErrInvalid,
			d.Rooms.Width.Min, d.Rooms.Width.Max, d.Rooms.Height.Min, d.Rooms.Height.Max)
	case d.Rooms.MaxArea > 0 && d.Rooms.MaxArea < d.Rooms.SmallestArea():
		return fmt.Errorf("%w: maxArea %d is below the smallest room area %d", ErrInvalid, d.Rooms.MaxArea, d.Rooms.SmallestArea())
	case d.MaxRooms < 1:
		return fmt.Errorf("%w: maxRooms must be positive, got %d", ErrInvalid, d.MaxRooms)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalid)
	case c.Player.Life <= 0:
		return fmt.Errorf("%w: player life must be positive", ErrInvalid)
	case c.Player.DamageCooldown < 0:
		return fmt.Errorf("%w: damage cooldown cannot be negative", ErrInvalid)
	}
	return nil
}

// MaxRoomsLimit caps the room count typed into the map editor
const MaxRoomsLimit = 999

// ParseMaxRooms reads a room count typed by the player
func ParseMaxRooms(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("%w: enter a number of rooms", ErrInvalid)
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalid, input)
	}
	if n < 1 || n > MaxRoomsLimit {
		return 0, fmt.Errorf("%w: rooms must be between 1 and %d", ErrInvalid, MaxRoomsLimit)
	}
	return n, nil
}
