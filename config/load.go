package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk shape of the tuning file.
type Settings struct {
	Game      Config          `yaml:"game"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Debug     DebugConfig     `yaml:"debug"`
}

// Load builds settings with priority: defaults < file < flags.
// An empty path skips the file.
func Load(path string) (*Settings, error) {
	s := Defaults()

	if path != "" {
		if err := loadFromFile(s, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(s)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// loadFromFile merges a YAML file over the values already in s.
func loadFromFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, s)
}

// Validate rejects tunables the controller cannot run with.
func (s *Settings) Validate() error {
	if s.Game.Width <= 0 || s.Game.Height <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", s.Game.Width, s.Game.Height)
	}
	if s.Game.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", s.Game.TPS)
	}
	p := s.Player
	if p.MaxMoveSpeed < 0 || p.TerminalVelocity < 0 {
		return fmt.Errorf("speed limits must not be negative")
	}
	if p.GroundDrag < 0 || p.GroundDrag > 1 || p.AirDrag < 0 || p.AirDrag > 1 {
		return fmt.Errorf("drag must be within [0, 1]")
	}
	if p.BoundsWidthRatio <= 0 || p.BoundsWidthRatio > 1 {
		return fmt.Errorf("bounds width ratio %v must be within (0, 1]", p.BoundsWidthRatio)
	}
	if s.Animation.FrameTime <= 0 {
		return fmt.Errorf("animation frame time %v must be positive", s.Animation.FrameTime)
	}
	return nil
}

// Apply replaces the global configuration instances.
func Apply(s *Settings) {
	game := s.Game
	C = &game
	Player = s.Player
	Animation = s.Animation
	Debug = s.Debug
}

// Current returns a copy of the active global configuration.
func Current() *Settings {
	return &Settings{
		Game:      *C,
		Player:    Player,
		Animation: Animation,
		Debug:     Debug,
	}
}
