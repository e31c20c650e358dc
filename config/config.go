package config

import "image/color"

// PlayerConfig contains the player controller tunables.
type PlayerConfig struct {
	// Horizontal movement
	MoveAccel    float64 `yaml:"move_accel"`
	MaxMoveSpeed float64 `yaml:"max_move_speed"`
	GroundDrag   float64 `yaml:"ground_drag"`
	AirDrag      float64 `yaml:"air_drag"`

	// Vertical movement
	JumpLaunchVelocity float64 `yaml:"jump_launch_velocity"` // negative is up
	GravityAccel       float64 `yaml:"gravity_accel"`
	TerminalVelocity   float64 `yaml:"terminal_velocity"`

	// Animation
	RunAnimationThreshold float64 `yaml:"run_animation_threshold"` // |vx| above this plays the run cycle

	// Collision footprint as a fraction of the idle frame width
	BoundsWidthRatio float64 `yaml:"bounds_width_ratio"`

	// Seconds the sprite takes to fade in after a reset
	SpawnFadeSeconds float64 `yaml:"spawn_fade_seconds"`
}

// AnimationConfig contains animation playback defaults.
type AnimationConfig struct {
	FrameTime float64 `yaml:"frame_time"` // seconds per frame
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool   `yaml:"overlay"`   // Draw collision footprints and the HUD readout
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	LogFile  string `yaml:"log_file"`  // Empty disables file logging
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
	Level  string `yaml:"level"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Animation AnimationConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Background   = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Apply(Defaults())
}

// Defaults returns the built-in configuration.
func Defaults() *Settings {
	return &Settings{
		Game: Config{
			Width:  640,
			Height: 360,
			TPS:    60,
			Title:  "MonoRPG",
			Level:  "levels/level1.tmx",
		},
		Player: DefaultPlayer(),
		Animation: AnimationConfig{
			FrameTime: 0.1,
		},
		// Debug Config (defaults, can be overridden by CLI flags)
		Debug: DebugConfig{
			Overlay:  false,
			LogLevel: "info",
		},
	}
}

// DefaultPlayer returns the stock player tunables.
func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		MoveAccel:    20000.0,
		MaxMoveSpeed: 20000.0,
		GroundDrag:   0.48,
		AirDrag:      0.44,

		JumpLaunchVelocity: -2000.0,
		GravityAccel:       3400.0,
		TerminalVelocity:   550.0,

		RunAnimationThreshold: 0.2,

		BoundsWidthRatio: 0.4,
		SpawnFadeSeconds: 0.3,
	}
}
