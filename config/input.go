package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveLeft
	ActionMoveDown
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionToggleFullscreen
	ActionDebugKill
	ActionDebugCelebrate
	ActionDebugRespawn
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			// Up and down are bound but movement ignores them.
			ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeySpace}},

			ActionToggleDebug:      {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionToggleFullscreen: {Keys: []ebiten.Key{ebiten.KeyF11}},

			// Only honoured while the debug overlay is on
			ActionDebugKill:      {Keys: []ebiten.Key{ebiten.KeyK}},
			ActionDebugCelebrate: {Keys: []ebiten.Key{ebiten.KeyC}},
			ActionDebugRespawn:   {Keys: []ebiten.Key{ebiten.KeyR}},
		},
	}
}
