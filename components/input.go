package components

import (
	cfg "github.com/automoto/monorpg/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// KeySnapshot records which bound actions were held when it was taken.
// It is a value type, so a snapshot handed to the player cannot change.
type KeySnapshot [cfg.ActionCount]bool

// NewKeySnapshot returns a snapshot with the given actions held.
func NewKeySnapshot(held ...cfg.ActionID) KeySnapshot {
	var s KeySnapshot
	for _, id := range held {
		s[id] = true
	}
	return s
}

// IsDown reports whether the action was held.
func (s KeySnapshot) IsDown(id cfg.ActionID) bool {
	if id < 0 || id >= cfg.ActionCount {
		return false
	}
	return s[id]
}

// InputData stores the current and previous frame's snapshot.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  KeySnapshot
	Previous KeySnapshot
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current.IsDown(id)
	prev := in.Previous.IsDown(id)
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
