package systems

import (
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = SnapshotKeys(ebiten.IsKeyPressed)
}

// SnapshotKeys builds a snapshot from the configured bindings. isDown is
// ebiten.IsKeyPressed in the game and a fake in tests.
func SnapshotKeys(isDown func(ebiten.Key) bool) components.KeySnapshot {
	var snap components.KeySnapshot
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if isDown(key) {
				snap[actionID] = true
				break
			}
		}
	}
	return snap
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) components.ActionState {
	return getOrCreateInput(ecs).Action(id)
}
