package systems

import (
	"github.com/automoto/monorpg/archetypes"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock by one tick. Ebiten calls Update at a
// fixed rate, so each tick is 1/TPS seconds.
// Must run first in the system order.
func UpdateClock(e *ecs.ECS) {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	TickClock(e, 1/float64(tps))
}

// TickClock sets the elapsed time for this frame.
func TickClock(e *ecs.ECS, elapsed float64) {
	clock := GetOrCreateClock(e)
	clock.Elapsed = elapsed
	clock.Frame++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
	}
	return components.Clock.Get(entry)
}
