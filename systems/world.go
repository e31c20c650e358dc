package systems

import (
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// GetWorldBounds returns the extents players are kept inside. Without a
// level it falls back to the configured screen size.
func GetWorldBounds(e *ecs.ECS) components.WorldBoundsData {
	if entry, ok := components.WorldBounds.First(e.World); ok {
		return *components.WorldBounds.Get(entry)
	}
	return components.WorldBoundsData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	}
}

// SetWorldBounds updates the world extents, for example after a layout change.
func SetWorldBounds(e *ecs.ECS, width, height float64) {
	entry, ok := components.WorldBounds.First(e.World)
	if !ok {
		return
	}
	components.WorldBounds.SetValue(entry, components.WorldBoundsData{Width: width, Height: height})

	if space := GetSpace(e); space != nil {
		for _, obj := range space.Objects() {
			if obj.HasTags(tags.ResolvBounds) {
				obj.W, obj.H = width, height
				obj.Update()
			}
		}
	}
}

// GetSpace returns the collision space, or nil before one is created.
func GetSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
