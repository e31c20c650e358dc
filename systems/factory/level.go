package factory

import (
	"github.com/automoto/monorpg/archetypes"
	"github.com/automoto/monorpg/assets"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the level at levelPath. The world bounds are the
// viewport size, not the map size.
func CreateLevel(ecs *ecs.ECS, loader *assets.LevelLoader, levelPath string) (*donburi.Entry, error) {
	lvl, err := loader.LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: lvl,
	})
	components.WorldBounds.SetValue(level, components.WorldBoundsData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	})

	return level, nil
}
