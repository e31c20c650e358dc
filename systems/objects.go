package systems

import (
	"github.com/automoto/monorpg/components"
	"github.com/automoto/monorpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFootprints moves each player's collision object onto its footprint.
// Must run after UpdatePlayer.
func UpdateFootprints(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		syncFootprint(e)
	})
}

func syncFootprint(e *donburi.Entry) {
	if !e.HasComponent(components.Footprint) {
		return
	}
	obj := components.Footprint.Get(e).Object
	if obj == nil {
		return
	}
	player := components.Player.Get(e)

	obj.X = player.Position.X + float64(player.LocalBounds.Min.X)
	obj.Y = player.Position.Y + float64(player.LocalBounds.Min.Y)
	obj.W = float64(player.LocalBounds.Dx())
	obj.H = float64(player.LocalBounds.Dy())
	obj.Update()
}
