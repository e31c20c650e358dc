package factory

import (
	"github.com/automoto/monorpg/archetypes"
	"github.com/automoto/monorpg/components"
	"github.com/automoto/monorpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space with an outline object marking
// the world edges.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)

	edge := resolv.NewObject(0, 0, float64(width), float64(height), tags.ResolvBounds)
	spaceData.Add(edge)

	components.Space.Set(space, spaceData)
	return space
}
