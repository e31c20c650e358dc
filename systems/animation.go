package systems

import (
	"github.com/automoto/monorpg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every playing animation by the frame time.
func UpdateAnimations(e *ecs.ECS) {
	elapsed := GetOrCreateClock(e).Elapsed
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(elapsed)
		}
	})
}
