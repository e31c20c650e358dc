package systems

import (
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartSpawnFade restarts the fade in for an entity that was just reset.
func StartSpawnFade(entry *donburi.Entry) {
	if !entry.HasComponent(components.SpawnFade) {
		return
	}
	fade := components.SpawnFade.Get(entry)

	dur := float32(cfg.Player.SpawnFadeSeconds)
	if dur <= 0 {
		fade.Tween = nil
		fade.Alpha = 1
		return
	}
	fade.Tween = gween.New(0, 1, dur, ease.OutQuad)
	fade.Alpha = 0
}

// UpdateSpawnFade advances running fades.
func UpdateSpawnFade(e *ecs.ECS) {
	elapsed := float32(GetOrCreateClock(e).Elapsed)
	components.SpawnFade.Each(e.World, func(entry *donburi.Entry) {
		fade := components.SpawnFade.Get(entry)
		if fade.Tween == nil {
			return
		}
		alpha, done := fade.Tween.Update(elapsed)
		fade.Alpha = alpha
		if done {
			fade.Alpha = 1
			fade.Tween = nil
		}
	})
}
