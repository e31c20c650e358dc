package systems

import (
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/logger"
	"github.com/automoto/monorpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// setFullscreen is swapped out in tests.
var setFullscreen = ebiten.SetFullscreen

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies persisted toggles into the scene.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug || cfg.Debug.Overlay
	settings.Fullscreen = saved.Fullscreen
	setFullscreen(saved.Fullscreen)
}

// UpdateSettings handles the overlay and fullscreen toggles and, while the
// overlay is on, the kill/celebrate/respawn keys.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	changed := false

	if GetAction(e, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(e, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		setFullscreen(settings.Fullscreen)
		changed = true
	}
	if changed {
		logger.Debug("settings changed",
			zap.Bool("debug", settings.Debug),
			zap.Bool("fullscreen", settings.Fullscreen),
		)
		SaveCurrentSettings(settings)
	}

	if !settings.Debug {
		return
	}

	kill := GetAction(e, cfg.ActionDebugKill).JustPressed
	celebrate := GetAction(e, cfg.ActionDebugCelebrate).JustPressed
	respawn := GetAction(e, cfg.ActionDebugRespawn).JustPressed
	if !kill && !celebrate && !respawn {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		anim := components.Animation.Get(entry)
		switch {
		case respawn:
			RespawnPlayer(entry)
		case kill:
			KillPlayer(player, anim)
		case celebrate:
			CelebratePlayer(player, anim)
		}
	})
}
