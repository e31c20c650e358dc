package components

import (
	"github.com/automoto/monorpg/assets"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FootprintData links an entity to its collision object in the space.
type FootprintData struct {
	*resolv.Object
}

var Footprint = donburi.NewComponentType[FootprintData]()

var Space = donburi.NewComponentType[resolv.Space]()

// WorldBoundsData holds the extents the player is kept inside, normally the
// viewport size.
type WorldBoundsData struct {
	Width, Height float64
}

var WorldBounds = donburi.NewComponentType[WorldBoundsData]()

type LevelData struct {
	CurrentLevel *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()

// ClockData carries the frame delta handed to every update system.
type ClockData struct {
	Elapsed float64 // seconds since the previous update
	Frame   uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// SettingsData holds user toggles that survive restarts.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// SpawnFadeData fades a sprite in after it is reset.
type SpawnFadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var SpawnFade = donburi.NewComponentType[SpawnFadeData]()
