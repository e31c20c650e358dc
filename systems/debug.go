package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/fonts"
	"github.com/automoto/monorpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if space := GetSpace(ecs); space != nil {
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := cfg.Cyan
			if obj.HasTags(tags.ResolvBounds) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Yellow
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	if !fonts.Loaded(fonts.Small) {
		return
	}
	face := text.NewGoXFace(fonts.Small.Get())
	line := 4.0
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4, line)
		op.ColorScale.ScaleWithColor(cfg.White)
		text.Draw(screen, DebugLine(e), face, op)
		line += 10
	})
}

// DebugLine summarises a player for the overlay.
func DebugLine(e *donburi.Entry) string {
	p := components.Player.Get(e)
	state := cfg.StateNone
	if e.HasComponent(components.Animation) {
		state = components.Animation.Get(e).CurrentSheet
	}
	return fmt.Sprintf("%s pos=(%.0f,%.0f) vel=(%.1f,%.1f) %s facing=%s alive=%t",
		p.ColorName, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, state, p.Facing, p.IsAlive)
}
