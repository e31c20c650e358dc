package factory

import (
	"fmt"
	"strings"

	"github.com/automoto/monorpg/archetypes"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/logger"
	"github.com/automoto/monorpg/systems"
	"github.com/automoto/monorpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const defaultPlayerColor = "white"

// CreatePlayer loads the player's strips and spawns it at (x, y), tinted
// with the named colour. If any strip fails to load no entity is created.
func CreatePlayer(ecs *ecs.ECS, loader StripLoader, colorName string, x, y float64) (*donburi.Entry, error) {
	animData, err := GenerateAnimations(loader, "player")
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}

	colorName = strings.ToLower(strings.TrimSpace(colorName))
	if colorName == "" {
		colorName = defaultPlayerColor
	}
	tint, ok := colornames.Map[colorName]
	if !ok {
		logger.Warn("unknown player colour, using white", zap.String("color", colorName))
		colorName = defaultPlayerColor
		tint = colornames.White
	}

	idle := animData.Strips[cfg.Idle]
	bounds := components.FootprintFromFrame(idle.FrameWidth(), idle.FrameHeight(), idle.Height(), cfg.Player.BoundsWidthRatio)

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x+float64(bounds.Min.X), y+float64(bounds.Min.Y), float64(bounds.Dx()), float64(bounds.Dy()), tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(bounds.Dx()), float64(bounds.Dy())))
	obj.Data = player
	components.Footprint.SetValue(player, components.FootprintData{Object: obj})
	if space := systems.GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		LocalBounds: bounds,
		Facing:      components.FacingLeft,
		ColorName:   colorName,
		Color:       tint,
		SpawnX:      x,
		SpawnY:      y,
	})
	components.Animation.Set(player, animData)
	components.SpawnFade.SetValue(player, components.SpawnFadeData{Alpha: 1})

	systems.RespawnPlayer(player)

	return player, nil
}
