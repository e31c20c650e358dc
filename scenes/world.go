package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/monorpg/assets"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/logger"
	"github.com/automoto/monorpg/systems"
	"github.com/automoto/monorpg/systems/factory"
	"github.com/automoto/monorpg/tags"
	"github.com/automoto/monorpg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type PlatformerScene struct {
	ecs     *ecs.ECS
	reloads <-chan *cfg.Settings
	sheets  factory.StripLoader
	levels  *assets.LevelLoader
	tuning  *ui.TuningUI
}

// NewPlatformerScene builds the world from the configured level. Missing
// animation strips or a broken level are returned as errors.
func NewPlatformerScene() (*PlatformerScene, error) {
	return NewPlatformerSceneWithLoaders(assets.NewSheetLoader(), assets.NewLevelLoader())
}

// NewPlatformerSceneWithLoaders is NewPlatformerScene with explicit asset sources.
func NewPlatformerSceneWithLoaders(sheets factory.StripLoader, levels *assets.LevelLoader) (*PlatformerScene, error) {
	ps := &PlatformerScene{sheets: sheets, levels: levels}
	if err := ps.configure(); err != nil {
		return nil, err
	}
	return ps, nil
}

// WatchTuning makes the scene apply settings received on ch between frames.
func (ps *PlatformerScene) WatchTuning(ch <-chan *cfg.Settings) {
	ps.reloads = ch
}

// ECS exposes the scene's world, mainly for tests.
func (ps *PlatformerScene) ECS() *ecs.ECS {
	return ps.ecs
}

func (ps *PlatformerScene) Update() {
	ps.applyTuning()
	ps.ecs.Update()

	if systems.GetOrCreateSettings(ps.ecs).Debug {
		if entry, ok := tags.Player.First(ps.ecs.World); ok {
			ps.tuning.UpdateUI(components.Player.Get(entry), components.Animation.Get(entry))
		}
		ps.tuning.UI.Update()
	}
}

func (ps *PlatformerScene) applyTuning() {
	for {
		select {
		case s, ok := <-ps.reloads:
			if !ok {
				ps.reloads = nil
				return
			}
			cfg.Apply(s)
			systems.SetWorldBounds(ps.ecs, float64(cfg.C.Width), float64(cfg.C.Height))
			logger.Info("tuning reloaded",
				zap.Float64("moveAccel", s.Player.MoveAccel),
				zap.Float64("gravity", s.Player.GravityAccel),
			)
		default:
			return
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.GetOrCreateSettings(ps.ecs).Debug {
		ps.tuning.UI.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateFootprints)
	ecs.AddSystem(systems.UpdateSpawnFade)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = ecs

	tuning, err := ui.NewTuningUI()
	if err != nil {
		return err
	}
	ps.tuning = tuning

	// Create the level entity and load level data FIRST.
	level, err := factory.CreateLevel(ps.ecs, ps.levels, cfg.C.Level)
	if err != nil {
		return fmt.Errorf("loading level: %w", err)
	}
	lvl := components.Level.Get(level).CurrentLevel

	factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height, 16, 16)

	// Spawns are sorted left to right; the keyboard drives the first one
	spawn := lvl.PlayerSpawns[0]
	if _, err := factory.CreatePlayer(ps.ecs, ps.sheets, spawn.Color, spawn.X, spawn.Y); err != nil {
		return err
	}

	logger.Info("scene ready",
		zap.String("level", lvl.Name),
		zap.Int("spawns", len(lvl.PlayerSpawns)),
		zap.String("color", spawn.Color),
	)
	return nil
}
