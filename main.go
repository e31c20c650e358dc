package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/fonts"
	"github.com/automoto/monorpg/logger"
	"github.com/automoto/monorpg/scenes"
	"github.com/automoto/monorpg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	config.ParseFlags()

	settings, err := config.Load(config.ConfigPath())
	if err != nil {
		logger.Init("info", "")
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	config.Apply(settings)

	logger.Init(config.Debug.LogLevel, config.Debug.LogFile)
	defer logger.Sync()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("loading fonts", zap.Error(err))
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	scene, err := scenes.NewPlatformerScene()
	if err != nil {
		logger.Fatal("creating scene", zap.Error(err))
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("monorpg"); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettings(scene.ECS(), saved)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if path := config.ConfigPath(); path != "" {
		updates, errs, err := config.Watch(ctx, path)
		if err != nil {
			logger.Warn("tuning hot reload disabled", zap.String("path", path), zap.Error(err))
		} else {
			scene.WatchTuning(updates)
			go func() {
				for err := range errs {
					logger.Warn("tuning reload failed", zap.Error(err))
				}
			}()
		}
	}

	logger.Info("starting",
		zap.String("title", config.C.Title),
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.String("level", config.C.Level),
	)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
