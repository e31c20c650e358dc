package scenes

import (
	"io/fs"
	"testing"

	"github.com/automoto/monorpg/assets"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/systems"
	"github.com/automoto/monorpg/tags"
	"github.com/yohamta/donburi"
)

func TestNewPlatformerScene(t *testing.T) {
	ps, err := NewPlatformerScene()
	if err != nil {
		t.Fatal(err)
	}

	entry, ok := tags.Player.First(ps.ECS().World)
	if !ok {
		t.Fatal("expected a player entity")
	}
	p := components.Player.Get(entry)
	if p.Position != (components.Vector{X: 96, Y: 120}) {
		t.Errorf("expected player at the level spawn, got %+v", p.Position)
	}
	if p.ColorName != "royalblue" {
		t.Errorf("expected royalblue, got %s", p.ColorName)
	}
	if systems.GetSpace(ps.ECS()) == nil {
		t.Error("expected a collision space")
	}
}

func TestSceneFallsToFloor(t *testing.T) {
	ps, err := NewPlatformerScene()
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 120; i++ {
		ps.Update()
	}

	entry, _ := tags.Player.First(ps.ECS().World)
	p := components.Player.Get(entry)
	if p.CanMoveDown(systems.GetWorldBounds(ps.ECS())) {
		t.Errorf("expected the player to reach the floor, at %+v", p.Position)
	}
	if p.Velocity.Y != 0 {
		t.Errorf("expected to be at rest on the floor, vy %v", p.Velocity.Y)
	}
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func TestSceneMissingStripFails(t *testing.T) {
	empty := assets.NewSheetLoaderFS(emptyFS{})
	if _, err := NewPlatformerSceneWithLoaders(empty, assets.NewLevelLoader()); err == nil {
		t.Fatal("expected scene creation to fail without strips")
	}
}

func TestSceneAppliesTuning(t *testing.T) {
	defer cfg.Apply(cfg.Defaults())

	ps, err := NewPlatformerScene()
	if err != nil {
		t.Fatal(err)
	}

	ch := make(chan *cfg.Settings, 1)
	ps.WatchTuning(ch)

	s := cfg.Defaults()
	s.Player.GravityAccel = 0
	ch <- s
	close(ch)
	ps.Update()

	if cfg.Player.GravityAccel != 0 {
		t.Errorf("expected tuning to be applied, gravity %v", cfg.Player.GravityAccel)
	}

	var entry *donburi.Entry
	entry, _ = tags.Player.First(ps.ECS().World)
	if v := components.Player.Get(entry).Velocity.Y; v != 0 {
		t.Errorf("expected no gravity after reload, vy %v", v)
	}
}

func TestSceneReloadMovesFloor(t *testing.T) {
	defer cfg.Apply(cfg.Defaults())

	ps, err := NewPlatformerScene()
	if err != nil {
		t.Fatal(err)
	}

	ch := make(chan *cfg.Settings, 1)
	ps.WatchTuning(ch)

	s := cfg.Defaults()
	s.Game.Height = 200
	ch <- s
	close(ch)

	for i := 0; i < 120; i++ {
		ps.Update()
	}

	if b := systems.GetWorldBounds(ps.ECS()); b.Width != 640 || b.Height != 200 {
		t.Fatalf("expected 640x200 world after reload, got %+v", b)
	}

	entry, _ := tags.Player.First(ps.ECS().World)
	p := components.Player.Get(entry)
	// Landing can overshoot by at most one step
	if bottom := p.Position.Y + float64(p.LocalBounds.Dy()); bottom < 200 || bottom > 220 || p.Velocity.Y != 0 {
		t.Errorf("expected the player to rest on the new floor, bottom at %v vy %v", bottom, p.Velocity.Y)
	}

	for _, obj := range systems.GetSpace(ps.ECS()).Objects() {
		if obj.HasTags(tags.ResolvBounds) && obj.H != 200 {
			t.Errorf("expected the bounds object to shrink, height %v", obj.H)
		}
	}
}
