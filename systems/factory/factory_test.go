package factory

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/automoto/monorpg/assets"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/systems"
	"github.com/automoto/monorpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

func stripPNG(t *testing.T, frames, size int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, frames*size, size))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testSheets(t *testing.T, skip ...string) *assets.SheetLoader {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range []string{"idle", "run", "jump", "celebrate", "die"} {
		missing := false
		for _, s := range skip {
			if s == name {
				missing = true
			}
		}
		if !missing {
			fsys["images/player/"+name+".png"] = &fstest.MapFile{Data: stripPNG(t, 4, 50)}
		}
	}
	return assets.NewSheetLoaderFS(fsys)
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestGenerateAnimations(t *testing.T) {
	anim, err := GenerateAnimations(testSheets(t), "player")
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Strips) != 5 || len(anim.Animations) != 5 {
		t.Fatalf("expected 5 strips and animations, got %d and %d", len(anim.Strips), len(anim.Animations))
	}
	if anim.Animations[cfg.Running].FrameCount != 4 {
		t.Errorf("expected 4 run frames, got %d", anim.Animations[cfg.Running].FrameCount)
	}
	if !anim.Animations[cfg.Idle].Looping || anim.Animations[cfg.Jump].Looping {
		t.Error("idle should loop and jump should not")
	}
	if anim.CurrentAnimation != nil {
		t.Error("no animation should be playing yet")
	}
}

func TestGenerateAnimationsUnknownKey(t *testing.T) {
	if _, err := GenerateAnimations(testSheets(t), "guard"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestCreatePlayer(t *testing.T) {
	e := newTestECS()
	space := components.Space.Get(CreateSpace(e, 640, 360, 16, 16))

	entry, err := CreatePlayer(e, testSheets(t), "RoyalBlue", 96, 120)
	if err != nil {
		t.Fatal(err)
	}

	p := components.Player.Get(entry)
	if p.Position != (components.Vector{X: 96, Y: 120}) || p.Velocity != (components.Vector{}) {
		t.Errorf("unexpected spawn state %+v", *p)
	}
	if !p.IsAlive || p.Facing != components.FacingLeft {
		t.Errorf("expected alive and facing left, got %+v", *p)
	}
	if p.ColorName != "royalblue" || p.Color != colornames.Royalblue {
		t.Errorf("unexpected colour %s %v", p.ColorName, p.Color)
	}

	// 50px frame: width int(50*0.4) = 20, left (50-20)/2 = 15
	if want := image.Rect(15, 0, 35, 50); p.LocalBounds != want {
		t.Errorf("expected bounds %v, got %v", want, p.LocalBounds)
	}

	if components.Animation.Get(entry).CurrentSheet != cfg.Idle {
		t.Error("expected Idle after creation")
	}

	obj := components.Footprint.Get(entry).Object
	if obj.X != 111 || obj.Y != 120 || obj.W != 20 || obj.H != 50 {
		t.Errorf("unexpected footprint %v,%v %vx%v", obj.X, obj.Y, obj.W, obj.H)
	}
	found := false
	for _, o := range space.Objects() {
		if o == obj && o.HasTags(tags.ResolvPlayer) {
			found = true
		}
	}
	if !found {
		t.Error("footprint was not added to the space")
	}
}

func TestCreatePlayerMissingStrip(t *testing.T) {
	e := newTestECS()
	_, err := CreatePlayer(e, testSheets(t, "die"), "white", 0, 0)
	if !errors.Is(err, assets.ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
	if _, ok := tags.Player.First(e.World); ok {
		t.Error("no player should be created when a strip is missing")
	}
}

func TestCreatePlayerColourFallback(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "white"},
		{"not-a-colour", "white"},
		{" Gold ", "gold"},
	}
	for _, tt := range tests {
		entry, err := CreatePlayer(newTestECS(), testSheets(t), tt.in, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		p := components.Player.Get(entry)
		if p.ColorName != tt.want || p.Color != colornames.Map[tt.want] {
			t.Errorf("%q: expected %s, got %s %v", tt.in, tt.want, p.ColorName, p.Color)
		}
	}
}

func TestCreatedPlayerSteps(t *testing.T) {
	e := newTestECS()
	entry, err := CreatePlayer(e, testSheets(t), "white", 100, 310)
	if err != nil {
		t.Fatal(err)
	}

	systems.TickClock(e, 0.016)
	systems.UpdatePlayer(e)
	systems.UpdateFootprints(e)

	p := components.Player.Get(entry)
	// 310 + 50 = 360 is the floor of the default 640x360 world
	if p.Velocity.Y != 0 || p.Position.Y != 310 {
		t.Errorf("expected player to rest on the floor, got %+v", *p)
	}
}

func TestCreateSpace(t *testing.T) {
	e := newTestECS()
	space := components.Space.Get(CreateSpace(e, 640, 360, 16, 16))

	objs := space.Objects()
	if len(objs) != 1 || !objs[0].HasTags(tags.ResolvBounds) {
		t.Fatalf("expected a single bounds object, got %d", len(objs))
	}
	if objs[0].W != 640 || objs[0].H != 360 {
		t.Errorf("unexpected bounds %vx%v", objs[0].W, objs[0].H)
	}
}

func TestCreateLevel(t *testing.T) {
	e := newTestECS()
	entry, err := CreateLevel(e, assets.NewLevelLoader(), cfg.C.Level)
	if err != nil {
		t.Fatal(err)
	}

	lvl := components.Level.Get(entry).CurrentLevel
	if len(lvl.PlayerSpawns) == 0 {
		t.Fatal("expected player spawns")
	}
	b := components.WorldBounds.Get(entry)
	if b.Width != float64(cfg.C.Width) || b.Height != float64(cfg.C.Height) {
		t.Errorf("unexpected world bounds %+v", *b)
	}
}

func TestCreateLevelMissingFile(t *testing.T) {
	e := newTestECS()
	if _, err := CreateLevel(e, assets.NewLevelLoader(), "levels/nope.tmx"); err == nil {
		t.Error("expected error for missing level")
	}
}
