package systems

import (
	"image"
	"image/color"

	"github.com/automoto/monorpg/assets"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Pose is everything needed to draw one player frame.
type Pose struct {
	Position components.Vector // top-left of the frame
	Flip     bool              // mirror horizontally
	Facing   components.Facing
	State    cfg.StateID
	Strip    *assets.Strip
	Frame    int
	Source   image.Rectangle
	Tint     color.RGBA
	Alpha    float32
}

// PoseSink receives poses to draw.
type PoseSink interface {
	DrawPose(Pose)
}

// DrawPlayer turns the player toward its direction of travel and hands the
// current frame to sink. Facing is the only state it changes.
func DrawPlayer(p *components.PlayerData, anim *components.AnimationData, alpha float32, sink PoseSink) {
	p.UpdateFacing()

	pose := Pose{
		Position: p.Position,
		Flip:     p.Facing == components.FacingRight,
		Facing:   p.Facing,
		State:    cfg.StateNone,
		Tint:     p.Color,
		Alpha:    alpha,
	}
	if anim != nil {
		pose.State = anim.CurrentSheet
		if strip := anim.CurrentStrip(); strip != nil {
			pose.Strip = strip
			pose.Frame = anim.CurrentAnimation.Frame()
			pose.Source = strip.FrameRect(pose.Frame)
		}
	}

	sink.DrawPose(pose)
}

// ScreenSink draws poses onto an ebiten image.
type ScreenSink struct {
	Screen *ebiten.Image
}

func (s ScreenSink) DrawPose(pose Pose) {
	if pose.Strip == nil {
		// No strip loaded, draw a placeholder block
		vector.FillRect(s.Screen, float32(pose.Position.X), float32(pose.Position.Y), 16, 16, pose.Tint, false)
		return
	}

	img := pose.Strip.Frame(pose.Frame)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	if pose.Flip {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(pose.Source.Dx()), 0)
	}
	drawOp.GeoM.Translate(pose.Position.X, pose.Position.Y)

	drawOp.ColorScale.ScaleWithColor(pose.Tint)
	drawOp.ColorScale.ScaleAlpha(pose.Alpha)

	s.Screen.DrawImage(img, drawOp)
}

// DrawPlayers is the renderer for every player entity.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	sink := ScreenSink{Screen: screen}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		alpha := float32(1)
		if entry.HasComponent(components.SpawnFade) {
			alpha = components.SpawnFade.Get(entry).Alpha
		}
		DrawPlayer(components.Player.Get(entry), components.Animation.Get(entry), alpha, sink)
	})
}

// DrawBackground clears the screen to the background colour.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
}
