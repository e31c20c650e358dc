package components

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Facing is the horizontal direction the sprite is drawn in.
type Facing int

const (
	FacingLeft  Facing = iota // sprite default, drawn unmirrored
	FacingRight               // drawn mirrored
)

func (f Facing) String() string {
	if f == FacingRight {
		return "right"
	}
	return "left"
}

// PlayerData is the state of a keyboard-controlled player.
type PlayerData struct {
	Position Vector // top-left of the frame, whole pixels after every step
	Velocity Vector // units per second

	IsAlive        bool
	Celebrating    bool
	RequestingJump bool    // latched from input, consumed the same frame
	Movement       float64 // -1, 0 or 1

	LocalBounds image.Rectangle // collision footprint inside the frame
	Facing      Facing

	ColorName string
	Color     color.RGBA

	SpawnX, SpawnY float64 // where a respawn puts the player
}

var Player = donburi.NewComponentType[PlayerData]()

// IsFalling reports whether the player has any vertical speed.
func (p *PlayerData) IsFalling() bool {
	return p.Velocity.Y != 0
}

// CanMoveUp reports whether the player is below the top of the world.
func (p *PlayerData) CanMoveUp() bool {
	return p.Position.Y > 0
}

// CanMoveDown reports whether the footprint is above the bottom of the world.
func (p *PlayerData) CanMoveDown(bounds WorldBoundsData) bool {
	return p.Position.Y+float64(p.LocalBounds.Dy()) < bounds.Height
}

// CanMoveLeft reports whether the player is right of the world's left edge.
func (p *PlayerData) CanMoveLeft() bool {
	return p.Position.X > 0
}

// CanMoveRight reports whether the footprint is left of the world's right edge.
func (p *PlayerData) CanMoveRight(bounds WorldBoundsData) bool {
	return p.Position.X+float64(p.LocalBounds.Dx()) < bounds.Width
}

// UpdateFacing turns the sprite toward the direction of travel. A stationary
// player keeps its previous facing.
func (p *PlayerData) UpdateFacing() {
	if p.Velocity.X > 0 {
		p.Facing = FacingRight
	} else if p.Velocity.X < 0 {
		p.Facing = FacingLeft
	}
}

// FootprintFromFrame derives the collision rectangle from the idle frame:
// a horizontally centred slice widthRatio of the frame wide, as tall as the
// texture and anchored to the bottom of the frame.
func FootprintFromFrame(frameWidth, frameHeight, textureHeight int, widthRatio float64) image.Rectangle {
	width := int(float64(frameWidth) * widthRatio)
	left := (frameWidth - width) / 2
	top := frameHeight - textureHeight
	return image.Rect(left, top, left+width, top+textureHeight)
}
