package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/automoto/monorpg/logger"
	"github.com/automoto/monorpg/shared/gamemath"
	"github.com/automoto/monorpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidElapsed is returned when a step is asked to run backwards in time.
var ErrInvalidElapsed = errors.New("elapsed time must be non-negative")

// UpdatePlayer steps every player by the clock's elapsed time using this
// frame's input snapshot. Must run after UpdateInput and UpdateClock.
func UpdatePlayer(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	input := getOrCreateInput(e)
	bounds := GetWorldBounds(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		anim := components.Animation.Get(entry)

		keys := input.Current
		if !player.IsAlive {
			// Dead players still fall but ignore the keyboard
			keys = components.KeySnapshot{}
		}

		if err := StepPlayer(player, anim, keys, clock.Elapsed, bounds, cfg.Player); err != nil {
			logger.Warn("skipping player step", zap.Error(err))
			return
		}

		if logger.Enabled(zapcore.DebugLevel) {
			logger.Debug("player step",
				zap.Uint64("frame", clock.Frame),
				zap.Float64("y", player.Position.Y),
				zap.Int("boundsHeight", player.LocalBounds.Dy()),
			)
		}
	})
}

// StepPlayer advances one player by elapsed seconds. The animation is chosen
// from last frame's velocity before the new input is applied, so a player
// that just stopped shows Idle one frame late. A zero step still records
// input but skips physics.
func StepPlayer(p *components.PlayerData, anim *components.AnimationData, keys components.KeySnapshot, elapsed float64, bounds components.WorldBoundsData, tune cfg.PlayerConfig) error {
	if elapsed < 0 || math.IsNaN(elapsed) {
		return fmt.Errorf("%w: got %v", ErrInvalidElapsed, elapsed)
	}

	selectGroundAnimation(p, anim, tune)
	processInput(p, keys)
	if elapsed == 0 {
		// A zero step keeps position and velocity exactly as they were
		return nil
	}
	ApplyPhysics(p, anim, elapsed, bounds, tune)
	return nil
}

func selectGroundAnimation(p *components.PlayerData, anim *components.AnimationData, tune cfg.PlayerConfig) {
	if anim == nil || !p.IsAlive || p.Celebrating || p.IsFalling() {
		return
	}
	if math.Abs(p.Velocity.X) > tune.RunAnimationThreshold {
		anim.SetAnimation(cfg.Running)
	} else {
		anim.SetAnimation(cfg.Idle)
	}
}

// processInput turns held keys into movement intent. Left wins when both
// directions are held.
func processInput(p *components.PlayerData, keys components.KeySnapshot) {
	switch {
	case keys.IsDown(cfg.ActionMoveLeft):
		p.Movement = -1
	case keys.IsDown(cfg.ActionMoveRight):
		p.Movement = 1
	default:
		p.Movement = 0
	}

	p.RequestingJump = keys.IsDown(cfg.ActionJump)
}

// ApplyPhysics integrates velocity and position for one step. Position is
// snapped to whole pixels afterwards.
func ApplyPhysics(p *components.PlayerData, anim *components.AnimationData, elapsed float64, bounds components.WorldBoundsData, tune cfg.PlayerConfig) {
	p.Velocity.X += p.Movement * tune.MoveAccel * elapsed

	if p.CanMoveDown(bounds) {
		p.Velocity.Y = gamemath.ClampSpeed(p.Velocity.Y+tune.GravityAccel*elapsed, tune.TerminalVelocity)
	} else {
		p.Velocity.Y = 0
	}

	if p.RequestingJump && !p.IsFalling() {
		p.Velocity.Y = tune.JumpLaunchVelocity
		if anim != nil {
			anim.SetAnimation(cfg.Jump)
		}
	}

	if p.IsFalling() {
		p.Velocity.X = gamemath.ApplyDrag(p.Velocity.X, tune.AirDrag)
	} else {
		p.Velocity.X = gamemath.ApplyDrag(p.Velocity.X, tune.GroundDrag)
	}
	p.Velocity.X = gamemath.ClampSpeed(p.Velocity.X, tune.MaxMoveSpeed)

	p.Position.X = gamemath.Snap(p.Position.X + p.Velocity.X*elapsed)
	p.Position.Y = gamemath.Snap(p.Position.Y + p.Velocity.Y*elapsed)
}

// ResetPlayer puts the player back at (x, y) at rest, alive and idle.
func ResetPlayer(p *components.PlayerData, anim *components.AnimationData, x, y float64) {
	p.Position = components.Vector{X: x, Y: y}
	p.Velocity = components.Vector{}
	p.IsAlive = true
	p.Celebrating = false
	p.RequestingJump = false
	p.Movement = 0
	if anim != nil {
		anim.SetAnimation(cfg.Idle)
	}
}

// KillPlayer marks the player dead and plays the death animation.
func KillPlayer(p *components.PlayerData, anim *components.AnimationData) {
	p.IsAlive = false
	p.Celebrating = false
	if anim != nil {
		anim.SetAnimation(cfg.Die)
	}
}

// CelebratePlayer plays the celebration. It holds until the next reset.
func CelebratePlayer(p *components.PlayerData, anim *components.AnimationData) {
	if !p.IsAlive {
		return
	}
	p.Celebrating = true
	if anim != nil {
		anim.SetAnimation(cfg.Celebrate)
	}
}

// RespawnPlayer resets a player entity to its spawn point and restarts the
// fade in.
func RespawnPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	ResetPlayer(player, components.Animation.Get(entry), player.SpawnX, player.SpawnY)
	StartSpawnFade(entry)
	syncFootprint(entry)

	logger.Info("player respawned",
		zap.String("color", player.ColorName),
		zap.Float64("x", player.SpawnX),
		zap.Float64("y", player.SpawnY),
	)
}
