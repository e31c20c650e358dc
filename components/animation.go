package components

import (
	"github.com/automoto/monorpg/assets"
	"github.com/automoto/monorpg/assets/animations"
	"github.com/automoto/monorpg/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Strips           map[config.StateID]*assets.Strip
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to the animation for state. Asking for the animation
// that is already playing leaves it running; switching restarts from frame 0.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
		}
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

// CurrentStrip returns the strip of the playing animation, or nil.
func (a *AnimationData) CurrentStrip() *assets.Strip {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.Strips[a.CurrentSheet]
}

var Animation = donburi.NewComponentType[AnimationData]()
