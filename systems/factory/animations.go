package factory

import (
	"fmt"
	"path"

	"github.com/automoto/monorpg/assets"
	"github.com/automoto/monorpg/assets/animations"
	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
)

// StripLoader resolves a strip name such as "player/idle".
type StripLoader interface {
	Load(name string) (*assets.Strip, error)
}

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player") which maps to a set of animation definitions in config.
// Every strip must load; the first failure is returned.
func GenerateAnimations(loader StripLoader, key string) (*components.AnimationData, error) {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("no animation definitions for %q", key)
	}

	animData := &components.AnimationData{
		CurrentSheet: cfg.StateNone,
		Strips:       make(map[cfg.StateID]*assets.Strip, len(defs)),
		Animations:   make(map[cfg.StateID]*animations.Animation, len(defs)),
	}

	for state, def := range defs {
		name := path.Join(key, state.String())
		strip, err := loader.Load(name)
		if err != nil {
			return nil, fmt.Errorf("loading %s animation: %w", state, err)
		}
		animData.Strips[state] = strip

		frameTime := def.FrameTime
		if frameTime <= 0 {
			frameTime = cfg.Animation.FrameTime
		}
		animData.Animations[state] = animations.NewAnimation(strip.FrameCount(), frameTime, def.Looping)
	}

	return animData, nil
}
