package config

type AnimationDef struct {
	FrameTime float64 // seconds per frame, 0 uses Animation.FrameTime
	Looping   bool
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:      {FrameTime: 0.1, Looping: true},
		Running:   {FrameTime: 0.1, Looping: true},
		Jump:      {FrameTime: 0.1, Looping: false},
		Celebrate: {FrameTime: 0.1, Looping: false},
		Die:       {FrameTime: 0.1, Looping: false},
	},
}
