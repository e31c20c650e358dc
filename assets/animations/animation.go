package animations

// Animation steps through the frames of a strip on a fixed frame time.
type Animation struct {
	FrameCount int
	FrameTime  float64 // seconds per frame
	Looping    bool
	Looped     bool // set once a looping animation wraps or a one-shot reaches its last frame

	time  float64
	frame int
}

// Update advances the animation by elapsed seconds.
func (a *Animation) Update(elapsed float64) {
	if a.FrameCount <= 1 || a.FrameTime <= 0 || elapsed <= 0 {
		return
	}

	a.time += elapsed
	for a.time > a.FrameTime {
		a.time -= a.FrameTime
		if a.Looping {
			a.frame++
			if a.frame >= a.FrameCount {
				a.frame = 0
				a.Looped = true
			}
		} else {
			// Stay on last frame
			a.frame++
			if a.frame >= a.FrameCount-1 {
				a.frame = a.FrameCount - 1
				a.Looped = true
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.time = 0
	a.Looped = false
}

func NewAnimation(frameCount int, frameTime float64, looping bool) *Animation {
	return &Animation{
		FrameCount: frameCount,
		FrameTime:  frameTime,
		Looping:    looping,
	}
}
