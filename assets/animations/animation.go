// Package animations plays sprite-sheet frame ranges at a fixed tick rate.
package animations

// Animation steps through frames First..Last. Every frame is held for
// SpeedInTps+1 ticks.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // stay on the last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
			a.frameCounter = -1
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Frames is the number of distinct frames played in one pass.
func (a *Animation) Frames() int {
	step := a.Step
	if step < 1 {
		step = 1
	}
	n := (a.Last-a.First)/step + 1
	if n < 1 {
		return 1
	}
	return n
}

// TicksPerFrame is how long each frame stays on screen.
func (a *Animation) TicksPerFrame() float32 {
	return a.SpeedInTps + 1
}

// Fraction is how far through the current pass playback is, in [0,1).
// A frozen animation reports its last tick.
func (a *Animation) Fraction() float64 {
	perFrame := float64(a.TicksPerFrame())
	total := float64(a.Frames()) * perFrame
	if total <= 0 {
		return 0
	}
	step := a.Step
	if step < 1 {
		step = 1
	}
	index := float64((a.frame - a.First) / step)
	inFrame := float64(a.SpeedInTps - a.frameCounter)
	if inFrame < 0 {
		inFrame = 0
	}
	if inFrame >= perFrame {
		inFrame = perFrame - 1
	}
	f := (index*perFrame + inFrame) / total
	if f >= 1 {
		f = (total - 1) / total
	}
	return f
}

// Done reports whether a freezing animation reached its end.
func (a *Animation) Done() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}
