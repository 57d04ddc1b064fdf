package phaseclock

import (
	"math"

	"github.com/automoto/doomerang-melee/assets/animations"
)

// Frames is a phase clock that follows a sprite frame animation ticking at
// a fixed rate. Progress is the fraction of frames shown so far.
type Frames struct {
	tps  float64
	idle Clip
	clip Clip
	anim *animations.Animation
	acc  float64
	cues cueCursor
}

// NewFrames returns a clock stepping tps times per second.
func NewFrames(tps int, idle Clip) *Frames {
	if tps < 1 {
		tps = 60
	}
	idle.Loop = true
	f := &Frames{tps: float64(tps), idle: idle}
	f.Play(idle)
	return f
}

func (f *Frames) Play(clip Clip) {
	frames := clip.Frames
	if frames < 1 {
		frames = 1
	}
	ticks := math.Round(clip.Duration * f.tps / float64(frames))
	if ticks < 1 {
		ticks = 1
	}

	f.clip = clip
	f.anim = animations.NewAnimation(0, frames-1, 1, float32(ticks-1))
	f.anim.FreezeOnComplete = !clip.Loop
	f.acc = 0
	f.cues.reset(clip.sortedCues())
}

func (f *Frames) Advance(dt float64) []Event {
	if dt <= 0 {
		return nil
	}
	var out []Event
	f.acc += dt * f.tps
	for f.acc >= 1 {
		f.acc--
		f.anim.Update()

		if f.anim.Done() {
			out = f.cues.rest(out)
			rem := f.acc
			f.Play(f.idle)
			f.acc = rem
			continue
		}
		if f.anim.Looped {
			f.anim.Looped = false
			out = f.cues.rest(out)
			f.cues.rewind()
		}
		out = f.cues.crossed(f.anim.Fraction(), out)
	}
	return out
}

func (f *Frames) Clip() Clip { return f.clip }

// Frame is the sprite frame to draw.
func (f *Frames) Frame() int { return f.anim.Frame() }

func (f *Frames) AttackTagActive() bool { return f.clip.Attack }

func (f *Frames) AttackProgress() float64 { return below1(f.anim.Fraction()) }
