package phaseclock

import (
	"github.com/tanema/gween"
)

// Timeline is a virtual phase clock. Progress follows a 0 to 1 tween over
// the clip duration; a finished one-shot clip hands over to the idle clip.
type Timeline struct {
	idle     Clip
	clip     Clip
	tween    *gween.Tween
	progress float64
	cues     cueCursor
}

func NewTimeline(idle Clip) *Timeline {
	idle.Loop = true
	t := &Timeline{idle: idle}
	t.Play(idle)
	return t
}

// Play starts clip from the beginning, replacing whatever was playing.
func (t *Timeline) Play(clip Clip) {
	t.clip = clip
	t.tween = gween.New(0, 1, float32(clip.Duration), clip.easing())
	t.progress = 0
	t.cues.reset(clip.sortedCues())
}

func (t *Timeline) Advance(dt float64) []Event {
	if dt <= 0 {
		return nil
	}
	v, done := t.tween.Update(float32(dt))
	t.progress = float64(v)

	var out []Event
	out = t.cues.crossed(t.progress, out)
	if !done {
		return out
	}

	out = t.cues.rest(out)
	if t.clip.Loop {
		t.tween.Reset()
		t.progress = 0
		t.cues.rewind()
		return out
	}
	t.Play(t.idle)
	return out
}

func (t *Timeline) Clip() Clip { return t.clip }

func (t *Timeline) AttackTagActive() bool { return t.clip.Attack }

func (t *Timeline) AttackProgress() float64 { return below1(t.progress) }
