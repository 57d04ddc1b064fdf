// Package phaseclock provides the animation progress oracle used by the
// combat core. A Timeline is a pure virtual clock driven by a tween; Frames
// follows a sprite frame animation. Both fire clip events at fixed fractions
// of playback so weapon windows follow the clip rather than the frame.
package phaseclock

import (
	"sort"

	"github.com/automoto/doomerang-melee/combat"
	"github.com/tanema/gween/ease"
)

// Event is a named point in a clip.
type Event string

const (
	StrikeStart Event = "strike_start"
	StrikeEnd   Event = "strike_end"
)

// Cue fires Event once playback reaches At, a fraction of the clip.
type Cue struct {
	At    float64
	Event Event
}

// Clip describes one piece of playback.
type Clip struct {
	Name     string
	Attack   bool    // tagged "attack" while it plays
	Duration float64 // seconds
	Loop     bool
	Frames   int // sprite frames, used by Frames only
	Ease     ease.TweenFunc
	Cues     []Cue
}

// AttackClip is a one-shot attack with a strike window between start and
// end.
func AttackClip(name string, duration, strikeStart, strikeEnd float64, frames int) Clip {
	return Clip{
		Name:     name,
		Attack:   true,
		Duration: duration,
		Frames:   frames,
		Cues: []Cue{
			{At: strikeStart, Event: StrikeStart},
			{At: strikeEnd, Event: StrikeEnd},
		},
	}
}

// IdleClip loops forever without cues.
func IdleClip(duration float64, frames int) Clip {
	return Clip{Name: "idle", Duration: duration, Loop: true, Frames: frames}
}

func (c Clip) easing() ease.TweenFunc {
	if c.Ease == nil {
		return ease.Linear
	}
	return c.Ease
}

func (c Clip) sortedCues() []Cue {
	cues := append([]Cue(nil), c.Cues...)
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].At < cues[j].At })
	return cues
}

// Clock is a phase clock. Advance moves playback and returns the events
// crossed, in clip order.
type Clock interface {
	combat.Oracle
	Play(clip Clip)
	Advance(dt float64) []Event
	Clip() Clip
}

// cueCursor tracks which cues of the current pass have fired.
type cueCursor struct {
	cues []Cue
	next int
}

func (c *cueCursor) reset(cues []Cue) {
	c.cues = cues
	c.next = 0
}

func (c *cueCursor) rewind() {
	c.next = 0
}

// crossed appends every unfired cue at or before progress.
func (c *cueCursor) crossed(progress float64, out []Event) []Event {
	for c.next < len(c.cues) && c.cues[c.next].At <= progress {
		out = append(out, c.cues[c.next].Event)
		c.next++
	}
	return out
}

func (c *cueCursor) rest(out []Event) []Event {
	for ; c.next < len(c.cues); c.next++ {
		out = append(out, c.cues[c.next].Event)
	}
	return out
}

// below1 keeps a progress value inside [0,1).
func below1(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p >= 1:
		return oneMinus
	}
	return p
}

const oneMinus = 1 - 1e-9
