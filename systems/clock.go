package systems

import (
	"github.com/automoto/doomerang-melee/components"
	"github.com/yohamta/donburi"
)

// StepClock starts a tick of dt seconds on the world clock. It runs before
// the scheduled systems so they all see the same dt.
func StepClock(w donburi.World, dt float64) {
	e, ok := components.Clock.First(w)
	if !ok {
		return
	}
	clock := components.Clock.Get(e)
	if dt < 0 {
		dt = 0
	}
	clock.DT = dt
	clock.Tick++
	clock.Advance(dt)
}

// deltaTime is the length of the tick being processed.
func deltaTime(w donburi.World) float64 {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).DT
	}
	return 0
}

// Dying reports whether e has started its death sequence.
func Dying(e *donburi.Entry) bool {
	return e.HasComponent(components.Death)
}
