package combat

// SimClock is a Clock advanced by the tick driver. It never goes backwards.
type SimClock struct {
	now float64
}

// NewSimClock returns a clock starting at t seconds.
func NewSimClock(t float64) *SimClock {
	return &SimClock{now: t}
}

func (c *SimClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by dt. Negative steps are ignored.
func (c *SimClock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.now += dt
}
