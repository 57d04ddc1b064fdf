package components

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the arena collision space.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()

// ClockData is the simulation clock shared by every system. DT is the
// length of the tick being processed.
type ClockData struct {
	*combat.SimClock
	DT   float64
	Tick int
}

var Clock = donburi.NewComponentType[ClockData]()
