package factory

import (
	"github.com/automoto/doomerang-melee/archetypes"
	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// CreateClock adds the simulation clock singleton, starting at start
// seconds.
func CreateClock(w donburi.World, start float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(clock, components.ClockData{SimClock: combat.NewSimClock(start)})
	return clock
}

// SimClock returns the world clock, or nil before CreateClock.
func SimClock(w donburi.World) *combat.SimClock {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).SimClock
	}
	return nil
}

func addToSpace(w donburi.World, objs ...*resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(objs...)
	}
}
