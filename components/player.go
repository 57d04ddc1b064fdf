package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerData holds what the player wants to do this tick, decoded from
// InputData.
type PlayerData struct {
	Move   dmath.Vec2
	Attack bool
}

var Player = donburi.NewComponentType[PlayerData]()
